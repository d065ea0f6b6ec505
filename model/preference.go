package model

// Preferences holds a user's onboarding choices. favorite_coins and
// content_preferences are comma-separated lists, stored as entered.
type Preferences struct {
	ID                 int64  `json:"id"`
	UserID             int64  `json:"user_id"`
	FavoriteCoins      string `json:"favorite_coins"`
	InvestorType       string `json:"investor_type"`
	ContentPreferences string `json:"content_preferences"`
}
