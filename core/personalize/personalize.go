// Package personalize decides which coins the dashboard shows for a user.
package personalize

import (
	"strings"

	"coindash/model"
)

// MaxCoins caps how many coins the dashboard presents.
const MaxCoins = 5

// Filter intersects the fetched coin list with the user's comma-separated
// favorite-symbol string. Matching is case-insensitive and whitespace is
// trimmed. A non-empty intersection is returned capped at MaxCoins; an empty
// one falls back to the first MaxCoins of the unfiltered list. An empty match
// is not an error state.
func Filter(coins []model.Coin, favoriteCoins string) []model.Coin {
	favs := parseFavorites(favoriteCoins)

	matched := coins
	if len(favs) > 0 {
		var picked []model.Coin
		for _, coin := range coins {
			if favs[strings.ToLower(coin.Symbol)] {
				picked = append(picked, coin)
			}
		}
		if len(picked) > 0 {
			matched = picked
		}
	}

	if len(matched) > MaxCoins {
		matched = matched[:MaxCoins]
	}
	return matched
}

// parseFavorites splits a comma-separated symbol list into a lookup set.
func parseFavorites(favoriteCoins string) map[string]bool {
	favs := make(map[string]bool)
	for _, part := range strings.Split(favoriteCoins, ",") {
		symbol := strings.ToLower(strings.TrimSpace(part))
		if symbol != "" {
			favs[symbol] = true
		}
	}
	return favs
}
