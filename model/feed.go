package model

// Coin is one market entry from the market-data provider. The json field
// names mirror the provider payload so the proxied response keeps its shape.
type Coin struct {
	ID                       string    `json:"id"`
	Symbol                   string    `json:"symbol"`
	Name                     string    `json:"name"`
	Image                    string    `json:"image"`
	CurrentPrice             float64   `json:"current_price"`
	MarketCap                float64   `json:"market_cap"`
	MarketCapRank            int       `json:"market_cap_rank"`
	PriceChangePercentage24h float64   `json:"price_change_percentage_24h"`
	SparklineIn7d            Sparkline `json:"sparkline_in_7d"`
}

// Sparkline carries the 7-day price-trend samples.
type Sparkline struct {
	Price []float64 `json:"price"`
}

// Meme is the trimmed meme-provider response.
type Meme struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
