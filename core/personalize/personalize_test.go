package personalize

import (
	"testing"

	"coindash/model"

	"github.com/stretchr/testify/assert"
)

func coinList(symbols ...string) []model.Coin {
	coins := make([]model.Coin, 0, len(symbols))
	for _, s := range symbols {
		coins = append(coins, model.Coin{ID: s, Symbol: s, Name: s})
	}
	return coins
}

func symbols(coins []model.Coin) []string {
	out := make([]string, 0, len(coins))
	for _, c := range coins {
		out = append(out, c.Symbol)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		coins     []model.Coin
		favorites string
		want      []string
	}{
		{
			name:      "intersection with mixed case and whitespace",
			coins:     coinList("btc", "eth", "sol"),
			favorites: "ETH, sol",
			want:      []string{"eth", "sol"},
		},
		{
			name:      "empty favorites falls back to first five",
			coins:     coinList("btc", "eth", "sol", "ada", "dot", "avax", "link"),
			favorites: "",
			want:      []string{"btc", "eth", "sol", "ada", "dot"},
		},
		{
			name:      "no match falls back to first five",
			coins:     coinList("btc", "eth", "sol", "ada", "dot", "avax"),
			favorites: "doge, shib",
			want:      []string{"btc", "eth", "sol", "ada", "dot"},
		},
		{
			name:      "intersection capped at five",
			coins:     coinList("a", "b", "c", "d", "e", "f", "g"),
			favorites: "a,b,c,d,e,f",
			want:      []string{"a", "b", "c", "d", "e"},
		},
		{
			name:      "short list returned whole",
			coins:     coinList("btc", "eth"),
			favorites: "",
			want:      []string{"btc", "eth"},
		},
		{
			name:      "favorites of only separators treated as empty",
			coins:     coinList("btc", "eth", "sol", "ada", "dot", "avax"),
			favorites: " , ,, ",
			want:      []string{"btc", "eth", "sol", "ada", "dot"},
		},
		{
			name:      "empty coin list stays empty",
			coins:     nil,
			favorites: "btc",
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.coins, tt.favorites)
			assert.Equal(t, tt.want, symbols(got))
		})
	}
}

func TestFilterPreservesProviderOrder(t *testing.T) {
	coins := coinList("btc", "eth", "sol")
	got := Filter(coins, "sol, BTC")
	assert.Equal(t, []string{"btc", "sol"}, symbols(got))
}
