// Package feed contains the clients for the four external data providers the
// dashboard aggregates, and the per-feed degrade policy applied when a
// provider fails.
package feed

// Feed names, matching the endpoint each one backs.
const (
	FeedMarket  = "market"
	FeedNews    = "news"
	FeedInsight = "insight"
	FeedMeme    = "meme"
)

// Policy describes what a feed does when its upstream provider fails.
type Policy int

const (
	// DegradeToEmpty returns an empty result set, never an error.
	DegradeToEmpty Policy = iota
	// DegradeToFallback returns a locally chosen fallback value as a
	// successful response.
	DegradeToFallback
	// PropagateError surfaces an explicit error status to the client.
	PropagateError
)

// policies maps each feed to its degrade behavior. Market data and insight
// are decorative and must never block dashboard rendering; news and meme are
// allowed to fail visibly.
var policies = map[string]Policy{
	FeedMarket:  DegradeToEmpty,
	FeedNews:    PropagateError,
	FeedInsight: DegradeToFallback,
	FeedMeme:    PropagateError,
}

// PolicyFor returns the degrade policy for a feed. Unknown feeds propagate
// errors.
func PolicyFor(feed string) Policy {
	if p, ok := policies[feed]; ok {
		return p
	}
	return PropagateError
}
