package models

// NoPrize is the sentinel tier for combinations that win nothing
const NoPrize = 0

// MatchResult is the outcome of scoring one combination against one draw
type MatchResult struct {
	MainMatches int `json:"main_matches"`
	StarMatches int `json:"star_matches"`
	PrizeTier   int `json:"prize_tier"`
}

// Won reports whether the result lands in any paying tier
func (m MatchResult) Won() bool {
	return m.PrizeTier != NoPrize
}
