package models

// Tier is a prize tier. TierNone means the set did not win anything.
type Tier int

const (
	TierNone Tier = iota
	Tier1
	Tier2
	Tier3
	Tier4
	Tier5
)

// NoWinOutcome is reported when none of the fixed sets reaches a tier
const NoWinOutcome = "No win"

var tierLabels = map[Tier]string{
	Tier1: "1st prize",
	Tier2: "2nd prize",
	Tier3: "3rd prize",
	Tier4: "4th prize",
	Tier5: "5th prize",
}

// String returns the human readable tier label
func (t Tier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return NoWinOutcome
}

// IsWin reports whether the tier pays anything
func (t Tier) IsWin() bool {
	return t >= Tier1 && t <= Tier5
}
