package models

// NumbersPerDraw is how many main numbers a draw has
const NumbersPerDraw = 6

// Valid range for main and bonus numbers
const (
	MinNumber = 1
	MaxNumber = 45
)

// DrawRecord is one row of the draw history. It is never modified once appended.
type DrawRecord struct {
	Round   int                 `bson:"round" json:"round"`
	Numbers [NumbersPerDraw]int `bson:"numbers" json:"numbers"`
	Bonus   int                 `bson:"bonus" json:"bonus"`
	Outcome string              `bson:"outcome" json:"outcome"` // joined evaluation results
}

// DrawResult holds the winning numbers of a single round as returned by the lookup
type DrawResult struct {
	Round   int                 `json:"round"`
	Numbers [NumbersPerDraw]int `json:"numbers"`
	Bonus   int                 `json:"bonus"`
	Date    string              `json:"date,omitempty"`
}

// NewDrawRecord builds a history row from a fetched draw and its outcome text
func NewDrawRecord(draw DrawResult, outcome string) DrawRecord {
	return DrawRecord{
		Round:   draw.Round,
		Numbers: draw.Numbers,
		Bonus:   draw.Bonus,
		Outcome: outcome,
	}
}

// UpdateResult is what a successful update reports back to the caller
type UpdateResult struct {
	Record  DrawRecord `json:"record"`
	Results []string   `json:"results"`
	Summary string     `json:"summary"`
}
