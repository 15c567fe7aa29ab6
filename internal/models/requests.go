package models

// FixedSetsRequest carries raw "my numbers" text, one set per line
type FixedSetsRequest struct {
	Raw string `json:"raw"`
}

// EvaluateRequest checks fixed sets against numbers supplied by the caller
type EvaluateRequest struct {
	Raw     string `json:"raw"`
	Numbers []int  `json:"numbers" binding:"required,len=6,unique,dive,min=1,max=45"`
	Bonus   int    `json:"bonus" binding:"required,min=1,max=45"`
}
