package domain

// TrendLabel classifies a product's short-vs-long rolling average ratio.
type TrendLabel string

const (
	TrendDeclining TrendLabel = "Declining"
	TrendPlateau   TrendLabel = "Plateau"
	TrendGrowing   TrendLabel = "Growing"
)
