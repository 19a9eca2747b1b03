package services

import "math"

type DifficultyLabel string

const (
	DifficultyBasic        DifficultyLabel = "Basic"
	DifficultyIntermediate DifficultyLabel = "Intermediate"
	DifficultyAdvanced     DifficultyLabel = "Advanced"
)

const (
	basicMaxInches        = 144
	intermediateMaxInches = 192
)

// CeilingHeight is a room's ceiling height in feet and inches.
type CeilingHeight struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

// Normalize clamps feet to >= 0 and inches to [0, 11].
func (h CeilingHeight) Normalize() CeilingHeight {
	return CeilingHeight{
		Feet:   max(0, h.Feet),
		Inches: min(11, max(0, h.Inches)),
	}
}

// TotalInches is the height in inches, saturating at the int range.
func (h CeilingHeight) TotalInches() int {
	switch approx := float64(h.Feet)*12 + float64(h.Inches); {
	case approx >= math.MaxInt:
		return math.MaxInt
	case approx <= math.MinInt:
		return math.MinInt
	}
	return h.Feet*12 + h.Inches
}

type Difficulty struct {
	Level int
	Label DifficultyLabel
}

// ClassifyDifficulty grades install difficulty from ceiling height: up to
// 12 ft is Basic, up to 16 ft Intermediate, anything higher Advanced.
func ClassifyDifficulty(h CeilingHeight) Difficulty {
	total := h.TotalInches()
	switch {
	case total <= basicMaxInches:
		return Difficulty{Level: 0, Label: DifficultyBasic}
	case total <= intermediateMaxInches:
		return Difficulty{Level: 5, Label: DifficultyIntermediate}
	default:
		return Difficulty{Level: 10, Label: DifficultyAdvanced}
	}
}

// FillPercent is the meter fill shown for the difficulty label.
func (d Difficulty) FillPercent() int {
	switch d.Label {
	case DifficultyBasic:
		return 25
	case DifficultyIntermediate:
		return 66
	case DifficultyAdvanced:
		return 100
	default:
		return 0
	}
}

// MeterClass is the CSS class for the difficulty meter bar.
func (d Difficulty) MeterClass() string {
	switch d.Label {
	case DifficultyBasic:
		return "progress-success"
	case DifficultyIntermediate:
		return "progress-warning"
	case DifficultyAdvanced:
		return "progress-error"
	default:
		return ""
	}
}
