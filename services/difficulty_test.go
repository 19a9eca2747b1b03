package services

import (
	"math"
	"testing"
)

func TestClassifyDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		height  CeilingHeight
		level   int
		label   DifficultyLabel
		percent int
	}{
		{"no height", CeilingHeight{}, 0, DifficultyBasic, 25},
		{"standard office", CeilingHeight{Feet: 9}, 0, DifficultyBasic, 25},
		{"exactly 12 ft", CeilingHeight{Feet: 12}, 0, DifficultyBasic, 25},
		{"one inch over 12 ft", CeilingHeight{Feet: 12, Inches: 1}, 5, DifficultyIntermediate, 66},
		{"11 ft 13 in", CeilingHeight{Feet: 11, Inches: 13}, 5, DifficultyIntermediate, 66},
		{"exactly 16 ft", CeilingHeight{Feet: 16}, 5, DifficultyIntermediate, 66},
		{"one inch over 16 ft", CeilingHeight{Feet: 16, Inches: 1}, 10, DifficultyAdvanced, 100},
		{"auditorium", CeilingHeight{Feet: 30}, 10, DifficultyAdvanced, 100},
		{"height past int range", CeilingHeight{Feet: 1 << 61}, 10, DifficultyAdvanced, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDifficulty(tt.height)
			if got.Level != tt.level || got.Label != tt.label {
				t.Errorf("ClassifyDifficulty(%+v) = %+v, want level %d label %s", tt.height, got, tt.level, tt.label)
			}
			if p := got.FillPercent(); p != tt.percent {
				t.Errorf("FillPercent() = %d, want %d", p, tt.percent)
			}
		})
	}
}

func TestCeilingHeight_TotalInches(t *testing.T) {
	tests := []struct {
		height CeilingHeight
		expect int
	}{
		{CeilingHeight{Feet: 12, Inches: 6}, 150},
		{CeilingHeight{Feet: 1 << 61}, math.MaxInt},
		{CeilingHeight{Feet: math.MaxInt, Inches: 11}, math.MaxInt},
		{CeilingHeight{Feet: -(1 << 61)}, math.MinInt},
	}
	for _, tt := range tests {
		if got := tt.height.TotalInches(); got != tt.expect {
			t.Errorf("TotalInches(%+v) = %d, want %d", tt.height, got, tt.expect)
		}
	}
}

func TestCeilingHeight_Normalize(t *testing.T) {
	tests := []struct {
		input  CeilingHeight
		expect CeilingHeight
	}{
		{CeilingHeight{Feet: 10, Inches: 6}, CeilingHeight{Feet: 10, Inches: 6}},
		{CeilingHeight{Feet: -1, Inches: 4}, CeilingHeight{Feet: 0, Inches: 4}},
		{CeilingHeight{Feet: 9, Inches: 14}, CeilingHeight{Feet: 9, Inches: 11}},
		{CeilingHeight{Feet: 9, Inches: -3}, CeilingHeight{Feet: 9, Inches: 0}},
	}
	for _, tt := range tests {
		if got := tt.input.Normalize(); got != tt.expect {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.input, got, tt.expect)
		}
	}
}

func TestDifficulty_MeterClass(t *testing.T) {
	if got := (Difficulty{Label: DifficultyBasic}).MeterClass(); got != "progress-success" {
		t.Errorf("Basic meter class = %q", got)
	}
	if got := (Difficulty{Label: DifficultyAdvanced}).MeterClass(); got != "progress-error" {
		t.Errorf("Advanced meter class = %q", got)
	}
	if got := (Difficulty{}).MeterClass(); got != "" {
		t.Errorf("unknown meter class = %q, want empty", got)
	}
}
