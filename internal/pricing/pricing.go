// Package pricing implements the deterministic cost and complexity model
// for translation jobs. Everything here is pure: no I/O, no clocks, no
// randomness, so the same inputs always price to the same quote.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports malformed numeric arguments to Price.
var ErrInvalidInput = errors.New("invalid input")

// Config carries the tunable pricing policy. The defaults match the
// published rate card; tests and ops can override without code changes.
type Config struct {
	// BaseRate is the per-word price in the platform currency.
	BaseRate float64
	// WordsPerHour is the assumed translator throughput.
	WordsPerHour float64
}

func DefaultConfig() Config {
	return Config{
		BaseRate:     0.12,
		WordsPerHour: 250,
	}
}

// Quote is the result of pricing one job. Recomputed from inputs on
// every call, never stored or mutated.
type Quote struct {
	WordCount       int     `json:"wordCount"`
	ComplexityScore float64 `json:"complexityScore"`
	SourceLang      string  `json:"sourceLang"`
	TargetLang      string  `json:"targetLang"`
	Multiplier      float64 `json:"multiplier"`
	Cost            float64 `json:"cost"`
	EstimatedHours  float64 `json:"estimatedHours"`
}

// Price computes cost and estimated hours for a job.
//
//	cost  = words × BaseRate × complexity × pair multiplier
//	hours = (words / WordsPerHour) × complexity × pair multiplier
//
// Both are rounded half-up to 2 decimal places. wordCount must be
// non-negative and complexityScore must be in [0,1]; anything else
// (including NaN) fails with ErrInvalidInput.
func (c Config) Price(wordCount int, complexityScore float64, sourceLang, targetLang string) (Quote, error) {
	if wordCount < 0 {
		return Quote{}, fmt.Errorf("%w: word count %d is negative", ErrInvalidInput, wordCount)
	}
	if math.IsNaN(complexityScore) || complexityScore < 0 || complexityScore > 1 {
		return Quote{}, fmt.Errorf("%w: complexity score %v outside [0,1]", ErrInvalidInput, complexityScore)
	}

	multiplier := PairMultiplier(sourceLang, targetLang)
	cost := float64(wordCount) * c.BaseRate * complexityScore * multiplier
	hours := float64(wordCount) / c.WordsPerHour * complexityScore * multiplier

	return Quote{
		WordCount:       wordCount,
		ComplexityScore: complexityScore,
		SourceLang:      sourceLang,
		TargetLang:      targetLang,
		Multiplier:      multiplier,
		Cost:            round2(cost),
		EstimatedHours:  round2(hours),
	}, nil
}

// round2 rounds half-up to 2 decimal places. Inputs are non-negative
// here, so math.Round's half-away-from-zero is half-up.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
