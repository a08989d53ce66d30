//go:build !ios && !android && (amd64 || arm64)

package avutil

import "fmt"

// Rational is an AVRational read out of an FFmpeg struct.
type Rational struct {
	Num int32 // Numerator
	Den int32 // Denominator
}

// NewRational creates a new Rational with the given numerator and denominator.
func NewRational(num, den int32) Rational {
	return Rational{Num: num, Den: den}
}

// Float64 converts the rational to a float64.
// Returns 0 if the denominator is 0.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// IsZero returns true if the rational is zero or undefined.
func (r Rational) IsZero() bool {
	return r.Num == 0 || r.Den == 0
}

// String formats the rational as "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
