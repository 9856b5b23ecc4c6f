package ngram

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrZeroDenominator is returned by New when the denominator is zero.
var ErrZeroDenominator = errors.New("fraction denominator must not be zero")

// Fraction is a clipped-precision value kept as an exact
// numerator/denominator pair so corpus scoring can pool the integer parts
// before dividing. The pair is never reduced. ModifiedPrecision floors its
// denominator to 1, so a zero denominator can only come from direct
// construction, which New rejects.
type Fraction struct {
	Numerator   int
	Denominator int
}

// New builds a Fraction, rejecting a zero denominator.
func New(numerator, denominator int) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, errors.Wrapf(ErrZeroDenominator, "invalid fraction %d/%d", numerator, denominator)
	}
	return Fraction{Numerator: numerator, Denominator: denominator}, nil
}

// Float64 converts the fraction to its real value.
func (f Fraction) Float64() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// String formats the fraction as "numerator/denominator".
func (f Fraction) String() string {
	return strconv.Itoa(f.Numerator) + "/" + strconv.Itoa(f.Denominator)
}
