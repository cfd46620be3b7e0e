// Package stabledouble implements an underflow- and overflow-resistant
// alternative to float64, storing values in log-transformed sign-magnitude
// form so that products and quotients of very large or very small numbers
// stay representable.
package stabledouble

import (
	"math"
	"strconv"
)

// lowest stands in for the zero value: a magnitude of -Inf in log space
// means the represented value is exactly 0, matching the sentinel the
// original used (the smallest finite double) without reserving a finite value.
var lowest = math.Inf(-1)

// StableDouble is a real number stored as a sign and the natural log of its
// absolute value. The struct's zero value holds log-magnitude 0 with a
// negative sign, so it represents -1, not 0; Zero and FromFloat(0) represent 0.
type StableDouble struct {
	logAbsX  float64
	positive bool
}

// FromFloat converts a float64 into log space.
func FromFloat(x float64) StableDouble {
	switch {
	case x == 0:
		return StableDouble{logAbsX: lowest, positive: true}
	case x < 0:
		return StableDouble{logAbsX: math.Log(-x), positive: false}
	default:
		return StableDouble{logAbsX: math.Log(x), positive: true}
	}
}

// FromLog constructs a StableDouble directly from a log-magnitude and sign.
func FromLog(logAbsX float64, positive bool) StableDouble {
	return StableDouble{logAbsX: logAbsX, positive: positive}
}

// Zero is the additive identity.
var Zero = StableDouble{logAbsX: lowest, positive: true}

// Float converts back to a float64, which may overflow to +/-Inf or
// underflow to 0 if the represented magnitude is out of float64 range.
func (s StableDouble) Float() float64 {
	if s.positive {
		return math.Exp(s.logAbsX)
	}
	return -math.Exp(s.logAbsX)
}

func addLog(logX, logY float64) float64 {
	if logX > logY {
		return logX + math.Log(1.0+math.Exp(logY-logX))
	}
	return logY + math.Log(1.0+math.Exp(logX-logY))
}

func subtractLog(logX, logY float64) float64 {
	return logX + math.Log(1.0-math.Exp(logY-logX))
}

// Neg returns -s.
func (s StableDouble) Neg() StableDouble {
	return StableDouble{logAbsX: s.logAbsX, positive: !s.positive}
}

// Inverse returns 1/s.
func (s StableDouble) Inverse() StableDouble {
	return StableDouble{logAbsX: -s.logAbsX, positive: s.positive}
}

// Mul returns s*other.
func (s StableDouble) Mul(other StableDouble) StableDouble {
	return StableDouble{logAbsX: s.logAbsX + other.logAbsX, positive: s.positive == other.positive}
}

// Div returns s/other.
func (s StableDouble) Div(other StableDouble) StableDouble {
	return StableDouble{logAbsX: s.logAbsX - other.logAbsX, positive: s.positive == other.positive}
}

// Add returns s+other.
func (s StableDouble) Add(other StableDouble) StableDouble {
	switch {
	case s.positive == other.positive:
		return StableDouble{logAbsX: addLog(s.logAbsX, other.logAbsX), positive: s.positive}
	case s.logAbsX == other.logAbsX:
		return Zero
	case s.logAbsX > other.logAbsX:
		return StableDouble{logAbsX: subtractLog(s.logAbsX, other.logAbsX), positive: s.positive}
	default:
		return StableDouble{logAbsX: subtractLog(other.logAbsX, s.logAbsX), positive: other.positive}
	}
}

// Sub returns s-other.
func (s StableDouble) Sub(other StableDouble) StableDouble {
	return s.Add(other.Neg())
}

// MulF returns s*other, with other a plain float64.
func (s StableDouble) MulF(other float64) StableDouble {
	return s.Mul(FromFloat(other))
}

// DivF returns s/other, with other a plain float64.
func (s StableDouble) DivF(other float64) StableDouble {
	return s.Div(FromFloat(other))
}

// AddF returns s+other, with other a plain float64.
func (s StableDouble) AddF(other float64) StableDouble {
	return s.Add(FromFloat(other))
}

// SubF returns s-other, with other a plain float64.
func (s StableDouble) SubF(other float64) StableDouble {
	return s.Sub(FromFloat(other))
}

// Less reports whether s < other.
func (s StableDouble) Less(other StableDouble) bool {
	if s.positive != other.positive {
		// guard against both being a signed zero
		return other.positive && (s.logAbsX != lowest || other.logAbsX != lowest)
	}
	if s.positive {
		return s.logAbsX < other.logAbsX
	}
	return s.logAbsX > other.logAbsX
}

// Greater reports whether s > other.
func (s StableDouble) Greater(other StableDouble) bool {
	return other.Less(s)
}

// LessEqual reports whether s <= other.
func (s StableDouble) LessEqual(other StableDouble) bool {
	return !other.Less(s)
}

// GreaterEqual reports whether s >= other.
func (s StableDouble) GreaterEqual(other StableDouble) bool {
	return !s.Less(other)
}

// LessF reports whether s < other, with other a plain float64.
func (s StableDouble) LessF(other float64) bool { return s.Less(FromFloat(other)) }

// GreaterF reports whether s > other, with other a plain float64.
func (s StableDouble) GreaterF(other float64) bool { return s.Greater(FromFloat(other)) }

// LessEqualF reports whether s <= other, with other a plain float64.
func (s StableDouble) LessEqualF(other float64) bool { return s.LessEqual(FromFloat(other)) }

// GreaterEqualF reports whether s >= other, with other a plain float64.
func (s StableDouble) GreaterEqualF(other float64) bool { return s.GreaterEqual(FromFloat(other)) }

// Equal reports whether s and other represent the same value.
func (s StableDouble) Equal(other StableDouble) bool {
	return s.logAbsX == other.logAbsX && (s.logAbsX == lowest || s.positive == other.positive)
}

// NotEqual reports whether s and other represent different values.
func (s StableDouble) NotEqual(other StableDouble) bool {
	return !s.Equal(other)
}

// EqualF reports whether s equals other, with other a plain float64.
func (s StableDouble) EqualF(other float64) bool { return s.Equal(FromFloat(other)) }

// NotEqualF reports whether s differs from other, with other a plain float64.
func (s StableDouble) NotEqualF(other float64) bool { return s.NotEqual(FromFloat(other)) }

// String renders s the way the log-space representation is built, e.g. "exp(1.5)" or "-exp(0)".
func (s StableDouble) String() string {
	sign := ""
	if !s.positive {
		sign = "-"
	}
	return sign + "exp(" + strconv.FormatFloat(s.logAbsX, 'g', -1, 64) + ")"
}
