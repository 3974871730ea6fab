package counting

import (
	"math"
	"math/bits"
	"strconv"
)

// Status classifies a counting result.
type Status int

const (
	// Exact means Count.Value holds the true value.
	Exact Status = iota
	// Overflow means the true value exceeds math.MaxInt64.
	Overflow
	// Undefined means the inputs were outside the function's domain.
	Undefined
)

// Markers used when a Count has no numeric value.
const (
	TooLargeMarker  = "too large"
	UndefinedMarker = "undefined"
)

func (s Status) String() string {
	switch s {
	case Exact:
		return "exact"
	case Overflow:
		return "overflow"
	case Undefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// Count is the outcome of a counting function.
type Count struct {
	Value  int64
	Status Status
}

// Of wraps an exact value.
func Of(v int64) Count {
	return Count{Value: v, Status: Exact}
}

// TooLarge is the overflow sentinel.
func TooLarge() Count {
	return Count{Status: Overflow}
}

// NotDefined is the domain-error sentinel.
func NotDefined() Count {
	return Count{Status: Undefined}
}

func (c Count) IsExact() bool     { return c.Status == Exact }
func (c Count) IsOverflow() bool  { return c.Status == Overflow }
func (c Count) IsUndefined() bool { return c.Status == Undefined }

// String renders the value, or the marker for overflow and undefined counts.
func (c Count) String() string {
	switch c.Status {
	case Exact:
		return strconv.FormatInt(c.Value, 10)
	case Overflow:
		return TooLargeMarker
	default:
		return UndefinedMarker
	}
}

// Mul multiplies two counts. Undefined wins over Overflow.
func (c Count) Mul(o Count) Count {
	if c.IsUndefined() || o.IsUndefined() {
		return NotDefined()
	}
	if c.IsOverflow() || o.IsOverflow() {
		// 0 * anything is still 0, even when the other side is huge.
		if (c.IsExact() && c.Value == 0) || (o.IsExact() && o.Value == 0) {
			return Of(0)
		}
		return TooLarge()
	}
	v, ok := mulInt64(c.Value, o.Value)
	if !ok {
		return TooLarge()
	}
	return Of(v)
}

// Add sums two counts. Undefined wins over Overflow.
func (c Count) Add(o Count) Count {
	if c.IsUndefined() || o.IsUndefined() {
		return NotDefined()
	}
	if c.IsOverflow() || o.IsOverflow() {
		return TooLarge()
	}
	if c.Value > math.MaxInt64-o.Value {
		return TooLarge()
	}
	return Of(c.Value + o.Value)
}

// mulInt64 multiplies two non-negative int64 values and reports whether the
// product still fits.
func mulInt64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}
