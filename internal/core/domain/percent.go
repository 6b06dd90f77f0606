package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is an optional percentage.
// An undefined percent (e.g. a share of zero change) is distinct from 0%.
type Percent struct {
	value   float64
	defined bool
}

// PercentOf returns part / whole × 100, undefined when whole is zero.
func PercentOf(part, whole int64) Percent {
	if whole == 0 {
		return Percent{}
	}
	v := float64(part) / float64(whole) * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Percent{}
	}
	return Percent{value: v, defined: true}
}

// NewPercent wraps a defined percentage value.
func NewPercent(v float64) Percent {
	return Percent{value: v, defined: true}
}

// UndefinedPercent returns the "not computable" marker.
func UndefinedPercent() Percent {
	return Percent{}
}

// Defined reports whether the percentage has a value.
func (p Percent) Defined() bool {
	return p.defined
}

// Value returns the percentage and whether it is defined.
func (p Percent) Value() (float64, bool) {
	return p.value, p.defined
}

// String renders one decimal place, or "-" when undefined.
func (p Percent) String() string {
	if !p.defined {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", p.value)
}

// MarshalJSON renders the value, or null when undefined.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.defined {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}
