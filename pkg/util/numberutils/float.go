package numberutils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNotFinite = errors.New("value is not a finite number")

// ToFloat64WithError parses a finite float64. NaN and infinities are rejected.
func ToFloat64WithError(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}
