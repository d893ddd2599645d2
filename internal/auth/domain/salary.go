package domain

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Salary bounds are inclusive on both ends.
var (
	minSalary = big.NewRat(0, 1)
	maxSalary = big.NewRat(15_000_000, 1)
)

var (
	ErrSalaryEmpty = errors.New("domain: base salary cannot be null")
	ErrSalaryMin   = errors.New("domain: base salary must be at least 0")
	ErrSalaryMax   = errors.New("domain: base salary must not exceed 15,000,000")
)

// Salary is a validated monetary amount, kept as an exact rational so
// the inclusive 15,000,000 boundary holds without float rounding.
type Salary struct {
	value *big.Rat
}

// salaryPattern admits plain decimal notation only. big.Rat.SetString
// would also take fractions ("3/4") and exponents ("2e6"), which are
// not valid amounts.
var salaryPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// NewSalary parses and validates a decimal amount such as "2500000" or
// "1250.75".
func NewSalary(raw string) (Salary, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Salary{}, ErrSalaryEmpty
	}
	if !salaryPattern.MatchString(trimmed) {
		return Salary{}, fmt.Errorf("%w: %q is not a number", ErrSalaryEmpty, trimmed)
	}
	value, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Salary{}, fmt.Errorf("%w: %q is not a number", ErrSalaryEmpty, trimmed)
	}
	if value.Cmp(minSalary) < 0 {
		return Salary{}, ErrSalaryMin
	}
	if value.Cmp(maxSalary) > 0 {
		return Salary{}, ErrSalaryMax
	}
	return Salary{value: value}, nil
}

// String renders the amount as a plain decimal with up to two fraction
// digits, trailing zeros trimmed.
func (s Salary) String() string {
	if s.value == nil {
		return ""
	}
	if s.value.IsInt() {
		return s.value.Num().String()
	}
	out := s.value.FloatString(2)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}

// Equal compares two salaries by numeric value.
func (s Salary) Equal(other Salary) bool {
	if s.value == nil || other.value == nil {
		return s.value == other.value
	}
	return s.value.Cmp(other.value) == 0
}

// IsZero reports whether the value was never constructed through NewSalary.
func (s Salary) IsZero() bool { return s.value == nil }
