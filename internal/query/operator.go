// Package query translates loosely-typed, operator-bearing filter
// parameters into store-level predicates plus an in-memory residual
// predicate for fields the store cannot filter natively.
package query

import (
	"strconv"
	"strings"
)

// Op is a comparison operator accepted in numeric filter values.
type Op string

const (
	OpEq  Op = "="
	OpGt  Op = ">"
	OpLt  Op = "<"
	OpGte Op = ">="
	OpLte Op = "<="
)

// Ordered longest first so ">=" wins over ">".
var opPrefixes = []Op{OpGte, OpLte, OpGt, OpLt, OpEq}

// Comparison is a parsed numeric filter: an operator and its operand.
type Comparison struct {
	Op    Op
	Value float64
}

// ParseComparison parses a filter value of the form "[op]number", e.g.
// ">=4.5" or "120". A missing operator means equality. ok is false when
// the remainder is not a plain integer or decimal literal; callers drop
// the filter in that case instead of failing the request.
func ParseComparison(s string) (Comparison, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Comparison{}, false
	}

	op := OpEq
	for _, p := range opPrefixes {
		if strings.HasPrefix(s, string(p)) {
			op = p
			s = strings.TrimSpace(s[len(p):])
			break
		}
	}

	if !numericLiteral(s) {
		return Comparison{}, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Comparison{}, false
	}
	return Comparison{Op: op, Value: v}, true
}

// numericLiteral accepts digits with at most one interior decimal point.
// Signs, exponents and hex floats are rejected even though ParseFloat
// would take them.
func numericLiteral(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot && i > 0 && i < len(s)-1:
			dot = true
		default:
			return false
		}
	}
	return true
}

// String renders the canonical "[op]value" form, e.g. ">=4.5".
func (c Comparison) String() string {
	return string(c.Op) + strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// Matches reports whether v satisfies the comparison.
func (c Comparison) Matches(v float64) bool {
	switch c.Op {
	case OpGt:
		return v > c.Value
	case OpLt:
		return v < c.Value
	case OpGte:
		return v >= c.Value
	case OpLte:
		return v <= c.Value
	default:
		return v == c.Value
	}
}
