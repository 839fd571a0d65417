// Package query implements the record-query dialect used by the control
// service: a conjunction of (field, op, value) filters plus result-shaping
// parameters, evaluated over generic records.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// ErrBadFilter is returned for an unknown operator or an operand that does
// not fit the operator.
var ErrBadFilter = errors.New("bad query filter")

// Filter is one (field, op, value) triple. Supported operators: =, !=, >,
// >=, <, <=, in, nin, ~.
type Filter struct {
	Field string
	Op    string
	Value any
}

// Params shape the result set after filtering.
type Params struct {
	Single bool
	Select []string
	Limit  int
	Offset int
	// Sort names a field; a leading '-' reverses the order.
	Sort string
}

// Apply filters, sorts and slices records. Records are field-name → value
// maps; a missing field compares as nil.
func Apply(records []map[string]any, filters []Filter, params Params) ([]map[string]any, error) {
	var out []map[string]any
	for _, rec := range records {
		ok, err := matches(rec, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rec)
		}
	}

	if params.Sort != "" {
		sortRecords(out, params.Sort)
	}

	if params.Offset > 0 {
		if params.Offset >= len(out) {
			out = nil
		} else {
			out = out[params.Offset:]
		}
	}
	if params.Limit > 0 && params.Limit < len(out) {
		out = out[:params.Limit]
	}
	if params.Single && len(out) > 1 {
		out = out[:1]
	}

	if len(params.Select) > 0 {
		projected := make([]map[string]any, len(out))
		for i, rec := range out {
			p := make(map[string]any, len(params.Select))
			for _, field := range params.Select {
				if v, ok := rec[field]; ok {
					p[field] = v
				}
			}
			projected[i] = p
		}
		out = projected
	}

	return out, nil
}

func matches(rec map[string]any, filters []Filter) (bool, error) {
	for _, f := range filters {
		ok, err := match(rec[f.Field], f)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func match(field any, f Filter) (bool, error) {
	switch f.Op {
	case "=":
		return equal(field, f.Value), nil
	case "!=":
		return !equal(field, f.Value), nil
	case ">", ">=", "<", "<=":
		c, ok := compare(field, f.Value)
		if !ok {
			return false, nil
		}
		switch f.Op {
		case ">":
			return c > 0, nil
		case ">=":
			return c >= 0, nil
		case "<":
			return c < 0, nil
		default:
			return c <= 0, nil
		}
	case "in":
		return contains(field, f.Value), nil
	case "nin":
		return !contains(field, f.Value), nil
	case "~":
		pattern, ok := f.Value.(string)
		if !ok {
			return false, fmt.Errorf("%w: operator ~ needs a string pattern", ErrBadFilter)
		}
		text, ok := field.(string)
		if !ok {
			return false, nil
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrBadFilter, err)
		}
		return re.MatchString(text), nil
	default:
		return false, fmt.Errorf("%w: unknown operator %q", ErrBadFilter, f.Op)
	}
}

// contains handles both directions of "in": when the operand is a list, the
// field must be one of its elements; when the field is a list, it must
// contain the operand.
func contains(field, operand any) bool {
	if list, ok := operand.([]any); ok {
		for _, v := range list {
			if equal(field, v) {
				return true
			}
		}
		return false
	}
	switch list := field.(type) {
	case []any:
		for _, v := range list {
			if equal(v, operand) {
				return true
			}
		}
	case []string:
		for _, v := range list {
			if equal(v, operand) {
				return true
			}
		}
	}
	return false
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return a == b
}

// compare returns -1/0/1 for ordered values, reporting false when the two
// are not comparable.
func compare(a, b any) (int, bool) {
	if fa, aok := toFloat(a); aok {
		fb, bok := toFloat(b)
		if !bok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}
	sa, aok := a.(string)
	sb, bok := b.(string)
	if aok && bok {
		switch {
		case sa < sb:
			return -1, true
		case sa > sb:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func sortRecords(records []map[string]any, field string) {
	desc := false
	if len(field) > 0 && field[0] == '-' {
		desc = true
		field = field[1:]
	}
	sort.SliceStable(records, func(i, k int) bool {
		c, ok := compare(records[i][field], records[k][field])
		if !ok {
			return false
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}
