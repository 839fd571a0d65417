package query

import (
	"errors"
	"testing"
)

func records() []map[string]any {
	return []map[string]any{
		{"Label": "web", "State": "RUNNING", "PID": 100, "Requires": []string{"net"}},
		{"Label": "db", "State": "RUNNING", "PID": 50, "Requires": []string{}},
		{"Label": "cache", "State": "STOPPED", "PID": nil, "Requires": []string{"net", "db"}},
	}
}

func TestApplyNoFilters(t *testing.T) {
	out, err := Apply(records(), nil, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
}

func TestApplyEquality(t *testing.T) {
	out, err := Apply(records(), []Filter{{Field: "State", Op: "=", Value: "RUNNING"}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	out, err = Apply(records(), []Filter{{Field: "Label", Op: "!=", Value: "db"}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
}

func TestApplyNumericComparison(t *testing.T) {
	// RPC operands arrive as float64; record values are ints.
	out, err := Apply(records(), []Filter{{Field: "PID", Op: ">", Value: float64(60)}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 1 || out[0]["Label"] != "web" {
		t.Fatalf("expected only web, got %v", out)
	}
}

func TestApplyNilField(t *testing.T) {
	out, err := Apply(records(), []Filter{{Field: "PID", Op: "=", Value: nil}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 1 || out[0]["Label"] != "cache" {
		t.Fatalf("expected only cache, got %v", out)
	}
}

func TestApplyIn(t *testing.T) {
	// Operand list: field must be one of its elements.
	out, err := Apply(records(), []Filter{{Field: "Label", Op: "in", Value: []any{"web", "db"}}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	// List field: it must contain the operand.
	out, err = Apply(records(), []Filter{{Field: "Requires", Op: "in", Value: "db"}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 1 || out[0]["Label"] != "cache" {
		t.Fatalf("expected only cache, got %v", out)
	}
}

func TestApplyRegex(t *testing.T) {
	out, err := Apply(records(), []Filter{{Field: "Label", Op: "~", Value: "^(web|cache)$"}}, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
}

func TestApplyBadOperator(t *testing.T) {
	_, err := Apply(records(), []Filter{{Field: "Label", Op: "??", Value: "x"}}, Params{})
	if !errors.Is(err, ErrBadFilter) {
		t.Fatalf("expected ErrBadFilter, got %v", err)
	}
}

func TestApplyParams(t *testing.T) {
	out, err := Apply(records(), nil, Params{Sort: "Label", Offset: 1, Limit: 1})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 1 || out[0]["Label"] != "db" {
		t.Fatalf("expected db after sort+offset+limit, got %v", out)
	}

	out, err = Apply(records(), nil, Params{Single: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected single record, got %d", len(out))
	}

	out, err = Apply(records(), nil, Params{Select: []string{"Label"}, Sort: "-Label", Limit: 1})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out) != 1 || len(out[0]) != 1 || out[0]["Label"] != "web" {
		t.Fatalf("unexpected projection %v", out)
	}
}
