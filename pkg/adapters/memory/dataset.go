// Package memory provides an in-memory ports.DataSource over column
// records, used by tests and the demo CLI. Filtering understands simple
// "column op literal" predicates; anything richer belongs to a real data
// backend.
package memory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dashwright/dashwright/pkg/ports"
)

// ErrInvalidPredicate is returned when a filter expression cannot be parsed.
var ErrInvalidPredicate = errors.New("invalid predicate")

// ErrUnknownColumn is returned when a predicate references a column the
// dataset does not have.
var ErrUnknownColumn = errors.New("unknown column")

var operators = []string{"==", "!=", ">=", "<=", ">", "<"}

// Dataset implements ports.DataSource over rows held in memory.
type Dataset struct {
	name    string
	columns []string
	rows    []map[string]any
}

// New creates a dataset from column names and row maps. Rows are referenced,
// not copied; callers hand over ownership.
func New(name string, columns []string, rows []map[string]any) *Dataset {
	return &Dataset{name: name, columns: columns, rows: rows}
}

// Name identifies the dataset for cache keys and diagnostics.
func (d *Dataset) Name() string { return d.name }

// Columns returns the column names in declaration order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Len returns the row count.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns one row by index. Renderers use this to summarize data.
func (d *Dataset) Row(i int) map[string]any { return d.rows[i] }

// Filter returns a new dataset restricted to rows matching a
// "column op literal" predicate, e.g. `gender == "Male"` or `age >= 30`.
// The receiver is left untouched. An empty predicate returns the receiver
// unchanged.
func (d *Dataset) Filter(predicate string) (ports.DataSource, error) {
	predicate = strings.TrimSpace(predicate)
	if predicate == "" {
		return d, nil
	}

	column, op, literal, err := parsePredicate(predicate)
	if err != nil {
		return nil, err
	}
	if !d.hasColumn(column) {
		return nil, fmt.Errorf("%w: %q in predicate %q", ErrUnknownColumn, column, predicate)
	}

	filtered := &Dataset{name: d.name, columns: d.columns}
	for _, row := range d.rows {
		match, err := compare(row[column], op, literal)
		if err != nil {
			return nil, fmt.Errorf("predicate %q: %w", predicate, err)
		}
		if match {
			filtered.rows = append(filtered.rows, row)
		}
	}
	return filtered, nil
}

func (d *Dataset) hasColumn(name string) bool {
	for _, col := range d.columns {
		if col == name {
			return true
		}
	}
	return false
}

func parsePredicate(predicate string) (column, op string, literal any, err error) {
	for _, candidate := range operators {
		idx := strings.Index(predicate, candidate)
		if idx < 0 {
			continue
		}
		column = strings.TrimSpace(predicate[:idx])
		raw := strings.TrimSpace(predicate[idx+len(candidate):])
		if column == "" || raw == "" {
			return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidPredicate, predicate)
		}
		literal, err = parseLiteral(raw)
		if err != nil {
			return "", "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidPredicate, predicate, err)
		}
		return column, candidate, literal, nil
	}
	return "", "", nil, fmt.Errorf("%w: %q: no comparison operator", ErrInvalidPredicate, predicate)
}

func parseLiteral(raw string) (any, error) {
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') {
		if raw[len(raw)-1] != raw[0] {
			return nil, fmt.Errorf("unterminated string literal")
		}
		return raw[1 : len(raw)-1], nil
	}
	if raw == "true" || raw == "false" {
		return raw == "true", nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n, nil
	}
	// Bare words compare as strings; survey data is full of them.
	return raw, nil
}

func compare(value any, op string, literal any) (bool, error) {
	if lf, ok := toFloat(literal); ok {
		vf, ok := toFloat(value)
		if !ok {
			return false, fmt.Errorf("cannot compare %T to number", value)
		}
		switch op {
		case "==":
			return vf == lf, nil
		case "!=":
			return vf != lf, nil
		case ">":
			return vf > lf, nil
		case ">=":
			return vf >= lf, nil
		case "<":
			return vf < lf, nil
		case "<=":
			return vf <= lf, nil
		}
	}

	vs := fmt.Sprintf("%v", value)
	ls := fmt.Sprintf("%v", literal)
	switch op {
	case "==":
		return vs == ls, nil
	case "!=":
		return vs != ls, nil
	case ">":
		return vs > ls, nil
	case ">=":
		return vs >= ls, nil
	case "<":
		return vs < ls, nil
	case "<=":
		return vs <= ls, nil
	}
	return false, fmt.Errorf("unsupported operator %q", op)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
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
