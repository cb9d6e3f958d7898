// Package mapper converts slices between persistence rows, entities and DTOs.
package mapper

import "fmt"

// MapSlice converts every element. A nil input stays nil so callers can tell
// "no query ran" from "no rows".
func MapSlice[T, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Keyed is implemented by rows that can name themselves in error messages.
type Keyed interface {
	Key() string
}

// MapRows converts persistence rows, dropping nil rows and nil results.
// The first failure aborts and is annotated with the row key.
func MapRows[E any, P interface {
	*E
	Keyed
}, R any](rows []P, fn func(P) (*R, error)) ([]*R, error) {
	if rows == nil {
		return nil, nil
	}
	out := make([]*R, 0, len(rows))
	for _, row := range rows {
		if (*E)(row) == nil {
			continue
		}
		mapped, err := fn(row)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", row.Key(), err)
		}
		if mapped != nil {
			out = append(out, mapped)
		}
	}
	return out, nil
}
