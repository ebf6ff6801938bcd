package utils

import "strings"

// Predicate is a single filter condition over an entity. An unset predicate
// (see TextContains and Equals) is treated as always-true.
type Predicate[T any] func(T) bool

// TextContains builds a case-insensitive substring predicate over one or more
// text fields of an entity. The predicate holds when any of the fields
// contains the query. An empty query matches everything.
func TextContains[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(entity T) bool {
		if query == "" {
			return true
		}
		for _, field := range fields(entity) {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	}
}

// Equals builds an exact-match predicate over an enum field. An empty wanted
// value matches everything.
func Equals[T any](wanted string, field func(T) string) Predicate[T] {
	return func(entity T) bool {
		if wanted == "" {
			return true
		}
		return field(entity) == wanted
	}
}

// Filter returns the subset of the collection for which every predicate
// holds. It is pure and synchronous: the input slice is not modified, element
// order is preserved, and filtering an already-filtered result with the same
// predicates returns the same set.
func Filter[T any](collection []T, predicates ...Predicate[T]) []T {
	result := make([]T, 0, len(collection))
	for _, entity := range collection {
		if matchesAll(entity, predicates) {
			result = append(result, entity)
		}
	}
	return result
}

func matchesAll[T any](entity T, predicates []Predicate[T]) bool {
	for _, predicate := range predicates {
		if !predicate(entity) {
			return false
		}
	}
	return true
}
