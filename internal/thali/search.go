package thali

import "strings"

// Search returns the thalis whose name contains query, ignoring case, or that
// have an item containing the lowercased query. Item text itself is compared
// as stored, so "Dal Makhani" does not match "dal" through its items.
//
// The result keeps input order and is never nil.
func Search(thalis []Thali, query string) []Thali {
	query = lower(query)

	matches := make([]Thali, 0)
	for _, t := range thalis {
		if t.matches(query) {
			matches = append(matches, t)
		}
	}

	return matches
}

// SearchOf is Search over decoded values. Matching uses the same lenient
// conversion as the other collection operations, but the result holds the
// original elements of v, unchanged. A non-sequence v or a non-string query
// yields an empty slice.
func SearchOf(v any, query any) []any {
	q, ok := query.(string)
	if !ok {
		return []any{}
	}
	elems, ok := elements(v)
	if !ok {
		return []any{}
	}

	q = lower(q)
	matches := make([]any, 0)
	for _, e := range elems {
		if coerce(e).matches(q) {
			matches = append(matches, e)
		}
	}

	return matches
}

func (t Thali) matches(lowerQuery string) bool {
	if strings.Contains(lower(t.Name), lowerQuery) {
		return true
	}
	for _, item := range t.Items {
		if strings.Contains(item, lowerQuery) {
			return true
		}
	}
	return false
}
