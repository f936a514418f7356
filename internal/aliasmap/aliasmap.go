// Package aliasmap implements the string-keyed lookup table behind import
// aliasing. Keys are either exact strings or wildcard patterns containing a
// single "*", and values are templates that know how to splice the wildcard
// capture into themselves.
package aliasmap

import "strings"

// AliasTemplate is implemented by values stored in an AliasMap. Replace
// substitutes the captured wildcard text into the value's string payloads,
// returning a value of the same shape. Substitution is allowed to fail so
// templates can validate the spliced result.
type AliasTemplate[T any] interface {
	Replace(capture string) (T, error)
}

type wildcardEntry[T any] struct {
	prefix string
	suffix string
	value  T
}

// An AliasMap maps exact and single-wildcard patterns to template values.
// Inserting the same pattern twice replaces the earlier value.
type AliasMap[T AliasTemplate[T]] struct {
	exact map[string]T

	// Kept sorted by descending prefix length, then descending suffix length,
	// so Lookup can emit wildcard matches best first without re-sorting. If
	// two patterns have the same prefix length, the one with the longer
	// suffix is the more specific match. Sorting here rather than at lookup
	// time also keeps results deterministic regardless of insertion order
	// details.
	wildcards []wildcardEntry[T]
}

func New[T AliasTemplate[T]]() *AliasMap[T] {
	return &AliasMap[T]{exact: make(map[string]T)}
}

// Insert adds a pattern to the map. A pattern containing "*" matches any key
// with the pattern's prefix and suffix; only the first "*" is a wildcard, so
// patterns should contain at most one.
func (m *AliasMap[T]) Insert(pattern string, value T) {
	star := strings.IndexByte(pattern, '*')
	if star < 0 {
		m.exact[pattern] = value
		return
	}

	entry := wildcardEntry[T]{
		prefix: pattern[:star],
		suffix: pattern[star+1:],
		value:  value,
	}
	for i, existing := range m.wildcards {
		if existing.prefix == entry.prefix && existing.suffix == entry.suffix {
			m.wildcards[i] = entry
			return
		}
	}
	i := 0
	for i < len(m.wildcards) {
		existing := m.wildcards[i]
		if len(existing.prefix) < len(entry.prefix) ||
			(len(existing.prefix) == len(entry.prefix) && len(existing.suffix) < len(entry.suffix)) {
			break
		}
		i++
	}
	m.wildcards = append(m.wildcards, wildcardEntry[T]{})
	copy(m.wildcards[i+1:], m.wildcards[i:])
	m.wildcards[i] = entry
}

// Len returns the number of patterns in the map.
func (m *AliasMap[T]) Len() int {
	return len(m.exact) + len(m.wildcards)
}

// Lookup returns the values whose patterns match the key, best match first:
// an exact match before any wildcard match, and wildcard matches ordered by
// longest prefix, then longest suffix. Wildcard values are returned with the
// captured text already substituted; a substitution failure fails the whole
// lookup.
func (m *AliasMap[T]) Lookup(key string) ([]T, error) {
	var results []T
	if value, ok := m.exact[key]; ok {
		results = append(results, value)
	}
	for _, entry := range m.wildcards {
		if len(key) < len(entry.prefix)+len(entry.suffix) ||
			!strings.HasPrefix(key, entry.prefix) ||
			!strings.HasSuffix(key, entry.suffix) {
			continue
		}
		capture := key[len(entry.prefix) : len(key)-len(entry.suffix)]
		value, err := entry.value.Replace(capture)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}
