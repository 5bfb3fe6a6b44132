package catalog

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var separators = strings.NewReplacer(" ", "", "-", "", ",", "", ".", "")

// Normalize folds a name to the form used for matching: lower case, with
// spaces, hyphens, commas and periods removed. Normalize(Normalize(s)) ==
// Normalize(s).
func Normalize(name string) string {
	return separators.Replace(strings.ToLower(name))
}

// NotFoundError is returned when no record matches a name.
type NotFoundError struct {
	Kind  Kind
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Query)
}

// IsNotFound tells whether err, or the error it wraps, is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// A strategy looks for the record matching an already normalized query.
type strategy func(c *Catalog, query, normalized string) (string, bool)

// Strategies are tried in order; later ones are more permissive and must
// not shadow earlier matches.
var strategies = []strategy{
	exactKey,
	normalizedKey,
	normalizedName,
}

func exactKey(c *Catalog, query, normalized string) (string, bool) {
	if _, ok := c.records[query]; ok {
		return query, true
	}
	if _, ok := c.records[normalized]; ok {
		return normalized, true
	}
	return "", false
}

func normalizedKey(c *Catalog, _, normalized string) (string, bool) {
	for _, id := range c.keys {
		if Normalize(id) == normalized {
			return id, true
		}
	}
	return "", false
}

func normalizedName(c *Catalog, _, normalized string) (string, bool) {
	for _, id := range c.keys {
		if name, ok := c.records[id].Name(); ok && Normalize(name) == normalized {
			return id, true
		}
	}
	return "", false
}

// Resolve finds the record best matching a human-typed name, returning
// its identifier and the record. It tries, in order: the name as an
// exact key, each key after normalization, and each record's display
// name after normalization.
func Resolve(c *Catalog, name string) (string, Record, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return "", nil, &NotFoundError{Kind: c.Kind, Query: name}
	}
	for _, s := range strategies {
		if id, ok := s(c, name, normalized); ok {
			return id, c.records[id], nil
		}
	}
	return "", nil, &NotFoundError{Kind: c.Kind, Query: name}
}
