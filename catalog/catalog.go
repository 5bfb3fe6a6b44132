package catalog

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/psview/psview/common/marshal"
)

// Catalog is the full set of pokemon or moves from one fetch, keyed by
// canonical identifier. Upstream key order is kept, so iteration order is
// stable and matches the document.
type Catalog struct {
	Kind    Kind
	keys    []string
	records map[string]Record
}

// New makes an empty catalog of the given kind.
func New(kind Kind) *Catalog {
	return &Catalog{
		Kind:    kind,
		records: map[string]Record{},
	}
}

// Add stores a record under id. Adding an id twice replaces the record
// but keeps its original position.
func (c *Catalog) Add(id string, r Record) {
	if _, ok := c.records[id]; !ok {
		c.keys = append(c.keys, id)
	}
	c.records[id] = r
}

// Get returns the record stored at id.
func (c *Catalog) Get(id string) (Record, bool) {
	r, ok := c.records[id]
	return r, ok
}

// Len is the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// IDs returns the identifiers in catalog order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.keys...)
}

// ForEach calls f for every record, in catalog order.
func (c *Catalog) ForEach(f func(id string, r Record)) {
	for _, id := range c.keys {
		f(id, c.records[id])
	}
}

// Ordered returns the catalog for encoding, keeping catalog order.
func (c *Catalog) Ordered() marshal.OrderedMap {
	result := make(marshal.OrderedMap, 0, 2*len(c.keys))
	c.ForEach(func(id string, r Record) {
		result = append(result, id, r)
	})
	return result
}

// Decode reads a catalog document: a JSON object mapping identifiers to
// records.
func Decode(kind Kind, r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("%s catalog: expected a JSON object, got %v", kind, tok)
	}

	c := New(kind)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("%s catalog: expected a key, got %v", kind, tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "%s catalog: reading %q", kind, id)
		}
		record := Record{}
		if err := marshal.DecodeJSONBytes(raw, &record); err != nil {
			return nil, errors.Wrapf(err, "%s catalog: decoding %q", kind, id)
		}
		c.Add(id, record)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Errorf("%s catalog: unexpected data after the object", kind)
	}
	return c, nil
}
