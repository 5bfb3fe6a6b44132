package catalog

import (
	"sort"
	"strings"

	"github.com/psview/psview/common/xfer"
)

// Entry is one row of a catalog listing.
type Entry struct {
	ID     string
	Num    int
	Name   string
	Types  []string
	Sprite string
}

// SpriteURL returns the animated sprite URL for a pokemon id.
func SpriteURL(id string) string {
	return xfer.SpriteBaseURL + id + xfer.SpriteExt
}

func makeEntry(id string, r Record) Entry {
	num, _ := r.Num()
	name, ok := r.Name()
	if !ok {
		name = id
	}
	return Entry{
		ID:     id,
		Num:    num,
		Name:   name,
		Types:  r.Types(),
		Sprite: SpriteURL(id),
	}
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Num < entries[j].Num
	})
}

// List returns every record of the catalog, sorted by display number.
// Records sharing a number keep their catalog order.
func List(c *Catalog) []Entry {
	entries := make([]Entry, 0, c.Len())
	c.ForEach(func(id string, r Record) {
		entries = append(entries, makeEntry(id, r))
	})
	sortEntries(entries)
	return entries
}

// Search returns the records whose identifier or display name contains
// query, ignoring case, sorted like List. A blank query lists everything.
func Search(c *Catalog, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return List(c)
	}
	entries := []Entry{}
	c.ForEach(func(id string, r Record) {
		e := makeEntry(id, r)
		if strings.Contains(strings.ToLower(id), query) || strings.Contains(strings.ToLower(e.Name), query) {
			entries = append(entries, e)
		}
	})
	sortEntries(entries)
	return entries
}
