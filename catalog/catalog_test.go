package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psview/psview/catalog"
	"github.com/psview/psview/test/fixture"
)

func TestDecodeKeepsOrder(t *testing.T) {
	c := fixture.Pokedex()

	assert.Equal(t, catalog.Pokemon, c.Kind)
	assert.Equal(t, []string{
		"bulbasaur", "charmander", "charizard", "charizardmegax",
		"pikachu", "mrmime", "hooh", "flabebe",
	}, c.IDs())

	pikachu, ok := c.Get("pikachu")
	require.True(t, ok)
	name, _ := pikachu.Name()
	num, _ := pikachu.Num()
	assert.Equal(t, "Pikachu", name)
	assert.Equal(t, 25, num)
	assert.Equal(t, []string{"Electric"}, pikachu.Types())
}

func TestOrdered(t *testing.T) {
	c, err := catalog.Decode(catalog.Move, strings.NewReader(`{"b": {"num": 2}, "a": {"num": 1}}`))
	require.NoError(t, err)

	ordered := c.Ordered()
	require.Len(t, ordered, 4)
	assert.Equal(t, "b", ordered[0])
	assert.Equal(t, "a", ordered[2])
	a, _ := c.Get("a")
	assert.Equal(t, a, ordered[3])
}

func TestDecodeDuplicateKeys(t *testing.T) {
	c, err := catalog.Decode(catalog.Move, strings.NewReader(`{"a": {"num": 1}, "b": {"num": 2}, "a": {"num": 3}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, c.IDs())
	a, _ := c.Get("a")
	num, _ := a.Num()
	assert.Equal(t, 3, num)
}

func TestDecodeErrors(t *testing.T) {
	for _, doc := range []string{
		``,
		`[]`,
		`{"a": `,
		`{"a": {"num": }}`,
		`{"a": {"num": 1}`,
		`{"a": {"num": 1}} garbage`,
		`{"a": {"num": 1}}{"b": {}}`,
	} {
		_, err := catalog.Decode(catalog.Pokemon, strings.NewReader(doc))
		assert.Error(t, err, "%q should not decode", doc)
	}
}

func TestRecordDisplay(t *testing.T) {
	r := catalog.Record{
		"basePower": int64(90),
		"accuracy":  true,
		"pp":        float64(2.5),
		"category":  "Special",
		"empty":     "",
		"nothing":   nil,
	}
	for key, want := range map[string]string{
		"basePower": "90",
		"accuracy":  catalog.Placeholder,
		"pp":        "2.5",
		"category":  "Special",
		"empty":     catalog.Placeholder,
		"nothing":   catalog.Placeholder,
		"missing":   catalog.Placeholder,
	} {
		if have := r.Display(key); want != have {
			t.Errorf("Display(%q): want %q, have %q", key, want, have)
		}
	}
}
