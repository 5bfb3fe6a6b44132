package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psview/psview/test/fixture"
)

func run(u *fixture.Upstream, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	argv := []string{
		"psview",
		"--upstream.replay", u.URL,
		"--upstream.main", u.URL,
		"--upstream.play", u.URL,
		"--upstream.timeout", "5s",
	}
	err := newApp(&stdout, &stderr).Run(append(argv, args...))
	return stdout.String(), err
}

func decode(t *testing.T, out string) interface{} {
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestReplayCommand(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	out, err := run(u, "replay", fixture.ReplayID)
	require.NoError(t, err)
	doc := decode(t, out).(map[string]interface{})
	assert.Equal(t, fixture.ReplayID, doc["id"])

	out, err = run(u, "replay", "--format", "log", fixture.ReplayID)
	require.NoError(t, err)
	assert.Equal(t, fixture.ReplayLog+"\n", out, "stdout text ends with a newline")

	_, err = run(u, "replay", "--format", "html", fixture.ReplayID)
	assert.Error(t, err)
	assert.Equal(t, []string{
		"/" + fixture.ReplayID + ".json",
		"/" + fixture.ReplayID + ".log",
	}, u.Requests())
}

func TestCommandRequests(t *testing.T) {
	for _, input := range []struct {
		args []string
		want string
	}{
		{[]string{"search"}, "/search.json"},
		{[]string{"search", "--user", "Ash", "--page", "2"}, "/search.json?page=2&user=Ash"},
		{[]string{"search", "--format", "gen8ou", "--before", "1588888888"}, "/search.json?before=1588888888&format=gen8ou"},
		{[]string{"user", "Ash"}, "/users/Ash.json"},
		{[]string{"ladder", "gen8ou"}, "/ladder/gen8ou.json"},
		{[]string{"news"}, "/news.json"},
		{[]string{"news", "--id", "2"}, "/news/2.json"},
		{[]string{"pokedex"}, "/data/pokedex.json"},
		{[]string{"moves"}, "/data/moves.json"},
	} {
		u := fixture.NewUpstream()
		out, err := run(u, input.args...)
		u.Close()
		require.NoError(t, err, input.args)
		decode(t, out)
		assert.Equal(t, []string{input.want}, u.Requests(), input.args)
	}
}

func TestPokedexByName(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	out, err := run(u, "pokedex", "--name", "Pika-Chu")
	require.NoError(t, err)
	rec := decode(t, out).(map[string]interface{})
	assert.Equal(t, "Pikachu", rec["name"])
	assert.Equal(t, float64(25), rec["num"])

	out, err = run(u, "moves", "--name", "Swords Dance")
	require.NoError(t, err)
	rec = decode(t, out).(map[string]interface{})
	assert.Equal(t, true, rec["accuracy"])
}

func TestCatalogDumpKeepsOrder(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	out, err := run(u, "pokedex")
	require.NoError(t, err)
	assert.True(t, inOrder(out,
		`"bulbasaur"`, `"charmander"`, `"charizard"`, `"charizardmegax"`,
		`"pikachu"`, `"mrmime"`, `"hooh"`, `"flabebe"`,
	), out)

	out, err = run(u, "moves")
	require.NoError(t, err)
	assert.True(t, inOrder(out, `"thunderbolt"`, `"quickattack"`, `"swordsdance"`, `"willowisp"`), out)
	assert.Len(t, decode(t, out), 4)
}

// inOrder tells whether every needle appears in s, in the given order.
func inOrder(s string, needles ...string) bool {
	for _, n := range needles {
		i := strings.Index(s, n)
		if i < 0 {
			return false
		}
		s = s[i+len(n):]
	}
	return true
}

func TestNameNotFound(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	_, err := run(u, "pokedex", "--name", "raichu")
	require.Error(t, err)
	assert.Equal(t, `pokemon "raichu" not found`, err.Error())

	_, err = run(u, "moves", "--name", "hyperbeam")
	require.Error(t, err)
	assert.Equal(t, `move "hyperbeam" not found`, err.Error())
}

func TestOutputFile(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()
	dir, err := ioutil.TempDir("", "psview")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "news.json")
	out, err := run(u, "news", "--output", filename)
	require.NoError(t, err)

	content, err := ioutil.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Data saved to %s (%s)\n", filename, humanize.Bytes(uint64(len(content)))), out)
	assert.Contains(t, string(content), "Café")
	assert.True(t, strings.Contains(string(content), "\n  {"), "two-space indent: %s", content)
	assert.Len(t, decode(t, string(content)), 2)

	filename = filepath.Join(dir, "replay.log")
	_, err = run(u, "replay", "-o", filename, "--format", "log", fixture.ReplayID)
	require.NoError(t, err)
	content, err = ioutil.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, fixture.ReplayLog, string(content))

	_, err = run(u, "news", "--output", filepath.Join(dir, "missing", "news.json"))
	assert.Error(t, err)
}

func TestUsageErrors(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	out, err := run(u)
	assert.Error(t, err, "no command")
	assert.Contains(t, out, "replay")
	assert.Contains(t, out, "pokedex")

	out, err = run(u, "frobnicate")
	require.Error(t, err, "unknown command")
	assert.Contains(t, err.Error(), "frobnicate")
	assert.Contains(t, out, "replay", "usage is printed for an unknown command")
	assert.Contains(t, out, "pokedex")

	for _, cmd := range []string{"replay", "user", "ladder"} {
		_, err = run(u, cmd)
		assert.Error(t, err, "%s without its argument", cmd)
	}
	assert.Empty(t, u.Requests())
}

func TestUpstreamFailure(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	u.Break("/users/Ash.json", http.StatusServiceUnavailable)
	_, err := run(u, "user", "Ash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	u.Garble("/ladder/gen8ou.json")
	_, err = run(u, "ladder", "gen8ou")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	u := fixture.NewUpstream()
	defer u.Close()

	_, err := run(u, "--log.level", "chatty", "news")
	assert.Error(t, err)
	assert.Empty(t, u.Requests())
}
