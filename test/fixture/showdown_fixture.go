package fixture

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/psview/psview/catalog"
)

// These are example upstream documents: a small pokedex and move list,
// and one of everything else Showdown serves.
var (
	PokedexJSON = `{
		"bulbasaur": {"num": 1, "name": "Bulbasaur", "types": ["Grass", "Poison"],
			"baseStats": {"hp": 45, "atk": 49, "def": 49, "spa": 65, "spd": 65, "spe": 45},
			"abilities": {"0": "Overgrow", "H": "Chlorophyll"}},
		"charmander": {"num": 4, "name": "Charmander", "types": ["Fire"]},
		"charizard": {"num": 6, "name": "Charizard", "types": ["Fire", "Flying"]},
		"charizardmegax": {"num": 6, "name": "Charizard-Mega-X", "types": ["Fire", "Dragon"]},
		"pikachu": {"num": 25, "name": "Pikachu", "types": ["Electric"],
			"baseStats": {"hp": 35, "atk": 55, "def": 40, "spa": 50, "spd": 50, "spe": 90},
			"abilities": {"0": "Static", "H": "Lightning Rod"},
			"learnset": ["thunderbolt", "quickattack", "volttackle", "swordsdance"]},
		"mrmime": {"num": 122, "name": "Mr. Mime", "types": ["Psychic", "Fairy"]},
		"hooh": {"num": 250, "name": "Ho-Oh", "types": ["Fire", "Flying"]},
		"flabebe": {"num": 669, "name": "Flabébé", "types": ["Fairy"]}
	}`

	MovesJSON = `{
		"thunderbolt": {"num": 85, "name": "Thunderbolt", "type": "Electric", "basePower": 90, "accuracy": 100, "pp": 15, "category": "Special"},
		"quickattack": {"num": 98, "name": "Quick Attack", "type": "Normal", "basePower": 40, "accuracy": 100, "pp": 30, "category": "Physical"},
		"swordsdance": {"num": 14, "name": "Swords Dance", "basePower": 0, "accuracy": true, "pp": 20, "category": "Status"},
		"willowisp": {"num": 261, "name": "Will-O-Wisp", "type": "Fire", "basePower": 0, "accuracy": 85, "pp": 15, "category": "Status"}
	}`

	ReplayID   = "gen8doublesubers-1097585496"
	ReplayJSON = `{"id": "gen8doublesubers-1097585496", "format": "[Gen 8] Doubles Ubers", "players": ["Ash", "Gary"], "uploadtime": 1588888888}`
	ReplayLog  = "|j|☆Ash\n|j|☆Gary\n|win|Ash\n"
	InputLog   = ">start {\"formatid\":\"gen8doublesubers\"}\n>player p1 {\"name\":\"Ash\"}\n"

	SearchJSON = `[{"id": "gen8ou-1", "format": "gen8ou", "players": ["Ash", "Gary"], "uploadtime": 1588888888}]`
	UserJSON   = `{"username": "Ash", "userid": "ash", "registertime": 1234567890, "group": 1, "ratings": {"gen8ou": {"elo": 1500}}}`
	LadderJSON = `{"formatid": "gen8ou", "format": "[Gen 8] OU", "toplist": [{"userid": "ash", "username": "Ash", "elo": 1800}]}`
	NewsJSON   = `[{"id": 1, "title": "Welcome", "author": "Zarel"}, {"id": 2, "title": "Café", "author": "Zarel"}]`
	NewsItem   = `{"id": 2, "title": "Café", "author": "Zarel"}`
)

// Pokedex returns PokedexJSON decoded.
func Pokedex() *catalog.Catalog {
	return mustDecode(catalog.Pokemon, PokedexJSON)
}

// Moves returns MovesJSON decoded.
func Moves() *catalog.Catalog {
	return mustDecode(catalog.Move, MovesJSON)
}

func mustDecode(kind catalog.Kind, doc string) *catalog.Catalog {
	c, err := catalog.Decode(kind, strings.NewReader(doc))
	if err != nil {
		panic(err)
	}
	return c
}

const garbled = -1

// Upstream is a fake Showdown, serving the documents above from the same
// paths as the real thing. Every request is recorded.
type Upstream struct {
	*httptest.Server

	mtx      sync.Mutex
	requests []string
	broken   map[string]int
}

// NewUpstream starts a fake Showdown. Responses are gzipped when the
// client asks for it.
func NewUpstream() *Upstream {
	u := &Upstream{broken: map[string]int{}}
	router := mux.NewRouter()
	get := router.Methods("GET").Subrouter()
	get.HandleFunc("/data/pokedex.json", u.serve("application/json", PokedexJSON))
	get.HandleFunc("/data/moves.json", u.serve("application/json", MovesJSON))
	get.HandleFunc("/search.json", u.serve("application/json", SearchJSON))
	get.HandleFunc("/users/{user}.json", u.serve("application/json", UserJSON))
	get.HandleFunc("/ladder/{format}.json", u.serve("application/json", LadderJSON))
	get.HandleFunc("/news.json", u.serve("application/json", NewsJSON))
	get.HandleFunc("/news/{id}.json", u.serve("application/json", NewsItem))
	get.HandleFunc("/"+ReplayID+".json", u.serve("application/json", ReplayJSON))
	get.HandleFunc("/"+ReplayID+".log", u.serve("text/plain; charset=utf-8", ReplayLog))
	get.HandleFunc("/"+ReplayID+".inputlog", u.serve("text/plain; charset=utf-8", InputLog))
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		http.NotFound(w, r)
	})
	u.Server = httptest.NewServer(handlers.CompressHandler(router))
	return u
}

// Break makes path answer with the given status code from now on.
func (u *Upstream) Break(path string, status int) {
	u.mtx.Lock()
	defer u.mtx.Unlock()
	u.broken[path] = status
}

// Garble makes path answer with truncated JSON from now on.
func (u *Upstream) Garble(path string) {
	u.Break(path, garbled)
}

// Requests returns the request URIs seen so far, in order.
func (u *Upstream) Requests() []string {
	u.mtx.Lock()
	defer u.mtx.Unlock()
	return append([]string(nil), u.requests...)
}

func (u *Upstream) record(r *http.Request) int {
	u.mtx.Lock()
	defer u.mtx.Unlock()
	u.requests = append(u.requests, r.URL.RequestURI())
	return u.broken[r.URL.Path]
}

func (u *Upstream) serve(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		switch status := u.record(r); status {
		case 0:
			fmt.Fprint(w, body)
		case garbled:
			fmt.Fprint(w, body[:len(body)/2])
		default:
			http.Error(w, fmt.Sprintf("broken: %d", status), status)
		}
	}
}
