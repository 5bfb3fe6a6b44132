package app

import (
	"context"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/psview/psview/catalog"
)

var (
	// Version - set at buildtime.
	Version = "dev"

	// UniqueID - set at runtime.
	UniqueID = "0"
)

// PokedexPath is where the full listing lives; blank searches land there.
const PokedexPath = "/pokedex"

// Source is where the app gets its catalogs from. showdown.Client is one.
type Source interface {
	Pokedex(ctx context.Context) (*catalog.Catalog, error)
	Moves(ctx context.Context) (*catalog.Catalog, error)
}

// StaticSource always serves the same catalogs.
func StaticSource(pokedex, moves *catalog.Catalog) Source {
	return staticSource{pokedex: pokedex, moves: moves}
}

type staticSource struct {
	pokedex, moves *catalog.Catalog
}

func (s staticSource) Pokedex(context.Context) (*catalog.Catalog, error) { return s.pokedex, nil }
func (s staticSource) Moves(context.Context) (*catalog.Catalog, error)   { return s.moves, nil }

// CtxHandlerFunc is a http.HandlerFunc, with added contexts
type CtxHandlerFunc func(context.Context, http.ResponseWriter, *http.Request)

func requestContextDecorator(f CtxHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f(r.Context(), w, r)
	}
}

func gzipHandler(h http.HandlerFunc) http.Handler {
	return gziphandler.GzipHandler(h)
}

// RegisterRoutes registers the pages and the JSON API with a http mux.
func RegisterRoutes(router *mux.Router, s Source) {
	get := router.Methods("GET").Subrouter()
	get.Handle("/",
		gzipHandler(requestContextDecorator(handleIndex))).
		Name("index")
	get.Handle(PokedexPath,
		gzipHandler(requestContextDecorator(makePokedexHandler(s)))).
		Name("pokedex")
	get.Handle("/pokemon/{id}",
		gzipHandler(requestContextDecorator(makePokemonHandler(s)))).
		Name("pokemon")
	get.Handle("/search",
		gzipHandler(requestContextDecorator(makeSearchHandler(s)))).
		Name("search")
	get.Handle("/api",
		gzipHandler(requestContextDecorator(apiHandler))).
		Name("api")
	get.Handle("/api/pokemon/{id}",
		gzipHandler(requestContextDecorator(makeAPIPokemonHandler(s)))).
		Name("api_pokemon")
}
