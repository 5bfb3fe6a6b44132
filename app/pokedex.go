package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/psview/psview/catalog"
)

func handleIndex(_ context.Context, w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "index", page{Title: "Search"})
}

func makePokedexHandler(s Source) CtxHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		pokedex, err := s.Pokedex(ctx)
		if err != nil {
			renderError(w, r, err)
			return
		}
		render(w, http.StatusOK, "pokedex", page{
			Title:   "Pokédex",
			Entries: catalog.List(pokedex),
		})
	}
}

func makeSearchHandler(s Source) CtxHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			http.Redirect(w, r, PokedexPath, http.StatusFound)
			return
		}
		pokedex, err := s.Pokedex(ctx)
		if err != nil {
			renderError(w, r, err)
			return
		}
		render(w, http.StatusOK, "search", page{
			Title:   "Search",
			Query:   query,
			Entries: catalog.Search(pokedex, query),
		})
	}
}

// lookupPokemon resolves the {id} route variable and, when the pokemon has a
// learnset, fetches the moves catalog to go with it.
func lookupPokemon(ctx context.Context, s Source, r *http.Request) (catalog.Detail, error) {
	pokedex, err := s.Pokedex(ctx)
	if err != nil {
		return catalog.Detail{}, err
	}
	id, rec, err := catalog.Resolve(pokedex, mux.Vars(r)["id"])
	if err != nil {
		return catalog.Detail{}, err
	}
	var moves *catalog.Catalog
	if catalog.HasLearnset(rec) {
		if moves, err = s.Moves(ctx); err != nil {
			return catalog.Detail{}, err
		}
	}
	return catalog.NewDetail(id, rec, moves), nil
}

func makePokemonHandler(s Source) CtxHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		detail, err := lookupPokemon(ctx, s, r)
		if err != nil {
			renderError(w, r, err)
			return
		}
		render(w, http.StatusOK, "pokemon", page{
			Title:  detail.Name,
			Detail: &detail,
		})
	}
}
