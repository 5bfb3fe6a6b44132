package app

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/psview/psview/catalog"
	"github.com/psview/psview/common/xfer"
)

func apiHandler(_ context.Context, w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()
	respondWith(w, http.StatusOK, xfer.Details{
		ID:       UniqueID,
		Version:  Version,
		Hostname: hostname,
	})
}

type apiError struct {
	Error string `json:"error"`
}

// The raw record is served as-is; no moves lookup happens here.
func makeAPIPokemonHandler(s Source) CtxHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		pokedex, err := s.Pokedex(ctx)
		if err == nil {
			var rec catalog.Record
			if _, rec, err = catalog.Resolve(pokedex, mux.Vars(r)["id"]); err == nil {
				respondWith(w, http.StatusOK, rec)
				return
			}
		}
		logError(r, err)
		respondWith(w, errorStatus(err), apiError{Error: err.Error()})
	}
}
