package app

import (
	"bytes"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/psview/psview/catalog"
)

type flash struct {
	Category string
	Message  string
}

type page struct {
	Title   string
	Query   string
	Flashes []flash
	Entries []catalog.Entry
	Detail  *catalog.Detail
	Error   string
}

// render executes a page template into a buffer first, so a template error
// turns into a 500 rather than half a page.
func render(w http.ResponseWriter, code int, name string, p page) {
	var buf bytes.Buffer
	if err := templates[name].ExecuteTemplate(&buf, "layout", p); err != nil {
		log.Errorf("Error rendering %s page: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Cache-Control", "no-cache")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	logError(r, err)
	render(w, errorStatus(err), "error", page{
		Title:   "Error",
		Flashes: []flash{{Category: "danger", Message: err.Error()}},
		Error:   err.Error(),
	})
}
