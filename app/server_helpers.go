package app

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/psview/psview/catalog"
	"github.com/psview/psview/common/marshal"
)

func respondWith(w http.ResponseWriter, code int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Add("Cache-Control", "no-cache")
	w.WriteHeader(code)
	if err := marshal.EncodeJSON(w, response); err != nil {
		log.Errorf("Error encoding response: %v", err)
	}
}

// errorStatus maps an error to the status the app answers with: a name
// that doesn't resolve is a 404, anything else went wrong upstream.
func errorStatus(err error) int {
	if catalog.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func logError(r *http.Request, err error) {
	if catalog.IsNotFound(err) {
		log.Warnf("%s %s: %v", r.Method, r.URL.RequestURI(), err)
		return
	}
	log.Errorf("%s %s: %v", r.Method, r.URL.RequestURI(), err)
}
