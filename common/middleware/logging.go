package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Log middleware logs http requests
type Log struct{}

// Wrap implements Middleware
func (l Log) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		uri := r.RequestURI // capture the URI before running next, as it may get rewritten
		i := &interceptor{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(i, r)
		if 100 <= i.statusCode && i.statusCode < 400 {
			log.Debugf("%s %s (%d) %s", r.Method, uri, i.statusCode, time.Since(begin))
		} else {
			log.Warnf("%s %s (%d) %s", r.Method, uri, i.statusCode, time.Since(begin))
		}
	})
}

// Logging middleware logs each HTTP request method, path, response code and
// duration for all HTTP requests.
var Logging = Log{}
