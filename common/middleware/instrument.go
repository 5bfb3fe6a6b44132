package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Route labels for requests that have no usable route name.
const (
	UnmatchedRoute = "unmatched_path"
	UnnamedRoute   = "unnamed_path"
)

// RouteMatcher finds the route for a request; *mux.Router is one.
type RouteMatcher interface {
	Match(*http.Request, *mux.RouteMatch) bool
}

// RouteName is the name of the route r is served by, as given with
// mux.Route.Name.
func RouteName(routes RouteMatcher, r *http.Request) string {
	var match mux.RouteMatch
	if routes == nil || !routes.Match(r, &match) {
		return UnmatchedRoute
	}
	if name := match.Route.GetName(); name != "" {
		return name
	}
	return UnnamedRoute
}

// Instrument is a middleware timing every request into Duration, labelled
// with method, route name and status code.
type Instrument struct {
	Routes   RouteMatcher
	Duration *prometheus.HistogramVec
}

// Wrap implements Interface
func (i Instrument) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := RouteName(i.Routes, r)
		begin := time.Now()
		rec := &interceptor{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)
		i.Duration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.statusCode)).
			Observe(time.Since(begin).Seconds())
	})
}
