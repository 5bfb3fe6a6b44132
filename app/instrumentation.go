package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/psview/psview/common/middleware"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "psview",
	Name:      "request_duration_seconds",
	Help:      "Time in seconds spent serving HTTP requests.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status_code"})

// RegisterInstrumentationRoutes exposes the metrics psview has collected, so
// that prometheus can scrape them.
func RegisterInstrumentationRoutes(router *mux.Router) {
	router.Methods("GET").Path("/metrics").Handler(promhttp.Handler()).Name("metrics")
}

// Instrument wraps a router so every request is logged and timed by route name.
func Instrument(router *mux.Router) http.Handler {
	return middleware.Merge(
		middleware.Logging,
		middleware.Instrument{Routes: router, Duration: requestDuration},
	).Wrap(router)
}
