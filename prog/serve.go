package main

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/tylerb/graceful"
	"github.com/urfave/cli/v2"

	"github.com/psview/psview/app"
	"github.com/psview/psview/common/xfer"
)

const shutdownTimeout = 5 * time.Second

// router creates the mux for the pages, the API and the metrics.
func router(s app.Source) http.Handler {
	router := mux.NewRouter()
	app.RegisterRoutes(router, s)
	app.RegisterInstrumentationRoutes(router)
	return app.Instrument(router)
}

func (e *env) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the web front-end",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "http.address",
				Value:   ":" + strconv.Itoa(xfer.AppPort),
				Usage:   "webserver listen address",
				EnvVars: []string{"PSVIEW_HTTP_ADDRESS"},
			},
		},
		Action: func(c *cli.Context) error {
			defer log.Info("app exiting")

			rand.Seed(time.Now().UnixNano())
			app.UniqueID = strconv.FormatInt(rand.Int63(), 16)
			log.Infof("app starting, version %s, ID %s", app.Version, app.UniqueID)

			listen := c.String("http.address")
			server := &graceful.Server{
				Timeout: shutdownTimeout,
				Server: &http.Server{
					Addr:    listen,
					Handler: router(e.client),
				},
			}
			log.Infof("listening on %s", listen)
			return server.ListenAndServe()
		},
	}
}
