package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/psview/psview/app"
	"github.com/psview/psview/common/sanitize"
	"github.com/psview/psview/common/xfer"
	"github.com/psview/psview/showdown"
)

// env is what every command runs with, set up from the global flags.
type env struct {
	stdout io.Writer
	client showdown.Client
}

var upstreamURL = sanitize.URL("", 0, "")

func (e *env) setup(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log.level"))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	e.client = showdown.NewClient(showdown.Config{
		ReplayURL: upstreamURL(c.String("upstream.replay")),
		MainURL:   upstreamURL(c.String("upstream.main")),
		PlayURL:   upstreamURL(c.String("upstream.play")),
		Timeout:   c.Duration("upstream.timeout"),
		Insecure:  c.Bool("upstream.insecure"),
	})
	return nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	e := &env{stdout: stdout}
	return &cli.App{
		Name:            "psview",
		Usage:           "browse Pokémon Showdown replays, ladders and the Pokédex",
		Version:         app.Version,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log.level",
				Value:   "info",
				Usage:   "logging threshold level: debug|info|warn|error",
				EnvVars: []string{"PSVIEW_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "upstream.replay",
				Value:   xfer.ReplayURL,
				Usage:   "replay server base URL",
				EnvVars: []string{"PSVIEW_UPSTREAM_REPLAY"},
			},
			&cli.StringFlag{
				Name:    "upstream.main",
				Value:   xfer.MainURL,
				Usage:   "main site base URL (users, ladders, news)",
				EnvVars: []string{"PSVIEW_UPSTREAM_MAIN"},
			},
			&cli.StringFlag{
				Name:    "upstream.play",
				Value:   xfer.PlayURL,
				Usage:   "play server base URL (pokedex, moves, sprites)",
				EnvVars: []string{"PSVIEW_UPSTREAM_PLAY"},
			},
			&cli.DurationFlag{
				Name:    "upstream.timeout",
				Value:   showdown.DefaultTimeout,
				Usage:   "timeout for a whole upstream request",
				EnvVars: []string{"PSVIEW_UPSTREAM_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:    "upstream.insecure",
				Usage:   "skip TLS certificate verification",
				EnvVars: []string{"PSVIEW_UPSTREAM_INSECURE"},
			},
		},
		Before:   e.setup,
		Commands: append(e.reportCommands(), e.serveCommand()),
		Action: func(c *cli.Context) error {
			if err := cli.ShowAppHelp(c); err != nil {
				return err
			}
			if c.NArg() > 0 {
				return errors.Errorf("unknown command %q", c.Args().First())
			}
			return errors.New("no command given")
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
