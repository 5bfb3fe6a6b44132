package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/psview/psview/showdown"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "write the result to `FILE` instead of stdout",
}

// report makes a command action out of a fetch, sending what it returns
// through the output writer.
func (e *env) report(fetch func(c *cli.Context) (interface{}, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		data, err := fetch(c)
		if err != nil {
			return err
		}
		return e.output(c.String("output"), data)
	}
}

func requireArg(c *cli.Context, name string) (string, error) {
	if c.NArg() < 1 || c.Args().First() == "" {
		return "", errors.Errorf("%s: missing argument %s", c.Command.Name, name)
	}
	return c.Args().First(), nil
}

func (e *env) reportCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "replay",
			Usage:     "download a replay",
			ArgsUsage: "<replay-id>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: string(showdown.ReplayJSON),
					Usage: "json, log or inputlog",
				},
				outputFlag,
			},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				id, err := requireArg(c, "<replay-id>")
				if err != nil {
					return nil, err
				}
				format, err := showdown.ParseReplayFormat(c.String("format"))
				if err != nil {
					return nil, err
				}
				return e.client.Replay(c.Context, id, format)
			}),
		},
		{
			Name:  "search",
			Usage: "search replays",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "user", Usage: "first player"},
				&cli.StringFlag{Name: "user2", Usage: "second player"},
				&cli.StringFlag{Name: "format", Usage: "battle format, e.g. gen8ou"},
				&cli.Int64Flag{Name: "before", Usage: "only replays uploaded before this unix timestamp"},
				&cli.IntFlag{Name: "page", Usage: "result page"},
				outputFlag,
			},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				return e.client.SearchReplays(c.Context, showdown.SearchParams{
					User:   c.String("user"),
					User2:  c.String("user2"),
					Format: c.String("format"),
					Before: c.Int64("before"),
					Page:   c.Int("page"),
				})
			}),
		},
		{
			Name:      "user",
			Usage:     "show a user's profile and ratings",
			ArgsUsage: "<username>",
			Flags:     []cli.Flag{outputFlag},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				name, err := requireArg(c, "<username>")
				if err != nil {
					return nil, err
				}
				return e.client.User(c.Context, name)
			}),
		},
		{
			Name:      "ladder",
			Usage:     "show the ladder for a format",
			ArgsUsage: "<format>",
			Flags:     []cli.Flag{outputFlag},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				format, err := requireArg(c, "<format>")
				if err != nil {
					return nil, err
				}
				return e.client.Ladder(c.Context, format)
			}),
		},
		{
			Name:  "news",
			Usage: "list the news, or show one item",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "id", Usage: "news item id"},
				outputFlag,
			},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				return e.client.News(c.Context, c.Int("id"))
			}),
		},
		{
			Name:  "pokedex",
			Usage: "dump the Pokédex, or one Pokémon",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Usage: "a Pokémon name, in any spelling"},
				outputFlag,
			},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				if name := c.String("name"); name != "" {
					_, rec, err := e.client.Pokemon(c.Context, name)
					return rec, err
				}
				pokedex, err := e.client.Pokedex(c.Context)
				if err != nil {
					return nil, err
				}
				return pokedex.Ordered(), nil
			}),
		},
		{
			Name:  "moves",
			Usage: "dump the move list, or one move",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Usage: "a move name, in any spelling"},
				outputFlag,
			},
			Action: e.report(func(c *cli.Context) (interface{}, error) {
				if name := c.String("name"); name != "" {
					_, rec, err := e.client.Move(c.Context, name)
					return rec, err
				}
				moves, err := e.client.Moves(c.Context)
				if err != nil {
					return nil, err
				}
				return moves.Ordered(), nil
			}),
		},
	}
}
