package showdown

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"github.com/weaveworks/common/instrument"

	"github.com/psview/psview/catalog"
	"github.com/psview/psview/common/marshal"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "psview",
	Name:      "upstream_request_duration_seconds",
	Help:      "Time in seconds spent doing requests to Showdown.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "status_code"})

// ReplayFormat is one of the ways a replay can be downloaded.
type ReplayFormat string

// The replay formats Showdown serves.
const (
	ReplayJSON     ReplayFormat = "json"
	ReplayLog      ReplayFormat = "log"
	ReplayInputLog ReplayFormat = "inputlog"
)

// ReplayFormats lists the valid replay formats.
var ReplayFormats = []ReplayFormat{ReplayJSON, ReplayLog, ReplayInputLog}

// ParseReplayFormat validates a replay format name.
func ParseReplayFormat(s string) (ReplayFormat, error) {
	for _, f := range ReplayFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("invalid replay format %q: must be one of json, log, inputlog", s)
}

// SearchParams narrow down a replay search. Zero values are left out of
// the query.
type SearchParams struct {
	User   string
	User2  string
	Format string
	Before int64
	Page   int
}

// Values returns the query string for the set parameters only.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	if p.User != "" {
		v.Set("user", p.User)
	}
	if p.User2 != "" {
		v.Set("user2", p.User2)
	}
	if p.Format != "" {
		v.Set("format", p.Format)
	}
	if p.Before != 0 {
		v.Set("before", strconv.FormatInt(p.Before, 10))
	}
	if p.Page != 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

// Client is a client to the Showdown JSON endpoints. Every call does
// exactly one GET per upstream document; nothing is cached or retried.
// Failures come back as errors: a *StatusError for non-2xx answers,
// otherwise a transport or decoding error wrapping the URL.
type Client interface {
	Replay(ctx context.Context, id string, format ReplayFormat) (interface{}, error)
	SearchReplays(ctx context.Context, params SearchParams) (interface{}, error)
	User(ctx context.Context, name string) (interface{}, error)
	Ladder(ctx context.Context, format string) (interface{}, error)
	News(ctx context.Context, id int) (interface{}, error)
	Pokedex(ctx context.Context) (*catalog.Catalog, error)
	Moves(ctx context.Context) (*catalog.Catalog, error)
	Pokemon(ctx context.Context, name string) (string, catalog.Record, error)
	Move(ctx context.Context, name string) (string, catalog.Record, error)
}

type client struct {
	Config
	client *http.Client
}

// NewClient makes a new Client. Empty Config fields take their defaults.
func NewClient(cfg Config) Client {
	cfg = cfg.withDefaults()
	return &client{
		Config: cfg,
		client: &http.Client{
			Transport: cfg.getHTTPTransport(),
			Timeout:   cfg.Timeout,
		},
	}
}

type countingReader struct {
	io.Reader
	n uint64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	r.n += uint64(n)
	return n, err
}

// get fetches urlStr and hands the body to read.
func (c *client) get(ctx context.Context, method, urlStr string, read func(io.Reader) error) error {
	return instrument.TimeRequestHistogramStatus(ctx, method, requestDuration, statusCode, func(ctx context.Context) error {
		begin := time.Now()
		req, err := c.newRequest(ctx, urlStr)
		if err != nil {
			return err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return errors.Wrapf(err, "requesting %s", urlStr)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &StatusError{URL: urlStr, StatusCode: resp.StatusCode, Status: resp.Status}
		}

		body := &countingReader{Reader: resp.Body}
		if err := read(body); err != nil {
			return errors.Wrapf(err, "decoding response from %s", urlStr)
		}
		log.Debugf("GET %s: %s in %s", urlStr, humanize.Bytes(body.n), time.Since(begin))
		return nil
	})
}

func (c *client) getJSON(ctx context.Context, method, urlStr string) (interface{}, error) {
	var result interface{}
	err := c.get(ctx, method, urlStr, func(r io.Reader) error {
		return marshal.DecodeJSON(r, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) getText(ctx context.Context, method, urlStr string) (string, error) {
	var result string
	err := c.get(ctx, method, urlStr, func(r io.Reader) error {
		b, err := ioutil.ReadAll(r)
		result = string(b)
		return err
	})
	return result, err
}

func (c *client) getCatalog(ctx context.Context, method, urlStr string, kind catalog.Kind) (*catalog.Catalog, error) {
	var result *catalog.Catalog
	err := c.get(ctx, method, urlStr, func(r io.Reader) error {
		var err error
		result, err = catalog.Decode(kind, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Replay fetches a replay. JSON replays come back decoded; logs come back
// as a string.
func (c *client) Replay(ctx context.Context, id string, format ReplayFormat) (interface{}, error) {
	if _, err := ParseReplayFormat(string(format)); err != nil {
		return nil, err
	}
	urlStr := fmt.Sprintf("%s/%s.%s", c.ReplayURL, url.PathEscape(id), format)
	if format == ReplayJSON {
		return c.getJSON(ctx, "Showdown.Replay", urlStr)
	}
	return c.getText(ctx, "Showdown.Replay", urlStr)
}

// SearchReplays looks for replays matching params.
func (c *client) SearchReplays(ctx context.Context, params SearchParams) (interface{}, error) {
	urlStr := c.ReplayURL + "/search.json"
	if query := params.Values().Encode(); query != "" {
		urlStr += "?" + query
	}
	return c.getJSON(ctx, "Showdown.SearchReplays", urlStr)
}

// User fetches a user's public profile and ratings.
func (c *client) User(ctx context.Context, name string) (interface{}, error) {
	urlStr := fmt.Sprintf("%s/users/%s.json", c.MainURL, url.PathEscape(name))
	return c.getJSON(ctx, "Showdown.User", urlStr)
}

// Ladder fetches the ladder of a battle format.
func (c *client) Ladder(ctx context.Context, format string) (interface{}, error) {
	urlStr := fmt.Sprintf("%s/ladder/%s.json", c.MainURL, url.PathEscape(format))
	return c.getJSON(ctx, "Showdown.Ladder", urlStr)
}

// News fetches all news, or the news item with the given id when it isn't
// zero.
func (c *client) News(ctx context.Context, id int) (interface{}, error) {
	urlStr := c.MainURL + "/news.json"
	if id != 0 {
		urlStr = fmt.Sprintf("%s/news/%d.json", c.MainURL, id)
	}
	return c.getJSON(ctx, "Showdown.News", urlStr)
}

// Pokedex fetches the full pokedex.
func (c *client) Pokedex(ctx context.Context) (*catalog.Catalog, error) {
	return c.getCatalog(ctx, "Showdown.Pokedex", c.PlayURL+"/data/pokedex.json", catalog.Pokemon)
}

// Moves fetches the full move list.
func (c *client) Moves(ctx context.Context) (*catalog.Catalog, error) {
	return c.getCatalog(ctx, "Showdown.Moves", c.PlayURL+"/data/moves.json", catalog.Move)
}

// Pokemon fetches the pokedex and resolves name against it.
func (c *client) Pokemon(ctx context.Context, name string) (string, catalog.Record, error) {
	pokedex, err := c.Pokedex(ctx)
	if err != nil {
		return "", nil, err
	}
	return catalog.Resolve(pokedex, name)
}

// Move fetches the move list and resolves name against it.
func (c *client) Move(ctx context.Context, name string) (string, catalog.Record, error) {
	moves, err := c.Moves(ctx)
	if err != nil {
		return "", nil, err
	}
	return catalog.Resolve(moves, name)
}
