package showdown

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"time"

	"github.com/certifi/gocertifi"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/psview/psview/common/xfer"
)

const (
	dialTimeout = 5 * time.Second

	// DefaultTimeout bounds every request to Showdown, including reading
	// the body. The pokedex and move list are a few megabytes each.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "psview"
)

var certPool *x509.CertPool

func init() {
	var err error
	certPool, err = gocertifi.CACerts()
	if err != nil {
		panic(err)
	}
}

// Config contains all the info needed for a client to do HTTP requests to
// Showdown. Base URLs must not end in a slash.
type Config struct {
	ReplayURL string
	MainURL   string
	PlayURL   string
	UserAgent string
	Timeout   time.Duration
	Insecure  bool
}

// DefaultConfig points at the public Showdown hosts.
func DefaultConfig() Config {
	return Config{
		ReplayURL: xfer.ReplayURL,
		MainURL:   xfer.MainURL,
		PlayURL:   xfer.PlayURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}

func (cfg Config) withDefaults() Config {
	defaults := DefaultConfig()
	if cfg.ReplayURL == "" {
		cfg.ReplayURL = defaults.ReplayURL
	}
	if cfg.MainURL == "" {
		cfg.MainURL = defaults.MainURL
	}
	if cfg.PlayURL == "" {
		cfg.PlayURL = defaults.PlayURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	return cfg
}

func (cfg Config) newRequest(ctx context.Context, urlStr string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	return req, nil
}

func (cfg Config) getHTTPTransport() *http.Transport {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	} else {
		transport.TLSClientConfig = &tls.Config{RootCAs: certPool}
	}
	return transport
}
