package showdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psview/psview/common/xfer"
)

func TestConfigDefaults(t *testing.T) {
	have := Config{PlayURL: "http://localhost:8000", Timeout: -1}.withDefaults()
	assert.Equal(t, Config{
		ReplayURL: xfer.ReplayURL,
		MainURL:   xfer.MainURL,
		PlayURL:   "http://localhost:8000",
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}, have)
}

func TestConfigTransport(t *testing.T) {
	secure := Config{}.getHTTPTransport()
	require.NotNil(t, secure.TLSClientConfig)
	assert.False(t, secure.TLSClientConfig.InsecureSkipVerify)
	assert.Equal(t, certPool, secure.TLSClientConfig.RootCAs)

	insecure := Config{Insecure: true}.getHTTPTransport()
	assert.True(t, insecure.TLSClientConfig.InsecureSkipVerify)
}

func TestNewRequestHeaders(t *testing.T) {
	cfg := Config{UserAgent: "psview-test"}.withDefaults()
	req, err := cfg.newRequest(context.Background(), cfg.PlayURL+"/data/pokedex.json")
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "psview-test", req.Header.Get("User-Agent"))

	c := NewClient(Config{Timeout: time.Second}).(*client)
	assert.Equal(t, time.Second, c.client.Timeout)
	assert.Equal(t, xfer.PlayURL, c.PlayURL)
}

func TestSearchParamsValues(t *testing.T) {
	assert.Empty(t, SearchParams{}.Values())
	assert.Equal(t, "before=12&page=3&user=a", SearchParams{User: "a", Before: 12, Page: 3}.Values().Encode())
}
