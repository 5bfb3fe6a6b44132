package app_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gorilla/mux"

	"github.com/psview/psview/app"
)

func newServer(s app.Source) *httptest.Server {
	router := mux.NewRouter()
	app.RegisterRoutes(router, s)
	app.RegisterInstrumentationRoutes(router)
	return httptest.NewServer(app.Instrument(router))
}

// checkGet does a GET and returns the response and the body. Redirects are
// not followed.
func checkGet(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	res, err := client.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("Error getting %s: %s", path, err)
	}
	body, err := ioutil.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("GET %s body read error: %s", path, err)
	}
	return res, body
}

// isStatus GETs path and verifies the status code. Returns the body
func isStatus(t *testing.T, ts *httptest.Server, path string, code int) []byte {
	res, body := checkGet(t, ts, path)
	if res.StatusCode != code {
		_, file, line, _ := runtime.Caller(1)
		t.Fatalf("%s:%d: Expected status %d, got %d. Path: %s", filepath.Base(file), line, code, res.StatusCode, path)
	}
	return body
}

func is200(t *testing.T, ts *httptest.Server, path string) []byte {
	return isStatus(t, ts, path, http.StatusOK)
}

func is404(t *testing.T, ts *httptest.Server, path string) []byte {
	return isStatus(t, ts, path, http.StatusNotFound)
}
