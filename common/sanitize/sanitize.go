package sanitize

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// URL returns a function that sanitizes an upstream base URL. It lets
// underspecified strings like "localhost:8000" be converted to usable
// URLs via some default arguments. The result never ends in a slash, so
// endpoint paths can be appended directly.
func URL(scheme string, port int, path string) func(string) string {
	if scheme == "" {
		scheme = "http://"
	}
	return func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return s // can't do much here
		}
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			if strings.HasSuffix(hostOf(s), ":443") {
				s = "https://" + s
			} else {
				s = scheme + s
			}
		}
		u, err := url.Parse(s)
		if err != nil {
			log.Warnf("%q: %v", s, err)
			return s // oh well
		}
		if port > 0 {
			if _, _, err = net.SplitHostPort(u.Host); err != nil {
				u.Host += fmt.Sprintf(":%d", port)
			}
		}
		if path != "" && u.Path != path {
			u.Path = path
		}
		u.Path = strings.TrimRight(u.Path, "/")
		return u.String()
	}
}

func hostOf(s string) string {
	if i := strings.Index(s, "/"); i >= 0 {
		return s[:i]
	}
	return s
}
