package showdown

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/weaveworks/common/instrument"
)

// StatusError is returned when Showdown answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error response from %s: %s", e.URL, e.Status)
}

// IsStatus tells whether err, or the error it wraps, is a StatusError
// with the given status code.
func IsStatus(err error, code int) bool {
	se, ok := errors.Cause(err).(*StatusError)
	return ok && se.StatusCode == code
}

// statusCode labels request metrics with the upstream status code where
// there is one.
func statusCode(err error) string {
	if se, ok := errors.Cause(err).(*StatusError); ok {
		return strconv.Itoa(se.StatusCode)
	}
	return instrument.ErrorCode(err)
}
