package batch

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

// httpStatuser is implemented by provider errors that carry an HTTP status.
type httpStatuser interface {
	HTTPStatus() int
}

// Classify maps a generator failure to the ErrorKind reported as the cause of
// an exhausted batch.
func Classify(err error) domain.ErrorKind {
	if err == nil {
		return domain.ErrorKindUnknown
	}

	var (
		hs     httpStatuser
		netErr net.Error
		synErr *json.SyntaxError
		typErr *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrorKindTimeout
	case errors.As(err, &hs):
		return classifyStatus(hs.HTTPStatus())
	case errors.Is(err, domain.ErrMissingPhrases):
		return domain.ErrorKindMissingFields
	case errors.As(err, &synErr):
		return domain.ErrorKindInvalidJSON
	case errors.As(err, &typErr):
		return domain.ErrorKindParseError
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return domain.ErrorKindTimeout
		}
		return domain.ErrorKindNetworkError
	}
	return domain.ErrorKindUnknown
}

func classifyStatus(code int) domain.ErrorKind {
	switch code {
	case http.StatusTooManyRequests:
		return domain.ErrorKindRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return domain.ErrorKindTimeout
	case http.StatusNotFound, http.StatusServiceUnavailable, http.StatusBadGateway, 529:
		return domain.ErrorKindModelUnavailable
	}
	return domain.ErrorKindUnknown
}
