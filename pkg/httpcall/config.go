package httpcall

import (
	"time"

	"github.com/ooni/netresult/internal/model"
)

// DefaultMaxBodySize is the default value for Config.MaxBodySize.
const DefaultMaxBodySize = 1 << 22

// Config contains configuration for Call.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Dispatcher is the OPTIONAL [*Dispatcher] running enqueued calls. If
	// nil, we use DefaultDispatcher.
	Dispatcher *Dispatcher

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// LogBody OPTIONALLY enables logging the response body.
	LogBody bool

	// MaxBodySize is the OPTIONAL maximum number of body bytes to read. If
	// zero or negative, we use DefaultMaxBodySize. A larger 2xx body is a
	// failure wrapping ErrBodyTooLarge; a larger non-2xx body is truncated
	// to MaxBodySize bytes in Response.ErrorBody.
	MaxBodySize int64

	// Timeout is the OPTIONAL timeout for the whole call including
	// reading the body. Zero or negative means no timeout.
	Timeout time.Duration

	// UserAgent is the OPTIONAL User-Agent to set when the request
	// does not already have one.
	UserAgent string
}

func (c *Config) maxBodySize() int64 {
	if c.MaxBodySize > 0 {
		return c.MaxBodySize
	}
	return DefaultMaxBodySize
}

func (c *Config) dispatcher() *Dispatcher {
	if c.Dispatcher != nil {
		return c.Dispatcher
	}
	return DefaultDispatcher
}
