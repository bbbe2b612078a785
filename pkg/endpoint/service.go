package endpoint

import (
	"net/http"

	"github.com/ooni/netresult/internal/model"
	"github.com/ooni/netresult/pkg/calladapter"
	"github.com/ooni/netresult/pkg/httpcall"
	"github.com/ooni/netresult/pkg/netcall"
)

// Service contains what the endpoints of an API share.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Service struct {
	// Authorization is the OPTIONAL default Authorization header.
	Authorization string

	// BaseURL is the MANDATORY base URL (e.g. "https://api.example.com/v1").
	BaseURL string

	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Dispatcher is the OPTIONAL [*httpcall.Dispatcher] running enqueued calls.
	Dispatcher *httpcall.Dispatcher

	// Header contains OPTIONAL extra headers added to each request.
	Header http.Header

	// Host is the OPTIONAL Host header, to use when the host in BaseURL
	// is not the one the server expects (e.g. domain fronting).
	Host string

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// Observer is the OPTIONAL [netcall.Observer].
	Observer netcall.Observer

	// Registry is the OPTIONAL adapter registry. If nil, we use a
	// registry containing [calladapter.ResultFactory].
	Registry *calladapter.Registry

	// UserAgent is the OPTIONAL User-Agent header.
	UserAgent string
}

func (svc *Service) registry() *calladapter.Registry {
	if svc.Registry != nil {
		return svc.Registry
	}
	return calladapter.NewDefaultRegistry()
}

func (svc *Service) logger() model.Logger {
	return model.ValidLoggerOrDefault(svc.Logger)
}
