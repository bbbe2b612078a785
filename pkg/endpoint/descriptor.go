package endpoint

//
// HTTP API descriptor (e.g., GET /api/v1/test)
//

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/ooni/netresult/internal/model"
	"github.com/ooni/netresult/internal/runtimex"
)

// Descriptor contains the parameters for calling an HTTP API.
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Descriptor struct {
	// Accept contains the OPTIONAL accept header.
	Accept string

	// Authorization is the OPTIONAL authorization, which overrides
	// the one configured in the Service.
	Authorization string

	// ContentType is the OPTIONAL content-type header.
	ContentType string

	// LogBody OPTIONALLY enables logging bodies.
	LogBody bool

	// MaxBodySize is the OPTIONAL maximum response body size. If
	// not set, we use DefaultMaxBodySize.
	MaxBodySize int64

	// Method is the MANDATORY request method.
	Method string

	// RequestBody is the OPTIONAL request body.
	RequestBody []byte

	// Timeout is the OPTIONAL timeout for this call. If not set, we
	// use DefaultCallTimeout.
	Timeout time.Duration

	// URLPath is the MANDATORY URL path.
	URLPath string

	// URLQuery is the OPTIONAL query.
	URLQuery url.Values
}

// DefaultMaxBodySize is the default maximum response body size.
const DefaultMaxBodySize = 1 << 22

// DefaultCallTimeout is the default timeout of a call.
const DefaultCallTimeout = 60 * time.Second

// WithBodyLogging returns a shallow copy of desc with LogBody set to value.
func (desc *Descriptor) WithBodyLogging(value bool) *Descriptor {
	out := *desc
	out.LogBody = value
	return &out
}

// WithTimeout returns a shallow copy of desc with the given Timeout.
func (desc *Descriptor) WithTimeout(timeout time.Duration) *Descriptor {
	out := *desc
	out.Timeout = timeout
	return &out
}

// NewGETJSONDescriptor creates a descriptor using the GET method
// and expecting a JSON response. The query may be nil.
func NewGETJSONDescriptor(urlPath string, query url.Values) *Descriptor {
	return &Descriptor{
		Accept:      model.HTTPHeaderAccept,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodGet,
		Timeout:     DefaultCallTimeout,
		URLPath:     urlPath,
		URLQuery:    query,
	}
}

// NewPOSTJSONDescriptor creates a descriptor POSTing request as JSON
// and expecting a JSON response. It only fails if request cannot be
// serialized as JSON.
func NewPOSTJSONDescriptor(urlPath string, request any) (*Descriptor, error) {
	rawRequest, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	desc := &Descriptor{
		Accept:      model.HTTPHeaderAccept,
		ContentType: model.HTTPContentTypeJSON,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodPost,
		RequestBody: rawRequest,
		Timeout:     DefaultCallTimeout,
		URLPath:     urlPath,
	}
	return desc, nil
}

// MustNewPOSTJSONDescriptor is like NewPOSTJSONDescriptor but panics on failure.
func MustNewPOSTJSONDescriptor(urlPath string, request any) *Descriptor {
	desc, err := NewPOSTJSONDescriptor(urlPath, request)
	runtimex.PanicOnError(err, "NewPOSTJSONDescriptor failed")
	return desc
}
