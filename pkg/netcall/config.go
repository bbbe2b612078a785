package netcall

import (
	"time"

	"github.com/ooni/netresult/internal/model"
)

// Config contains configuration for ResultCall.
type Config struct {
	// Logger is the MANDATORY logger to use.
	Logger model.Logger

	// Observer is the OPTIONAL observer notified about calls.
	Observer Observer
}

// Observer is notified when a ResultCall starts and when it delivers.
type Observer interface {
	// CallStarted is called when the call is enqueued.
	CallStarted()

	// CallDelivered is called once per call with the outcome, which is
	// either OutcomeSuccess or the errclass.Kind of the failure.
	CallDelivered(outcome string, elapsed time.Duration)
}

// OutcomeSuccess is the outcome of a successful call.
const OutcomeSuccess = "success"
