package utils

import (
	"time"

	"github.com/iov-one/treasury"
)

// Logging is a decorator to log requests as they pass through
type Logging struct{}

var _ treasury.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Checker) (*treasury.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, req)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, req, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Deliverer) (*treasury.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, req)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, req, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx treasury.Context, req *treasury.Request, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := treasury.GetLogger(ctx).With(
		"path", req.Path,
		"duration", delta/time.Microsecond,
	)
	if id, ok := treasury.GetRequestID(ctx); ok {
		logger = logger.With("request", id)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
