package runtimecheck

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// Checker runs the runtime preflight against a backend handle.
type Checker struct {
	Logger *zap.Logger // nil discards logs
}

// New returns a Checker logging to logger.
func New(logger *zap.Logger) *Checker {
	return &Checker{Logger: logger}
}

func (c *Checker) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger.Named("preflight")
}

// Run reports whether the backend handle is ready. It never panics and
// never returns an error: every failure is logged and turned into false.
// A failing diagnostic call is logged as a warning and does not change
// the outcome.
func (c *Checker) Run(ctx context.Context, h Handle) (ready bool) {
	log := c.logger()
	log.Info("starting runtime preflight checks")

	if isNil(h) {
		log.Error("backend handle is not initialized")
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			logFailure(log, panicError(r), debug.Stack())
			ready = false
		}
	}()

	methods, err := h.Methods()
	if err != nil {
		logFailure(log, err, nil)
		return false
	}
	log.Info("backend handle initialized",
		zap.String("type", fmt.Sprintf("%T", h)),
		zap.Strings("methods", methods))

	if err := callDiagnostic(ctx, h); err != nil {
		log.Warn("backend preflight check note",
			zap.String("message", err.Error()),
			zap.Bool("known_limitation", errors.Is(err, ErrUnsupported)))
		log.Info("continuing with frontend-only validation")
	} else {
		log.Info("backend preflight checks completed")
	}

	log.Info("all runtime preflight checks passed")
	return true
}

// callDiagnostic invokes the backend method, turning a panic into an error.
func callDiagnostic(ctx context.Context, h Handle) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return h.RunPreflightChecks(ctx)
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}

// logFailure logs everything known about an unexpected failure.
func logFailure(log *zap.Logger, err error, stack []byte) {
	fields := []zap.Field{
		zap.String("message", err.Error()),
		zap.String("name", fmt.Sprintf("%T", err)),
	}
	if len(stack) > 0 {
		fields = append(fields, zap.ByteString("stack", stack))
	} else {
		fields = append(fields, zap.String("stack", "no stack trace"))
	}
	if cause := errors.Unwrap(err); cause != nil {
		fields = append(fields, zap.String("cause", cause.Error()))
	}
	log.Error("runtime preflight check error", fields...)
}
