package runtimecheck

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider supplies the current backend handle. fetching is true while the
// connection layer is still establishing or refreshing it.
type Provider interface {
	Handle() (h Handle, fetching bool)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (Handle, bool)

// Handle calls f.
func (f ProviderFunc) Handle() (Handle, bool) { return f() }

// Session runs the runtime preflight at most once per application session.
// The check is not started until a handle is available and the provider has
// finished fetching. The first determined result is kept; there are no retries.
type Session struct {
	Checker  *Checker
	Provider Provider
	Logger   *zap.Logger

	group  singleflight.Group
	mu     sync.Mutex
	done   bool
	result bool
}

// NewSession returns a Session using checker and provider.
func NewSession(checker *Checker, provider Provider, logger *zap.Logger) *Session {
	return &Session{Checker: checker, Provider: provider, Logger: logger}
}

// Ready returns the cached determination. determined is false when the check
// has not run yet because no usable handle is available; ready is then false.
// Concurrent callers share a single in-flight run, which is detached from
// the caller's cancellation so one caller giving up does not fail the others.
func (s *Session) Ready(ctx context.Context) (ready, determined bool) {
	s.mu.Lock()
	if s.done {
		ready = s.result
		s.mu.Unlock()
		return ready, true
	}
	s.mu.Unlock()

	h, fetching := s.Provider.Handle()
	if isNil(h) || fetching {
		return false, false
	}

	runCtx := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(MethodRunPreflightChecks, func() (any, error) {
		s.mu.Lock()
		if s.done {
			r := s.result
			s.mu.Unlock()
			return r, nil
		}
		s.mu.Unlock()

		log := s.logger()
		log.Info("running preflight checks")
		r := s.Checker.Run(runCtx, h)
		log.Info("preflight result", zap.Bool("ready", r))

		s.mu.Lock()
		s.done, s.result = true, r
		s.mu.Unlock()
		return r, nil
	})
	return v.(bool), true
}

func (s *Session) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger.Named("session")
}
