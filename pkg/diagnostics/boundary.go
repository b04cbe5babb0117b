// Package diagnostics intercepts failures in a guarded section and replaces
// its output with a fallback panel, logging everything known about the failure.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Failure describes an intercepted error.
type Failure struct {
	Component string // guarded section name
	Err       error
	Stack     []byte // set when the failure was a panic
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Component, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Boundary guards sections of work.
type Boundary struct {
	Logger *zap.Logger
	Out    io.Writer // fallback panel destination; nil disables rendering
}

// Guard runs fn. A panic or returned error is logged, a fallback panel is
// written to Out, and a *Failure is returned. Guard never panics itself.
func (b *Boundary) Guard(component string, fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, ok := r.(error)
		if !ok {
			perr = fmt.Errorf("%v", r)
		}
		err = b.fail(&Failure{Component: component, Err: perr, Stack: debug.Stack()})
	}()

	if ferr := fn(); ferr != nil {
		return b.fail(&Failure{Component: component, Err: ferr})
	}
	return nil
}

func (b *Boundary) fail(f *Failure) error {
	log := zap.NewNop()
	if b.Logger != nil {
		log = b.Logger.Named("diagnostics")
	}

	fields := []zap.Field{
		zap.String("message", f.Err.Error()),
		zap.String("name", fmt.Sprintf("%T", f.Err)),
		zap.String("component", f.Component),
	}
	if len(f.Stack) > 0 {
		fields = append(fields, zap.ByteString("stack", f.Stack))
	}
	if cause := errors.Unwrap(f.Err); cause != nil {
		fields = append(fields, zap.String("cause", cause.Error()))
	}
	log.Error("error boundary triggered", fields...)

	if b.Out != nil {
		_, _ = fmt.Fprintln(b.Out, Fallback(f.Err))
	}
	return f
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			Padding(1, 2).
			Width(64)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1a1"))
	codeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5"))
)

// Fallback renders the panel shown in place of the failed section.
func Fallback(err error) string {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Application Error"),
		"",
		hintStyle.Render("An error occurred during initialization. Re-run with --debug for detailed diagnostics."),
		"",
		codeStyle.Render(msg),
	))
}
