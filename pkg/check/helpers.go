package check

import (
	"errors"
	"fmt"
)

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
func (r *Result) Failf(format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return r.Fail(msg, errors.New(msg))
}

// Resolve records the suggested resolution for a failure.
func (r *Result) Resolve(resolution string) *Result {
	r.Resolution = resolution
	return r
}

// Pass sets the result to OK with a detail message.
func (r *Result) Pass(detail string) Result {
	r.Status = StatusOK
	r.Details = append(r.Details, detail)
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// Warnf appends a formatted warning that does not change the status.
func (r *Result) Warnf(format string, args ...any) *Result {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	return r
}
