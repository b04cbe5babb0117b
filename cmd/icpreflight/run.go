package main

import (
	"errors"
)

// ErrCheckFailed is returned when a preflight run fails.
// main turns it into exit code 1 without printing it again.
var ErrCheckFailed = errors.New("check failed")
