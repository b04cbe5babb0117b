package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name       string   // e.g., "dfx.json", "frontend"
	Status     Status   // OK or FAIL
	Details    []string // human-readable details
	Resolution string   // suggested fix, set on failures
	Warnings   []string // notes that do not affect Status
	Children   []Result // soft sub-checks; reported but never change Status
	Err        error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Failed reports whether the result or any of its children failed.
func (r Result) Failed() bool {
	if !r.OK() {
		return true
	}
	for _, c := range r.Children {
		if c.Failed() {
			return true
		}
	}
	return false
}

// Message returns the first detail line, or the name when there are none.
func (r Result) Message() string {
	if len(r.Details) == 0 {
		return r.Name
	}
	return r.Details[0]
}
