package check

// Exit codes of a preflight run.
const (
	ExitOK     = 0
	ExitFailed = 1
)

// Report aggregates the results of one preflight run in execution order.
type Report struct {
	Results   []Result
	HasErrors bool
}

// Add appends r and marks the report as errored when r or any child failed.
func (rep *Report) Add(r Result) {
	rep.Results = append(rep.Results, r)
	if r.Failed() {
		rep.HasErrors = true
	}
}

// Failures returns every failed result, children included, in order.
func (rep *Report) Failures() []Result {
	var out []Result
	var walk func(rs []Result)
	walk = func(rs []Result) {
		for _, r := range rs {
			if !r.OK() {
				out = append(out, r)
			}
			walk(r.Children)
		}
	}
	walk(rep.Results)
	return out
}

// ExitCode returns ExitFailed if any error was recorded, else ExitOK.
func (rep *Report) ExitCode() int {
	if rep.HasErrors {
		return ExitFailed
	}
	return ExitOK
}
