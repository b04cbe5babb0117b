package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/icpreflight/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	bold   = "\033[1m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, bold, reset = "", "", "", "", ""
	}
}

// Printer writes the preflight transcript. Successes and banners go to Out,
// failures and resolutions go to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// Header prints the opening banner.
func (p *Printer) Header(root string) {
	fmt.Fprintf(p.Out, "%s=== Internet Computer Preflight Checks ===%s\n", bold, reset)
	fmt.Fprintf(p.Out, "Project root: %s\n", root)
	fmt.Fprintln(p.Out, "\nRunning preflight checks...")
	fmt.Fprintln(p.Out)
}

// Success prints a passing line.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.Out, "%s✓%s %s\n", green, reset, msg)
}

// Error prints a failure and its optional resolution.
func (p *Printer) Error(msg, resolution string) {
	fmt.Fprintf(p.Err, "\n%s❌ ERROR:%s %s\n", red, reset, msg)
	if resolution != "" {
		fmt.Fprintf(p.Err, "   Resolution: %s\n", resolution)
	}
}

// Warning prints a note that does not fail the run.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.Err, "%s⚠ WARNING:%s %s\n", yellow, reset, msg)
}

// PrintResult outputs a check result. Children are printed before their
// parent's own line, matching the order in which they ran.
func (p *Printer) PrintResult(r check.Result) {
	for _, c := range r.Children {
		p.PrintResult(c)
	}
	for _, w := range r.Warnings {
		p.Warning(w)
	}
	if r.OK() {
		for _, d := range r.Details {
			p.Success(d)
		}
		return
	}
	p.Error(r.Message(), r.Resolution)
}

// Summary prints the closing banner for the report.
func (p *Printer) Summary(rep check.Report) {
	fmt.Fprintf(p.Out, "\n%s=== Preflight Check Results ===%s\n", bold, reset)
	if rep.HasErrors {
		fmt.Fprintf(p.Err, "\n%s❌ Preflight checks FAILED%s\n", red, reset)
		fmt.Fprintln(p.Err, "Please resolve the errors above before deploying.")
		fmt.Fprintln(p.Err)
		return
	}
	fmt.Fprintf(p.Out, "\n%s✓ All preflight checks PASSED%s\n", green, reset)
	fmt.Fprintln(p.Out, "Project is ready for deployment.")
	fmt.Fprintln(p.Out)
}
