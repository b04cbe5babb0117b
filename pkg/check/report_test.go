package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_ExitCode(t *testing.T) {
	var rep Report
	rep.Add(Result{Name: "a", Status: StatusOK})
	assert.False(t, rep.HasErrors)
	assert.Equal(t, ExitOK, rep.ExitCode())

	rep.Add(Result{Name: "b", Status: StatusFail})
	assert.True(t, rep.HasErrors)
	assert.Equal(t, ExitFailed, rep.ExitCode())
}

func TestReport_SoftChildFailureMarksErrors(t *testing.T) {
	var rep Report
	rep.Add(Result{
		Name:     "frontend",
		Status:   StatusOK,
		Children: []Result{{Name: "frontend/index.html", Status: StatusFail}},
	})

	assert.True(t, rep.HasErrors)
	assert.Equal(t, ExitFailed, rep.ExitCode())

	failures := rep.Failures()
	if assert.Len(t, failures, 1) {
		assert.Equal(t, "frontend/index.html", failures[0].Name)
	}
}
