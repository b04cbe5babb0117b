package dfxcheck

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/icpreflight/pkg/check"
	"github.com/vertti/icpreflight/pkg/testutil"
)

type mockFS struct {
	Content []byte
	Err     error
}

func (m *mockFS) ReadFile(_ string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Content, nil
}

func TestDfxCheck_Run(t *testing.T) {
	tests := []struct {
		name        string
		fs          *mockFS
		wantStatus  check.Status
		wantDetail  string
		wantResolve string
	}{
		{
			name:        "missing file",
			fs:          &mockFS{Err: fs.ErrNotExist},
			wantStatus:  check.StatusFail,
			wantDetail:  "dfx.json configuration file not found",
			wantResolve: `Run "dfx new"`,
		},
		{
			name:       "unreadable file",
			fs:         &mockFS{Err: errors.New("disk on fire")},
			wantStatus: check.StatusFail,
			wantDetail: "Failed to read dfx.json: disk on fire",
		},
		{
			name:        "invalid JSON",
			fs:          &mockFS{Content: []byte(`{invalid}`)},
			wantStatus:  check.StatusFail,
			wantDetail:  "Failed to parse dfx.json: invalid character 'i' looking for beginning of object key string",
			wantResolve: "valid JSON",
		},
		{
			name:       "empty file is invalid JSON",
			fs:         &mockFS{Content: []byte(``)},
			wantStatus: check.StatusFail,
			wantDetail: "Failed to parse dfx.json: unexpected end of JSON input",
		},
		{
			name:        "missing canisters",
			fs:          &mockFS{Content: []byte(`{"version": 1}`)},
			wantStatus:  check.StatusFail,
			wantDetail:  `dfx.json is missing "canisters" configuration`,
			wantResolve: "Add canister definitions to dfx.json",
		},
		{
			name:       "null canisters",
			fs:         &mockFS{Content: []byte(`{"canisters": null}`)},
			wantStatus: check.StatusFail,
			wantDetail: `dfx.json is missing "canisters" configuration`,
		},
		{
			name:        "missing backend",
			fs:          &mockFS{Content: []byte(`{"canisters": {"frontend": {}}}`)},
			wantStatus:  check.StatusFail,
			wantDetail:  `dfx.json is missing "backend" canister definition`,
			wantResolve: "Add a backend canister configuration to dfx.json",
		},
		{
			name:       "missing frontend",
			fs:         &mockFS{Content: []byte(`{"canisters": {"backend": {}}}`)},
			wantStatus: check.StatusFail,
			wantDetail: `dfx.json is missing "frontend" canister definition`,
		},
		{
			name:       "falsy backend",
			fs:         &mockFS{Content: []byte(`{"canisters": {"backend": false, "frontend": {}}}`)},
			wantStatus: check.StatusFail,
			wantDetail: `"backend" canister definition`,
		},
		{
			name:       "valid config",
			fs:         &mockFS{Content: []byte(`{"canisters": {"backend": {}, "frontend": {}}}`)},
			wantStatus: check.StatusOK,
			wantDetail: "dfx.json configuration is valid",
		},
		{
			name:       "valid config reports dfx version",
			fs:         &mockFS{Content: []byte(`{"dfx": "0.15.1", "canisters": {"backend": {}, "frontend": {}}}`)},
			wantStatus: check.StatusOK,
			wantDetail: "dfx version: 0.15.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Check{Root: "/project", FS: tt.fs}
			result := c.Run()

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail),
				"Details %v should contain %q", result.Details, tt.wantDetail)
			if tt.wantResolve != "" {
				assert.Contains(t, result.Resolution, tt.wantResolve)
			}
		})
	}
}

func TestDfxCheck_ShortCircuits(t *testing.T) {
	c := Check{FS: &mockFS{Content: []byte(`{"other": 1}`)}}
	result := c.Run()

	require.Len(t, result.Details, 1)
	assert.Contains(t, result.Details[0], `"canisters"`)
}

func TestDfxCheck_BadVersionIsWarningOnly(t *testing.T) {
	c := Check{FS: &mockFS{Content: []byte(`{"dfx": "latest", "canisters": {"backend": {}, "frontend": {}}}`)}}
	result := c.Run()

	assert.True(t, result.OK())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "not a valid semantic version")
}

func TestDfxCheck_CustomCanisters(t *testing.T) {
	c := Check{
		Canisters: []string{"api.v2"},
		FS:        &mockFS{Content: []byte(`{"canisters": {"api.v2": {"type": "motoko"}}}`)},
	}
	assert.True(t, c.Run().OK())
}

func TestDfxCheck_RealFileSystem(t *testing.T) {
	root := t.TempDir()
	c := Check{Root: root}

	result := c.Run()
	assert.False(t, result.OK())
	assert.Contains(t, result.Message(), "not found")

	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFile),
		[]byte(`{"canisters": {"backend": {}, "frontend": {}}}`), 0o600))
	assert.True(t, c.Run().OK())
}

func TestDfxCheck_DuplicateKeysLastWins(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantOK  bool
	}{
		{"later object replaces null", `{"canisters": null, "canisters": {"backend": {}, "frontend": {}}}`, true},
		{"later null replaces object", `{"canisters": {"backend": {}, "frontend": {}}, "canisters": null}`, false},
		{"later false replaces backend", `{"canisters": {"backend": {}, "backend": false, "frontend": {}}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Check{FS: &mockFS{Content: []byte(tt.content)}}
			assert.Equal(t, tt.wantOK, c.Run().OK())
		})
	}
}

func TestDfxCheck_NonObjectDocument(t *testing.T) {
	c := Check{FS: &mockFS{Content: []byte(`[1, 2]`)}}
	result := c.Run()

	assert.False(t, result.OK())
	assert.Contains(t, result.Message(), `missing "canisters"`)
}

func TestDfxCheck_NonStringVersionWarns(t *testing.T) {
	c := Check{FS: &mockFS{Content: []byte(`{"dfx": 15, "canisters": {"backend": {}, "frontend": {}}}`)}}
	result := c.Run()

	assert.True(t, result.OK())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "dfx version 15 is not a string", result.Warnings[0])
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"object", map[string]any{}, true},
		{"array", []any{}, true},
		{"string", "x", true},
		{"empty string", "", false},
		{"number", float64(1), true},
		{"zero", float64(0), false},
		{"true", true, true},
		{"false", false, false},
		{"null", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truthy(tt.value))
		})
	}
}
