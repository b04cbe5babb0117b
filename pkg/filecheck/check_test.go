package filecheck

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/icpreflight/pkg/check"
	"github.com/vertti/icpreflight/pkg/testutil"
)

type mockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
	calls    []string
}

func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.calls = append(m.calls, name)
	return m.StatFunc(name)
}

type mockFileInfo struct {
	NameValue  string
	IsDirValue bool
}

func (m *mockFileInfo) Name() string       { return m.NameValue }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return 0o644 }
func (m *mockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *mockFileInfo) Sys() any           { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Unix(0, 0) }

func statOK(isDir bool) func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) {
		return &mockFileInfo{NameValue: "f", IsDirValue: isDir}, nil
	}
}

func statErr(err error) func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) { return nil, err }
}

func TestFileCheck(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantDetail string
	}{
		{
			name: "existing file passes",
			check: Check{
				Path: "frontend/index.html", Description: "Frontend HTML entry point",
				FS: &mockFileSystem{StatFunc: statOK(false)},
			},
			wantStatus: check.StatusOK,
			wantDetail: "Frontend HTML entry point found",
		},
		{
			name: "missing file fails",
			check: Check{
				Path: "backend/main.mo", Description: "Backend Motoko source file",
				FS: &mockFileSystem{StatFunc: statErr(os.ErrNotExist)},
			},
			wantStatus: check.StatusFail,
			wantDetail: "Backend Motoko source file not found at: backend/main.mo",
		},
		{
			name: "permission denied fails",
			check: Check{
				Path: "secret", Description: "Secret",
				FS: &mockFileSystem{StatFunc: statErr(os.ErrPermission)},
			},
			wantStatus: check.StatusFail,
			wantDetail: "permission denied",
		},
		{
			name: "other stat error fails",
			check: Check{
				Path: "weird", Description: "Weird",
				FS: &mockFileSystem{StatFunc: statErr(errors.New("io error"))},
			},
			wantStatus: check.StatusFail,
			wantDetail: "io error",
		},
		{
			name: "directory expected but file found",
			check: Check{
				Path: "frontend", Description: "frontend directory", ExpectDir: true,
				FS: &mockFileSystem{StatFunc: statOK(false)},
			},
			wantStatus: check.StatusFail,
			wantDetail: "is not a directory",
		},
		{
			name: "directory expected and found",
			check: Check{
				Path: "frontend", Description: "frontend directory", ExpectDir: true,
				FS: &mockFileSystem{StatFunc: statOK(true)},
			},
			wantStatus: check.StatusOK,
			wantDetail: "frontend directory found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail),
				"Details %v should contain %q", result.Details, tt.wantDetail)
			if tt.wantStatus == check.StatusFail {
				assert.Equal(t, Resolution, result.Resolution)
			}
		})
	}
}

func TestFileCheck_ResolvesAgainstRoot(t *testing.T) {
	m := &mockFileSystem{StatFunc: statOK(false)}
	c := Check{Root: "/project", Path: "frontend/index.html", Description: "x", FS: m}

	c.Run()

	require.Len(t, m.calls, 1)
	assert.Equal(t, filepath.Join("/project", "frontend/index.html"), m.calls[0])
}

func TestFileCheck_NoCachingAcrossRuns(t *testing.T) {
	root := t.TempDir()
	c := Check{Root: root, Path: "dfx.json", Description: "dfx config", FS: &RealFileSystem{}}

	assert.False(t, c.Run().OK())

	require.NoError(t, os.WriteFile(filepath.Join(root, "dfx.json"), []byte("{}"), 0o600))
	assert.True(t, c.Run().OK())

	require.NoError(t, os.Remove(filepath.Join(root, "dfx.json")))
	assert.False(t, c.Run().OK())
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/root", "a/b"), Resolve("/root", "a/b"))
	assert.Equal(t, "/abs/path", Resolve("/root", "/abs//path"))
}
