package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploads(t *testing.T) *Uploads {
	t.Helper()
	u, err := NewUploads(filepath.Join(t.TempDir(), "uploads"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return u
}

func TestNewUploads_CreatesDirectory(t *testing.T) {
	u := newTestUploads(t)

	info, err := os.Stat(u.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewUploads_RequiresDirectory(t *testing.T) {
	_, err := NewUploads("", nil)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	u := newTestUploads(t)

	name, n, err := u.Save("people.csv", strings.NewReader("id,name\n1,Alice\n"))
	require.NoError(t, err)
	assert.Equal(t, "people.csv", name)
	assert.Equal(t, int64(16), n)

	data, err := os.ReadFile(filepath.Join(u.Dir(), "people.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Alice\n", string(data))
}

func TestSave_Overwrites(t *testing.T) {
	u := newTestUploads(t)

	_, _, err := u.Save("data.csv", strings.NewReader("first"))
	require.NoError(t, err)
	_, _, err = u.Save("data.csv", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(u.Dir(), "data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSave_StripsDirectories(t *testing.T) {
	u := newTestUploads(t)

	name, _, err := u.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", name)
	assert.FileExists(t, filepath.Join(u.Dir(), "passwd"))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "file.csv", want: "file.csv"},
		{name: "dir/file.csv", want: "file.csv"},
		{name: `C:\Users\me\file.csv`, want: "file.csv"},
		{name: "/abs/path/file.ttl", want: "file.ttl"},
		{name: "", wantErr: true},
		{name: "..", wantErr: true},
		{name: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
