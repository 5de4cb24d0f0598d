package util

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	BaseUrl string `yaml:"baseUrl"`
	Size    int    `yaml:"size"`
}

func TestSampleThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	wrote, err := SampleConfig(sample{BaseUrl: "http://localhost:8080/api", Size: 20}, path, 0644)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = SampleConfig(sample{BaseUrl: "ignored"}, path, 0644)
	require.NoError(t, err)
	assert.False(t, wrote)

	got := sample{}
	require.NoError(t, LoadConfig(&got, path))
	assert.Equal(t, sample{BaseUrl: "http://localhost:8080/api", Size: 20}, got)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	err := LoadConfig(&sample{}, filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read from")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("size: [1"), 0644))
	err = LoadConfig(&sample{}, bad)
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	file := OpenLog(path, 0644)
	_, err := io.WriteString(file, "one\n")
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(data))

	file = OpenLog(filepath.Join(path, "nope", "app.log"), 0644)
	assert.Equal(t, io.Discard, file)
	CloseLog(file)
}

func TestLoadConfigStrict(t *testing.T) {
	dir := t.TempDir()

	typo := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("baseUrl: x\npagesize: 20\n"), 0644))
	err := LoadConfig(&sample{}, typo)
	assert.ErrorContains(t, err, "pagesize")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	got := sample{Size: 7}
	require.NoError(t, LoadConfig(&got, empty))
	assert.Equal(t, 7, got.Size)
}

func TestWriteConfigHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, WriteConfig(sample{BaseUrl: "http://h", Size: 3}, path, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configHeader+"baseUrl: http://h\nsize: 3\n", string(data))
}

func TestOpenLogDir(t *testing.T) {
	assert.Equal(t, io.Discard, OpenLog("", 0644))

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	file := OpenLog(path, 0644)
	_, err := io.WriteString(file, "two\n")
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(data))
}
