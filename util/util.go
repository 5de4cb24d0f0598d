// Package util opens the log file and reads and writes the yaml config.
package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configHeader = "# bankview config, unknown keys are rejected\n"

// OpenLog opens path for append, creating its directory.
// An empty path, or one that cannot be opened, logs to nowhere.
func OpenLog(path string, mode os.FileMode) io.Writer {

	if path == "" {
		return io.Discard
	}

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no log: %s\n", err)
		return io.Discard
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no log: %s\n", err)
		return io.Discard
	}
	return file
}

// CloseLog closes what OpenLog opened.
func CloseLog(log io.Writer) {

	if closer, ok := log.(io.Closer); ok {
		closer.Close()
	}
}

// LoadConfig decodes path into cfg, failing on keys cfg does not have.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil // empty file, defaults apply
	}
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// WriteConfig encodes cfg to path under a short header.
func WriteConfig(cfg any, path string, mode os.FileMode) (err error) {

	buf := bytes.NewBufferString(configHeader)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	err = enc.Encode(cfg)
	if err == nil {
		err = enc.Close()
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal config")
		return
	}

	err = os.WriteFile(path, buf.Bytes(), mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// SampleConfig writes cfg to path unless a file is already there.
func SampleConfig(cfg any, path string, mode os.FileMode) (wrote bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}
	if !errors.Is(err, os.ErrNotExist) {
		err = errors.Wrapf(err, "failed to stat %s", path)
		return
	}

	err = WriteConfig(cfg, path, mode)
	wrote = err == nil
	return
}
