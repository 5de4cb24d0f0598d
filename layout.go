package bankview

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "bankview/entity"
)

//go:embed layout.yaml
var defaultLayout []byte

// Layout holds the grid columns of each list screen.
type Layout struct {
	Clients   []nt.Column `yaml:"clients"`
	Accounts  []nt.Column `yaml:"accounts"`
	Movements []nt.Column `yaml:"movements"`
}

// LoadLayout reads a layout file over the embedded default; screens missing from the file keep their default columns.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = yaml.Unmarshal(defaultLayout, layout)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal default layout")
		return
	}

	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read layout from %s", path)
		return
	}

	override := &Layout{}
	err = yaml.Unmarshal(data, override)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal layout from %s", path)
		return
	}

	if len(override.Clients) > 0 {
		layout.Clients = override.Clients
	}
	if len(override.Accounts) > 0 {
		layout.Accounts = override.Accounts
	}
	if len(override.Movements) > 0 {
		layout.Movements = override.Movements
	}
	return
}

// DefaultLayout returns the embedded layout, for writing a sample.
func DefaultLayout() []byte {
	return defaultLayout
}
