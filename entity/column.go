package entity

// Column describes one grid column: which field of a record to show and under what heading.
type Column struct {
	Field  string `yaml:"field"`
	Label  string `yaml:"label"`
	Width  int    `yaml:"width,omitempty"`
	Format string `yaml:"format,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Heading returns the label, falling back to the field path.
func (col Column) Heading() string {
	if col.Label != "" {
		return col.Label
	}
	return col.Field
}
