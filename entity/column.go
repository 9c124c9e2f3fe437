package entity

// Column is a layout entry selecting a field for display.
type Column struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Field describes a column available from a store.
type Field struct {
	Name string
	Type string
}
