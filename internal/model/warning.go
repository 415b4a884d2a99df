package model

// Warning describes a non-fatal problem encountered while fixing a file.
type Warning struct {
	File   Path     `yaml:"file"`
	Line   int      `yaml:"line,omitempty"`
	Title  string   `yaml:"title"`
	Detail []string `yaml:"detail,omitempty"`
}
