package model

// Syntax describes the doctest dialect of the files being fixed.
type Syntax struct {
	Prompt        string
	Continuation  string
	FileTagPrefix string
	Docstrings    []string
}

// Features maps runtime observations from the harness to capability tags.
type Features struct {
	// Modules maps a module name from a ModuleNotFoundError to the tag
	// that declares the capability providing it.
	Modules map[string]string
	// Names maps an undefined name from a top-level NameError to the tag
	// that declares the capability defining it.
	Names map[string]string
	// InternalMarkers are path fragments identifying harness-internal
	// traceback frames.
	InternalMarkers []string
}

// RunOptions carries per-run switches forwarded to the harness.
type RunOptions struct {
	Long        bool
	Probe       []string
	Environment string
	Venv        string
}
