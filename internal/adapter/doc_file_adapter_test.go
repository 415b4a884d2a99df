package adapter

import (
	"testing"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

func doctestSyntax() m.Syntax {
	return m.Syntax{
		Prompt:        ">>>",
		Continuation:  "...",
		FileTagPrefix: "# doctest:",
		Docstrings:    []string{`"""`, `'''`},
	}
}

func TestLocalDocFileAdapter_Candidate(t *testing.T) {
	adapter := NewLocalDocFileAdapter(doctestSyntax())

	accepted := []string{"matrix.py", "fast/matrix.PYX", "doc/tutorial.rst", "notes.txt"}
	for _, path := range accepted {
		if !adapter.Candidate(m.Path(path)) {
			t.Fatalf("Candidate(%s) = false, want true", path)
		}
	}

	rejected := []string{"main.go", "Makefile", "matrix.pyc", "doc/tutorial.md"}
	for _, path := range rejected {
		if adapter.Candidate(m.Path(path)) {
			t.Fatalf("Candidate(%s) = true, want false", path)
		}
	}
}

func TestLocalDocFileAdapter_Scan(t *testing.T) {
	adapter := NewLocalDocFileAdapter(doctestSyntax())

	src := []byte(`"""
    Compute determinants.

        >>> det([[1, 0], [0, 1]])
        1
        >>> det([[2, 0],
        ...      [0, 2]])
        4
"""
`)

	file, ok := adapter.Scan("matrix.py", src)
	if !ok {
		t.Fatalf("Scan() reported no examples")
	}

	if file.Path != m.Path("matrix.py") {
		t.Fatalf("Scan() path = %s, want matrix.py", file.Path)
	}
	if file.Examples != 2 {
		t.Fatalf("Scan() examples = %d, want 2", file.Examples)
	}
	if len(file.FileTags) != 0 {
		t.Fatalf("Scan() unexpected file tags: %v", file.FileTags.Names())
	}
}

func TestLocalDocFileAdapter_Scan_CollectsFileTags(t *testing.T) {
	adapter := NewLocalDocFileAdapter(doctestSyntax())

	src := []byte(`# doctest: # optional - sage
# doctest: # needs scipy
r"""
    >>> fast_det(m)
    0
"""
`)

	file, ok := adapter.Scan("matrix.py", src)
	if !ok {
		t.Fatalf("Scan() reported no examples")
	}

	for _, name := range []string{"sage", "scipy"} {
		if !file.FileTags.Has(name) {
			t.Fatalf("Scan() missing file tag %s, got %v", name, file.FileTags.Names())
		}
	}
}

func TestLocalDocFileAdapter_Scan_NoExamples(t *testing.T) {
	adapter := NewLocalDocFileAdapter(doctestSyntax())

	if _, ok := adapter.Scan("empty.py", []byte("x = 1\n")); ok {
		t.Fatalf("Scan() reported examples for plain source")
	}
}

func TestLocalDocFileAdapter_Scan_IgnoresMalformedDirectives(t *testing.T) {
	adapter := NewLocalDocFileAdapter(doctestSyntax())

	src := []byte(`# doctest: keep going
    >>> x
    1
`)

	file, _ := adapter.Scan("matrix.py", src)
	if len(file.FileTags) != 0 {
		t.Fatalf("Scan() collected tags from malformed directive: %v", file.FileTags.Names())
	}
}
