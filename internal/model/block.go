package model

// BlockKind classifies a failure block from the harness report.
type BlockKind string

const (
	// BlockWrongOutput marks examples whose recorded output differs from the observed output.
	BlockWrongOutput BlockKind = "wrong-output"
	// BlockUnexpectedOutput marks examples that recorded no output but produced some.
	BlockUnexpectedOutput BlockKind = "unexpected-output"
	// BlockMissingOutput marks examples that recorded output but produced none.
	BlockMissingOutput BlockKind = "missing-output"
	// BlockException marks examples that raised an exception.
	BlockException BlockKind = "exception"
	// BlockTagAdvice marks blocks that only carry tag placement advice.
	BlockTagAdvice BlockKind = "tag-advice"
)

// TagAdvice carries tag placement suggestions the harness prints inside a block.
type TagAdvice struct {
	InsertBefore string   // prompt line to splice in just before the failing example
	ReplaceFirst string   // prompt line that should replace the example's first line
	CrossRef     string   // directive comment of the example that defines a missing name
	Unneeded     []string // tags reported as no longer required
}

// Block is a single failure segment parsed from the harness report.
type Block struct {
	File     Path
	Line     int    // 1-based first line of the failing example
	Context  string // enclosing definition as reported by the harness
	Kind     BlockKind
	Expected []string
	Got      []string
	Advice   TagAdvice
	Raw      string
}
