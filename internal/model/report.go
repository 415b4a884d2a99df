package model

import "time"

// FixOutcome classifies how a failure block was handled.
type FixOutcome string

const (
	// OutcomeUpdated means the recorded output was rewritten in place.
	OutcomeUpdated FixOutcome = "updated"
	// OutcomeTagged means only tag directives were changed.
	OutcomeTagged FixOutcome = "tagged"
	// OutcomeSkipped means the block was left untouched.
	OutcomeSkipped FixOutcome = "skipped"
)

// BlockFix records the handling of a single failure block.
type BlockFix struct {
	File    Path       `yaml:"file"`
	Line    int        `yaml:"line"`
	Kind    BlockKind  `yaml:"kind"`
	Outcome FixOutcome `yaml:"outcome"`
	Detail  string     `yaml:"detail,omitempty"`
}

// FileFix holds the reconciliation results for a single source file.
type FileFix struct {
	File    Path       `yaml:"file"`
	Hash    string     `yaml:"hash,omitempty"`
	Output  Path       `yaml:"output,omitempty"`
	Changed bool       `yaml:"changed"`
	Blocks  []BlockFix `yaml:"blocks,omitempty"`
}

// RunReport is one complete fix run, as persisted by the report store.
type RunReport struct {
	ID        string    `yaml:"id"`
	StartedAt time.Time `yaml:"started_at"`
	Files     []FileFix `yaml:"files"`
	Warnings  []Warning `yaml:"warnings,omitempty"`
}
