package adapter

import (
	"fmt"
	"strings"

	m "github.com/mendoc-dev/mendoc/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Display shows documentation files using simple text output.
func (p *SimpleUI) Display(files []m.DocFile) error {
	if len(files) == 0 {
		p.cmd.Println("No documentation files found")
		return nil
	}

	for _, file := range files {
		p.cmd.Println(describeDocFile(file))
	}

	return nil
}

func describeDocFile(file m.DocFile) string {
	label := "examples"
	if file.Examples == 1 {
		label = "example"
	}

	out := fmt.Sprintf("%s  (%d %s)", file.Path, file.Examples, label)

	if len(file.FileTags) > 0 {
		out += fmt.Sprintf("  [%s]", strings.Join(file.FileTags.Names(), ", "))
	}

	return out
}
