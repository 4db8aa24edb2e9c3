package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"runcfg/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to out (stdout when nil)
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	return &Formatter{out: out}
}

// Notice prints an informational message in yellow
func (f *Formatter) Notice(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(f.out, format+"\n", args...)
}

// Blank prints an empty line
func (f *Formatter) Blank() {
	fmt.Fprintln(f.out)
}

// PrintConfig prints the selected configuration as indented JSON
func (f *Formatter) PrintConfig(cfg *domain.ExecutionConfig) error {
	if cfg == nil {
		f.Notice("No configuration selected")
		return nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}

	color.New(color.FgGreen).Fprintf(f.out, "✓ Selected configuration: %s\n", cfg.DisplayName())
	fmt.Fprintln(f.out, string(data))
	return nil
}

// PrintConfigList prints the configurations known for a folder, in both formats.
// legacy may be nil when the folder has no deprecated configuration file.
func (f *Formatter) PrintConfigList(folder domain.WorkspaceFolder, configs []domain.ExecutionConfig, legacy *domain.LegacyDocument) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(f.out, "%s (%s)\n", folder.Name, folder.Path)

	if len(configs) == 0 && legacy == nil {
		color.New(color.FgYellow).Fprintln(f.out, "└── (no configurations found)")
		return
	}

	if len(configs) > 0 {
		last := legacy == nil
		cyan.Fprintf(f.out, "%s settings\n", branch(last))
		f.printItems(childPrefix(last), configs, "")
	}

	if legacy != nil {
		cyan.Fprintf(f.out, "└── deprecated (run)\n")
		f.printItems("    │   ", legacy.Run.Items, legacy.Run.Default)
		cyan.Fprintf(f.out, "    └── deprecated (debug)\n")
		f.printItems("        ", legacy.Debug.Items, legacy.Debug.Default)
	}
}

func (f *Formatter) printItems(prefix string, configs []domain.ExecutionConfig, defaultName string) {
	if len(configs) == 0 {
		fmt.Fprintf(f.out, "%s└── %s\n", prefix, color.RedString("(empty)"))
		return
	}
	for i, c := range configs {
		marker := ""
		if defaultName != "" && c.Name == defaultName {
			marker = " " + color.GreenString("[default]")
		}
		fmt.Fprintf(f.out, "%s%s%s%s\n", prefix, branch(i == len(configs)-1), color.YellowString(c.Label(i)), marker)
	}
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func childPrefix(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}

// PrintSummary prints the statistics of a run followed by the failed items
func (f *Formatter) PrintSummary(summary domain.RunSummary, results []domain.TestResult, root string) {
	fmt.Fprint(f.out, "\n")
	color.New(color.FgCyan).Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	color.New(color.FgCyan).Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	color.New(color.FgCyan).Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	row := func(name string, value string, c *color.Color) {
		fmt.Fprintf(f.out, "│ %-31s │ ", name)
		c.Fprintf(f.out, "%-27s", value)
		fmt.Fprint(f.out, " │\n")
	}
	white := color.New(color.FgWhite)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	row("Configuration", summary.Config, white)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	row("Total Test Items", fmt.Sprintf("%d", summary.Total), white)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	row("Passed", fmt.Sprintf("%d", summary.Passed), color.New(color.FgGreen))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	row("Failed", fmt.Sprintf("%d", summary.Failed), color.New(color.FgRed))
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	row("Duration", fmt.Sprintf("%.2fs", summary.Duration.Seconds()), white)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	row("Workers", fmt.Sprintf("%d", summary.Workers), white)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if summary.Failed == 0 {
		color.New(color.FgGreen).Fprintln(f.out, "✓ All tests passed!")
		return
	}

	color.New(color.FgRed).Fprintf(f.out, "✗ %d test item(s) failed\n", summary.Failed)
	var failed []domain.TestResult
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	for i, r := range failed {
		path := r.Item.Location
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
		line := fmt.Sprintf("%s%s", branch(i == len(failed)-1), path)
		if r.Error != nil {
			line += color.New(color.FgHiBlack).Sprintf(" (%v)", r.Error)
		}
		color.New(color.FgRed).Fprintln(f.out, line)
	}
}
