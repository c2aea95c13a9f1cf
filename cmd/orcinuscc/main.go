// Command orcinuscc is the front-end driver (§6): lex, parse, and
// semantically analyze one entry file plus everything it imports, printing
// every collected diagnostic grouped by file. Wiring follows the teacher's
// cmd/funxy/main.go (plain os.Args dispatch, no flag package), generalized
// from a tree-walking evaluator's module loader to internal/workspace's
// Importer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"

	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/workspace"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	os.Exit(run(os.Args[1]))
}

func run(entry string) int {
	settings := loadSettings(filepath.Dir(entry))
	color := useColor(settings)

	diags := diagnostics.NewManager()
	if err := os.MkdirAll(settings.CacheDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "orcinuscc: %s\n", err)
		return 1
	}
	ws, err := workspace.New(filepath.Dir(entry), settings.CacheDir+string(filepath.Separator)+"trees.db", diags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orcinuscc: %s\n", err)
		return 1
	}
	defer ws.Close()

	if _, err := ws.LoadEntry(entry); err != nil {
		fmt.Fprintf(os.Stderr, "orcinuscc: %s\n", err)
		return 1
	}

	reportDiagnostics(diags, color)

	if settings.Verbose {
		fmt.Printf("run %s: analyzed %q\n", diags.RunID, entry)
	}
	if diags.HasErrors() {
		return 1
	}
	return 0
}

// loadSettings reads ".orcinus.yml" next to the entry file, falling back to
// defaults when it's absent — mirrors the teacher's tolerant optional-config
// pattern rather than requiring a config file to exist.
func loadSettings(dir string) config.Settings {
	data, err := os.ReadFile(filepath.Join(dir, ".orcinus.yml"))
	if err != nil {
		return config.DefaultSettings()
	}
	settings, err := config.ParseSettings(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orcinuscc: ignoring invalid .orcinus.yml: %s\n", err)
		return config.DefaultSettings()
	}
	return settings
}

func useColor(settings config.Settings) bool {
	if settings.NoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// reportDiagnostics prints every diagnostic grouped by file, then by
// severity within a file, matching the order a reader scans a build log in.
func reportDiagnostics(diags *diagnostics.Manager, color bool) {
	byFile := make(map[string][]*diagnostics.Diagnostic)
	var files []string
	for _, d := range diags.All() {
		f := d.Location.Filename
		if _, ok := byFile[f]; !ok {
			files = append(files, f)
		}
		byFile[f] = append(byFile[f], d)
	}
	sort.Strings(files)

	for _, f := range files {
		ds := byFile[f]
		sort.SliceStable(ds, func(i, j int) bool { return ds[i].Severity > ds[j].Severity })
		fmt.Println(f)
		for _, d := range ds {
			fmt.Println("  " + formatDiagnostic(d, color))
		}
	}
}

func formatDiagnostic(d *diagnostics.Diagnostic, color bool) string {
	line := d.String()
	if !color {
		return line
	}
	switch d.Severity {
	case diagnostics.Error:
		return colorRed + line + colorReset
	case diagnostics.Warning:
		return colorYellow + line + colorReset
	default:
		return line
	}
}
