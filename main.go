package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
	"github.com/alldritt/UIBrowser4-sub001/internal/report"
	"github.com/alldritt/UIBrowser4-sub001/internal/snapshot"
	"github.com/alldritt/UIBrowser4-sub001/internal/tui"
	"github.com/alldritt/UIBrowser4-sub001/internal/web"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "alldritt",
		Repository: "UIBrowser4-sub001",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/alldritt/UIBrowser4-sub001/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: uibrowser [options]\n\n")
		fmt.Fprintf(os.Stderr, "uibrowser explores a UI accessibility-element hierarchy.\n")
		fmt.Fprintf(os.Stderr, "It browses the element tree of a target application as columns with a\n")
		fmt.Fprintf(os.Stderr, "breadcrumb path, describing elements in the terminology you choose.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  uibrowser                   # Browse the embedded demo hierarchy\n")
		fmt.Fprintf(os.Stderr, "  uibrowser -f app.yaml       # Browse a fixture hierarchy\n")
		fmt.Fprintf(os.Stderr, "  uibrowser --dump            # Print the hierarchy as an outline\n")
		fmt.Fprintf(os.Stderr, "  uibrowser -r -t appleScript # Describe the snapshot in script terms\n")
	}

	fixtureFlag := pflag.StringP("fixture", "f", "", "Load the element hierarchy from a YAML fixture file")
	terminologyFlag := pflag.StringP("terminology", "t", "natural", "Description terminology: natural, raw, accessibility or appleScript")
	dumpFlag := pflag.BoolP("dump", "d", false, "Print the full hierarchy as an ascii outline")
	reportFlag := pflag.BoolP("report", "r", false, "Describe the loaded snapshot level by level")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include index paths and child counts in the report")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the hierarchy as JSON")
	outputFlag := pflag.StringP("output", "o", "", "Save dump/report output to the specified file")
	webFlag := pflag.BoolP("web", "w", false, "Serve the hierarchy on http://localhost:8080")
	systemWideFlag := pflag.BoolP("system-wide", "s", false, "Load the system-wide element instead of an application")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("uibrowser version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	terminology, err := model.ParseTerminology(*terminologyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings := model.NewSettings()
	settings.Terminology = terminology

	root := loadTarget(*fixtureFlag, *systemWideFlag)

	if *dumpFlag {
		writeOut(report.Outline(root), *outputFlag)
		return
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(fixtureJSON(root))
		return
	}

	store := snapshot.NewStore(settings)
	if err := loadStore(store, root, *systemWideFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading target: %v\n", err)
		os.Exit(1)
	}

	if *reportFlag {
		writeOut(report.Describe(store, *verboseFlag), *outputFlag)
		return
	}

	if *webFlag {
		if err := web.StartServer(store, root, "8080"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Default: TUI
	m := tui.InitialModel(store, settings, root)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func loadTarget(fixture string, systemWide bool) ax.Element {
	if systemWide {
		return ax.SystemWide()
	}
	if fixture == "" {
		return ax.DemoApplication()
	}
	el, err := ax.LoadFixture(fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return el
}

func loadStore(store *snapshot.Store, root ax.Element, systemWide bool) error {
	if systemWide {
		return store.LoadSystemWideRoot(root)
	}
	return store.LoadApplicationRoot(root)
}

// fixtureJSON mirrors the element tree as plain maps for --json output.
func fixtureJSON(el ax.Element) map[string]any {
	out := map[string]any{}
	if role, ok := el.Role(); ok {
		out["role"] = role
	}
	if subrole, ok := el.Subrole(); ok {
		out["subrole"] = subrole
	}
	if desc, ok := el.RoleDescription(); ok {
		out["roleDescription"] = desc
	}
	if title, ok := el.Title(); ok {
		out["title"] = title
	}
	if help, ok := el.HelpText(); ok {
		out["help"] = help
	}
	var children []map[string]any
	for _, child := range el.Children() {
		children = append(children, fixtureJSON(child))
	}
	if children != nil {
		out["children"] = children
	}
	return out
}

func writeOut(content, outputFile string) {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Saved to %s\n", outputFile)
		return
	}
	fmt.Println(content)
}
