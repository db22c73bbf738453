package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"loadenv/internal/model"
	"loadenv/internal/resolve"
	"loadenv/internal/shell"
	"loadenv/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "rosdoyle",
		Repository: "loadenv",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/rosdoyle/loadenv/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: loadenv [options]\n\n")
		fmt.Fprintf(os.Stderr, "loadenv reads .env-style files and applies them to the environment.\n")
		fmt.Fprintf(os.Stderr, "Values may reference other files (REF:/path:KEY), defer to ancestor\n")
		fmt.Fprintf(os.Stderr, "directories (DEFER_PARENT) or run a lookup command (${skate get name}).\n")
		fmt.Fprintf(os.Stderr, "Only keys whose value actually changed are reported; secret-looking\n")
		fmt.Fprintf(os.Stderr, "keys are masked.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  loadenv                  # Load ./.env, print changed keys\n")
		fmt.Fprintf(os.Stderr, "  eval \"$(loadenv -e)\"     # Apply to the current shell\n")
		fmt.Fprintf(os.Stderr, "  loadenv --hook zsh       # Print a cd hook for .zshrc\n")
		fmt.Fprintf(os.Stderr, "  loadenv -i               # Inspect resolved entries in a TUI\n")
	}

	fileFlag := pflag.StringP("file", "f", "", "Config file to load (default: .env in the working directory)")
	dirFlag := pflag.StringP("dir", "C", "", "Working directory context for ancestor search")
	exportFlag := pflag.BoolP("export", "e", false, "Print eval-able export lines to stdout (report moves to stderr)")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the load result as JSON")
	inspectFlag := pflag.BoolP("inspect", "i", false, "Browse resolved entries interactively")
	hookFlag := pflag.String("hook", "", "Print a directory-change hook for the given shell (zsh, bash, auto)")
	maxDepthFlag := pflag.Int("max-depth", 0, "Ancestor search depth cap (0 = search to filesystem root)")
	timeoutFlag := pflag.Duration("timeout", resolve.DefaultTimeout, "Timeout for lookup commands")
	quietFlag := pflag.BoolP("quiet", "q", false, "Suppress the change report")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("loadenv version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *hookFlag != "" {
		runHookMode(*hookFlag)
		return
	}

	workDir := resolveWorkDir(*dirFlag)
	file := *fileFlag
	if file == "" {
		file = filepath.Join(workDir, resolve.EnvFileName)
	} else {
		file = model.ExpandTilde(file)
		if !filepath.IsAbs(file) {
			file = filepath.Join(workDir, file)
		}
	}

	load := func() (model.LoadResult, error) {
		resolver := resolve.NewResolver(workDir)
		resolver.MaxDepth = *maxDepthFlag
		resolver.Runner = resolve.ExecRunner{Timeout: *timeoutFlag}
		loader := resolve.NewLoader(resolver)

		snap := model.FromEnviron()
		result := loader.LoadFile(file, snap)

		// Reflect changes into this process so child processes (and the
		// inspect view) see the loaded environment.
		for _, e := range result.Entries {
			if e.Changed {
				os.Setenv(e.Key, e.Value)
			}
		}
		return result, nil
	}

	if *inspectFlag {
		runInspectMode(load)
		return
	}

	result, _ := load()

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		return
	}

	if *exportFlag {
		fmt.Print(resolve.RenderExports(result.Entries))
		if !*quietFlag {
			fmt.Fprint(os.Stderr, resolve.RenderChanges(result.Changes))
		}
		return
	}

	if !*quietFlag {
		fmt.Print(resolve.RenderChanges(result.Changes))
	}
}

func resolveWorkDir(dir string) string {
	if dir != "" {
		abs, err := filepath.Abs(model.ExpandTilde(dir))
		if err == nil {
			return abs
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error determining working directory: %v\n", err)
		os.Exit(1)
	}
	return wd
}

func runHookMode(name string) {
	var sh shell.Shell
	switch name {
	case "auto":
		sh = shell.Detect(os.Getenv("SHELL"))
	default:
		sh = shell.Detect(name)
	}

	executable, err := os.Executable()
	if err != nil {
		executable = "loadenv"
	}
	fmt.Print(sh.Hook(executable))
}

func runInspectMode(load tui.LoadFunc) {
	m := tui.InitialModel(load)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
