package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"voxel.cafe/parley/internal/config"
	"voxel.cafe/parley/internal/language"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	tablePath := fs.String("table", "", "Path to a JSON language table (default: built-in)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	path := strings.TrimSpace(*tablePath)
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = strings.TrimSpace(cfg.LanguageTablePath)
		}
	}

	table := language.DefaultTable()
	if path != "" {
		loaded, err := language.LoadTableFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load language table: %v\n", err)
			return 1
		}
		table = loaded
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCODE\tTTS LOCALE")
	for _, entry := range table.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, entry.Code, entry.TTSLocale)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print table: %v\n", err)
		return 1
	}
	return 0
}
