package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind"
	"github.com/wayfind-dev/wayfind/internal/config"
)

func routesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the compiled route table",
		Long: `Compile the route table and print the concrete path for every
(key, language) pair. Entries the compiler drops are marked.

Examples:
  wayfind routes
  wayfind routes --file=config/wayfind.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", config.FileName, "Route table file")

	return cmd
}

func runRoutes(file string) error {
	f, router, err := loadRouter(file)
	if err != nil {
		return err
	}

	info("routes in %s (default language: %s)", f.Path(), f.DefaultLanguage)
	fmt.Println()

	for _, entry := range f.Routes {
		path := router.Path(entry.Key, entry.Language)
		if path == "" {
			warn("%-16s %-4s (dropped)", entry.Key, entry.Language)
			continue
		}
		fmt.Printf("  %-16s %-4s %s\n", entry.Key, entry.Language, path)
	}

	if diags := router.Diagnostics(); len(diags) > 0 {
		fmt.Println()
		for _, d := range diags {
			warn("%s", d.String())
		}
	}

	return nil
}

// loadRouter reads the route table and builds a router from it. The router
// logger is discarded; commands print diagnostics themselves.
func loadRouter(path string) (*config.File, *wayfind.Router, error) {
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	router, err := buildRouter(f.Config())
	if err != nil {
		return nil, nil, err
	}
	return f, router, nil
}

func buildRouter(cfg wayfind.Config) (*wayfind.Router, error) {
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return wayfind.New(cfg)
}
