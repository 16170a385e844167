package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/internal/errors"
)

func checkCmd() *cobra.Command {
	var (
		file   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the route table",
		Long: `Validate the route table and report every problem found.

Configuration problems (wrong language set, empty table) fail the check.
Compile diagnostics (entries the router would drop) are warnings unless
--strict is set.

Examples:
  wayfind check
  wayfind check --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(file, strict)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", config.FileName, "Route table file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat compile diagnostics as errors")

	return cmd
}

func runCheck(file string, strict bool) error {
	f, err := config.LoadFile(file)
	if err != nil {
		return err
	}

	problems := f.Validate()
	if len(problems) == 0 {
		success("%s: %d definitions, %d routes, no problems", f.Path(), len(f.Definitions), len(f.Routes))
		return nil
	}

	fatal := 0
	for _, p := range problems {
		if strict || p.Category != errors.CategoryCompile {
			fatal++
		}
		fmt.Print(p.Format())
	}

	if fatal > 0 {
		return fmt.Errorf("%d problem(s) in %s", fatal, f.Path())
	}

	warn("%d entries would be dropped at compile time", len(problems))
	return nil
}
