package main

import (
	"fmt"
	"os"

	"github.com/jemcclin/readabilitycheck/internal/readability"
)

const helpUsageText = `Usage: readabilitycheck help <topic>

Topics:
  formula [name]   List formulas or describe one
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "formula", "formulas":
		return runHelpFormula(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "readabilitycheck: help: unknown topic %q\n", args[0])
		return 2
	}
}

// runHelpFormula implements "help formula [name]".
func runHelpFormula(args []string) int {
	if len(args) == 0 {
		for _, f := range readability.Formulas() {
			fmt.Printf("%-22s %s\n", f.String(), f.DisplayName())
		}
		return 0
	}

	f, ok := readability.LookupFormula(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "readabilitycheck: unknown formula %q\n", args[0])
		return 2
	}
	fmt.Printf("%s (%s)\n\n%s\n", f.DisplayName(), f.String(), f.Description())
	if v := f.Vocabulary(); v != "" {
		fmt.Printf("\nDifficult words: not on the %s list.\n", v)
	}
	if f.HigherIsEasier() {
		fmt.Println("\nHigher scores mean easier text.")
	} else {
		fmt.Println("\nLower scores mean easier text.")
	}
	return 0
}
