// Command garam solves Garam arithmetic puzzles from the terminal.
//
// The puzzle is entered as two rows of tokens: the cells in reading order
// (digits, "_" for unknown) and the operators in reading order. Puzzles can
// be found on the official website:
// https://www.garamgame.com/garam/garam_en_ligne/avance/index.html
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bclarenc/garam"
)

var rootCmd = &cobra.Command{
	Use:     "garam",
	Short:   "garam solves Garam arithmetic puzzles (full grids and single cycles)",
	Version: garam.Version.String(),
}

func main() {
	rootCmd.AddCommand(solveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
