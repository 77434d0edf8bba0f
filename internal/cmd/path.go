package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:     "path <name>",
	GroupID: GroupQuery,
	Short:   "Print an environment's directory path",
	Long: `Print the filesystem directory of an environment, suitable for use
in scripts:

  cd "$(mlr path cuda12)"

Exits nonzero if the environment is not found.`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	envName := args[0]

	store, _, err := newStore()
	if err != nil {
		return err
	}

	// No notice output here; stdout carries only the path.
	match, _, err := store.FindEnvironment(envName)
	if err != nil {
		return err
	}
	if match == nil {
		return fmt.Errorf("environment %q not found", envName)
	}

	path, err := store.EnvironmentPath(match.Source, envName)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
