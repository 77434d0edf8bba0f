package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modulair/modulair/internal/metadata"
	"github.com/modulair/modulair/internal/style"
)

var whichCmd = &cobra.Command{
	Use:     "which <name>",
	GroupID: GroupQuery,
	Short:   "Show which source owns an environment",
	Long: `Find an environment by name and show its owner and metadata.

Your own environments take precedence over group environments; groups
are searched in membership order. If the same name exists in several
places, only the first match is shown.

Example:
  mlr which cuda12`,
	Args: cobra.ExactArgs(1),
	RunE: runWhich,
}

func init() {
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	envName := args[0]

	store, _, err := newStore()
	if err != nil {
		return err
	}

	match, notices, err := store.FindEnvironment(envName)
	if err != nil {
		return err
	}
	printNotices(notices)

	if match == nil {
		fmt.Printf("Environment %q not found.\n", envName)
		return nil
	}

	printMatch(store, match)
	return nil
}

func printMatch(store *metadata.Store, match *metadata.Match) {
	owner := fmt.Sprintf("%s %s", match.Source.Type, match.Source.Name)
	fmt.Printf("%s %s\n", style.Bold.Render(match.Env.Name()), style.Dim.Render("("+owner+")"))

	if path, err := store.EnvironmentPath(match.Source, match.Env.Name()); err == nil {
		fmt.Printf("  %s %s\n", style.Dim.Render("path:"), path)
	}

	// Remaining metadata fields, sorted for stable output.
	keys := make([]string, 0, len(match.Env))
	for k := range match.Env {
		if k != metadata.NameKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s %v\n", style.Dim.Render(k+":"), match.Env[k])
	}
}
