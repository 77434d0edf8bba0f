package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/modulair/modulair/internal/metadata"
	"github.com/modulair/modulair/internal/style"
	"github.com/modulair/modulair/internal/tui"
)

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	GroupID: GroupAdmin,
	Short:   "Remove an environment from its metadata",
	Long: `Remove an environment entry from the metadata document that owns it.

Only the metadata entry is removed; the environment directory on disk
is untouched. With no argument, an interactive picker opens when run
on a terminal.

Examples:
  mlr remove old-env
  mlr remove               # Pick interactively
  mlr remove old-env -y    # Skip confirmation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

var removeYes bool

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, _, err := newStore()
	if err != nil {
		return err
	}

	var envName string
	if len(args) == 1 {
		envName = args[0]
	} else {
		envName, err = pickEnvironment(store)
		if err != nil {
			return err
		}
		if envName == "" {
			return nil
		}
	}

	if !removeYes && isTerminal() {
		if !confirm(fmt.Sprintf("Remove %q from its metadata?", envName)) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	removal, notices, err := store.RemoveEnvironment(envName)
	if err != nil {
		return err
	}
	printNotices(notices)

	if removal == nil {
		fmt.Printf("Environment %q not found; nothing removed.\n", envName)
		return nil
	}

	owner := fmt.Sprintf("%s %s", removal.Source.Type, removal.Source.Name)
	fmt.Printf("%s Removed %s %s\n",
		style.SuccessPrefix(),
		style.Bold.Render(removal.Env.Name()),
		style.Dim.Render("("+owner+")"))
	return nil
}

// pickEnvironment opens the interactive picker; returns "" when the
// user cancels or no terminal is attached.
func pickEnvironment(store *metadata.Store) (string, error) {
	if !isTerminal() {
		return "", fmt.Errorf("no environment name given")
	}

	merged, notices, err := store.LoadAll()
	if err != nil {
		return "", err
	}
	printNotices(notices)

	items := tui.ItemsFromMerged(merged, store.UserSource())
	if len(items) == 0 {
		fmt.Println(style.Dim.Render("No environments found."))
		return "", nil
	}

	choice, err := tui.Pick("Remove which environment?", items)
	if err != nil || choice == nil {
		return "", err
	}
	return choice.EnvName, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
