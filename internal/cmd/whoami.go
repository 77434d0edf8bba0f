package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modulair/modulair/internal/identity"
	"github.com/modulair/modulair/internal/style"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	GroupID: GroupQuery,
	Short:   "Show the resolved identity",
	Long: `Show the identity mlr resolved for this process: the username derived
from $SCRATCH, the scratch root itself, and your group memberships in
the order the host reports them.`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	id, err := identity.Resolve()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", style.Bold.Render("User:"), id.Username)
	fmt.Printf("%s %s\n", style.Bold.Render("Scratch:"), id.Scratch)
	if len(id.Groups) == 0 {
		fmt.Printf("%s %s\n", style.Bold.Render("Groups:"), style.Dim.Render("(none)"))
	} else {
		fmt.Printf("%s %s\n", style.Bold.Render("Groups:"), strings.Join(id.Groups, " "))
	}
	return nil
}
