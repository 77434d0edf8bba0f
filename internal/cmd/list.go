package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/modulair/modulair/internal/metadata"
	"github.com/modulair/modulair/internal/style"
	"github.com/modulair/modulair/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	GroupID: GroupQuery,
	Short:   "List all environments you can see",
	Long: `List the merged view of virtual environments: your own, then each
group's shared environments. Groups without environments are omitted.

Names are sorted for display; lookup precedence (yours first, then
groups in membership order) is unaffected.

Examples:
  mlr list                  # Plain listing
  mlr list --interactive    # Browse in a picker`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listInteractive bool

func init() {
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "Browse environments interactively")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, id, err := newStore()
	if err != nil {
		return err
	}

	merged, notices, err := store.LoadAll()
	if err != nil {
		return err
	}
	printNotices(notices)

	if listInteractive {
		return browseInteractive(store, merged)
	}

	sorter := collate.New(language.English)

	fmt.Printf("%s\n", style.Header.Render(fmt.Sprintf("Your environments (%s)", id.Username)))
	printEnvNames(sorter, merged.User)

	for _, group := range merged.GroupOrder {
		fmt.Printf("\n%s\n", style.Header.Render(fmt.Sprintf("Group %s", group)))
		printEnvNames(sorter, merged.Groups[group])
	}

	return nil
}

func printEnvNames(sorter *collate.Collator, doc *metadata.Document) {
	if len(doc.Environments) == 0 {
		fmt.Println(style.Dim.Render("  (none)"))
		return
	}

	names := make([]string, 0, len(doc.Environments))
	for _, env := range doc.Environments {
		names = append(names, env.Name())
	}
	sorter.SortStrings(names)

	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}

func browseInteractive(store *metadata.Store, merged *metadata.Merged) error {
	items := tui.ItemsFromMerged(merged, store.UserSource())
	if len(items) == 0 {
		fmt.Println(style.Dim.Render("No environments found."))
		return nil
	}

	choice, err := tui.Pick("ModuLair environments", items)
	if err != nil {
		return err
	}
	if choice == nil {
		return nil
	}

	path, err := store.EnvironmentPath(choice.Source, choice.EnvName)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", style.Bold.Render(choice.EnvName), style.Dim.Render("("+string(choice.Source.Type)+" "+choice.Source.Name+")"))
	fmt.Printf("  %s\n", path)
	return nil
}
