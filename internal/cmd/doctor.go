package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modulair/modulair/internal/doctor"
	"github.com/modulair/modulair/internal/identity"
	"github.com/modulair/modulair/internal/metadata"
	"github.com/modulair/modulair/internal/style"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	GroupID: GroupAdmin,
	Short:   "Diagnose metadata and identity problems",
	Long: `Run health checks over the ModuLair metadata layer:

  - SCRATCH is set and the scratch directory exists
  - your metadata document is readable JSON
  - each group's metadata document loads
  - no temp files linger from interrupted writes

Exits nonzero if any check reports an error.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errChecksFailed propagates a failed check through Execute's normal
// error path, keeping the logger flush and exit code handling there.
var errChecksFailed = errors.New("one or more health checks failed")

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := &doctor.CheckContext{}

	id, err := identity.Resolve()
	if err != nil {
		ctx.IdentityErr = err
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx.Identity = id
		ctx.Config = cfg
		store := metadata.New(id, cfg)
		store.SetLogger(logger)
		ctx.Store = store
	}

	results := doctor.RunAll(doctor.DefaultChecks(), ctx)
	for _, res := range results {
		printCheckResult(res)
	}

	if doctor.HasErrors(results) {
		return errChecksFailed
	}
	return nil
}

func printCheckResult(res *doctor.CheckResult) {
	var prefix string
	switch res.Status {
	case doctor.StatusOK:
		prefix = style.SuccessPrefix()
	case doctor.StatusWarning:
		prefix = style.WarningPrefix()
	default:
		prefix = style.ErrorPrefix()
	}

	fmt.Printf("%s %s: %s\n", prefix, style.Bold.Render(res.Name), res.Message)
	for _, d := range res.Details {
		fmt.Printf("    %s\n", style.Dim.Render(d))
	}
	if res.FixHint != "" && res.Status != doctor.StatusOK {
		fmt.Printf("    %s %s\n", style.Dim.Render("hint:"), res.FixHint)
	}
}
