package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modulair/modulair/internal/identity"
	"github.com/modulair/modulair/internal/metadata"
)

// ScratchCheck verifies the scratch root is configured and present.
type ScratchCheck struct {
	BaseCheck
}

// NewScratchCheck creates a new scratch root check.
func NewScratchCheck() *ScratchCheck {
	return &ScratchCheck{
		BaseCheck: BaseCheck{
			CheckName:        "scratch-root",
			CheckDescription: "Verify SCRATCH is set and the directory exists",
		},
	}
}

// Run checks the scratch root.
func (c *ScratchCheck) Run(ctx *CheckContext) *CheckResult {
	if ctx.IdentityErr != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: ctx.IdentityErr.Error(),
			FixHint: fmt.Sprintf("Export %s pointing at your scratch directory", identity.EnvVarScratch),
		}
	}

	if _, err := os.Stat(ctx.Identity.Scratch); os.IsNotExist(err) {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("Scratch directory %s does not exist", ctx.Identity.Scratch),
			FixHint: "Check that scratch storage is mounted",
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("Scratch root is %s (user %s)", ctx.Identity.Scratch, ctx.Identity.Username),
	}
}

// UserMetadataCheck verifies the user's metadata document parses.
type UserMetadataCheck struct {
	BaseCheck
}

// NewUserMetadataCheck creates a new user metadata check.
func NewUserMetadataCheck() *UserMetadataCheck {
	return &UserMetadataCheck{
		BaseCheck: BaseCheck{
			CheckName:        "user-metadata",
			CheckDescription: "Verify the user metadata document is readable JSON",
		},
	}
}

// Run checks the user metadata document.
func (c *UserMetadataCheck) Run(ctx *CheckContext) *CheckResult {
	if ctx.Store == nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: "Skipped: identity not resolved",
		}
	}

	doc, err := ctx.Store.LoadUserDocument()
	if err != nil {
		path, _ := ctx.Store.MetadataPath(ctx.Store.UserSource())
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: err.Error(),
			Details: []string{"File: " + path},
			FixHint: "Repair or remove the metadata file; a missing file loads as empty",
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("User metadata OK (%d environments)", len(doc.Environments)),
	}
}

// GroupMetadataCheck loads every group document and reports notices.
type GroupMetadataCheck struct {
	BaseCheck
}

// NewGroupMetadataCheck creates a new group metadata check.
func NewGroupMetadataCheck() *GroupMetadataCheck {
	return &GroupMetadataCheck{
		BaseCheck: BaseCheck{
			CheckName:        "group-metadata",
			CheckDescription: "Load each group's metadata document and report faults",
		},
	}
}

// Run checks all group metadata documents.
func (c *GroupMetadataCheck) Run(ctx *CheckContext) *CheckResult {
	if ctx.Store == nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: "Skipped: identity not resolved",
		}
	}

	var details []string
	for _, group := range ctx.Identity.Groups {
		if _, notice := ctx.Store.LoadGroupDocument(group); notice != nil {
			details = append(details, notice.Message)
		}
	}

	if len(details) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("%d group document(s) degraded", len(details)),
			Details: details,
			FixHint: "Ask the group owner to repair the shared metadata file",
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("All %d group documents under %s load cleanly", len(ctx.Identity.Groups), ctx.Config.GroupRoot),
	}
}

// InterruptedWriteCheck looks for temp files left behind by writes
// that died before the rename.
type InterruptedWriteCheck struct {
	BaseCheck
}

// NewInterruptedWriteCheck creates a new interrupted-write check.
func NewInterruptedWriteCheck() *InterruptedWriteCheck {
	return &InterruptedWriteCheck{
		BaseCheck: BaseCheck{
			CheckName:        "interrupted-writes",
			CheckDescription: "Detect leftover metadata temp files",
		},
	}
}

// Run scans owner directories for orphaned temp files.
func (c *InterruptedWriteCheck) Run(ctx *CheckContext) *CheckResult {
	if ctx.Store == nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: "Skipped: identity not resolved",
		}
	}

	sources := []metadata.Source{ctx.Store.UserSource()}
	for _, g := range ctx.Identity.Groups {
		sources = append(sources, metadata.GroupSource(g))
	}

	var leftovers []string
	for _, src := range sources {
		path, err := ctx.Store.MetadataPath(src)
		if err != nil {
			continue
		}
		pattern := filepath.Join(filepath.Dir(path), "."+metadata.MetadataFileName+".*.tmp")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		leftovers = append(leftovers, matches...)
	}

	if len(leftovers) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("%d leftover temp file(s) from interrupted writes", len(leftovers)),
			Details: leftovers,
			FixHint: "Delete the listed temp files: " + strings.Join(leftovers, " "),
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: "No leftover metadata temp files",
	}
}
