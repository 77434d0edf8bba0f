// Package doctor provides health checks for the ModuLair metadata
// layer: identity resolution, metadata file integrity, and leftovers
// from interrupted writes.
package doctor

import (
	"github.com/modulair/modulair/internal/config"
	"github.com/modulair/modulair/internal/identity"
	"github.com/modulair/modulair/internal/metadata"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// CheckResult is the outcome of running one check.
type CheckResult struct {
	Name    string
	Status  Status
	Message string
	Details []string
	FixHint string
}

// CheckContext carries the resolved state checks inspect. Identity
// resolution itself may have failed; checks that need it should report
// rather than assume.
type CheckContext struct {
	Identity    *identity.Identity
	IdentityErr error
	Config      *config.Config

	// Store is nil when identity could not be resolved.
	Store *metadata.Store
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Description() string
	Run(ctx *CheckContext) *CheckResult
}

// BaseCheck provides the common name/description plumbing.
type BaseCheck struct {
	CheckName        string
	CheckDescription string
}

func (c *BaseCheck) Name() string        { return c.CheckName }
func (c *BaseCheck) Description() string { return c.CheckDescription }

// DefaultChecks returns the standard check suite in run order.
func DefaultChecks() []Check {
	return []Check{
		NewScratchCheck(),
		NewUserMetadataCheck(),
		NewGroupMetadataCheck(),
		NewInterruptedWriteCheck(),
	}
}

// RunAll runs every check against the context.
func RunAll(checks []Check, ctx *CheckContext) []*CheckResult {
	results := make([]*CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run(ctx))
	}
	return results
}

// HasErrors reports whether any check result is StatusError.
func HasErrors(results []*CheckResult) bool {
	for _, res := range results {
		if res.Status == StatusError {
			return true
		}
	}
	return false
}
