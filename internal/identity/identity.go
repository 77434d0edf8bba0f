// Package identity resolves the calling user's identity and group
// memberships for ModuLair. Identity is resolved once at startup and
// passed to the metadata layer explicitly, so the rest of the code
// never reaches into the process environment.
package identity

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnvVarScratch names the user's scratch storage root. The username and
// all user-owned metadata paths derive from it.
const EnvVarScratch = "SCRATCH"

var (
	// ErrScratchUnset indicates the SCRATCH environment variable is
	// missing or empty.
	ErrScratchUnset = errors.New("SCRATCH environment variable not set")

	// ErrGroupsQuery indicates the host group-membership query could
	// not be executed.
	ErrGroupsQuery = errors.New("querying group memberships")
)

// Identity describes the calling user: scratch root, username derived
// from it, and the user's group memberships in query order.
type Identity struct {
	// Username is the last path segment of the scratch root.
	Username string

	// Scratch is the user's scratch storage root.
	Scratch string

	// Groups lists the user's groups, deduplicated, in the order the
	// host query reported them.
	Groups []string
}

// Resolve builds the process identity from the environment: scratch
// root from SCRATCH, username from its basename, groups from the host
// `groups` command.
func Resolve() (*Identity, error) {
	scratch := os.Getenv(EnvVarScratch)
	if scratch == "" {
		return nil, ErrScratchUnset
	}

	groups, err := queryGroups()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGroupsQuery, err)
	}

	return &Identity{
		Username: usernameFromScratch(scratch),
		Scratch:  scratch,
		Groups:   groups,
	}, nil
}

// usernameFromScratch derives the username from the scratch root path,
// e.g. /scratch/user/alice -> alice.
func usernameFromScratch(scratch string) string {
	return filepath.Base(strings.TrimRight(scratch, "/"))
}

// queryGroups runs the host `groups` command and parses its output.
func queryGroups() ([]string, error) {
	out, err := exec.Command("groups").Output()
	if err != nil {
		return nil, err
	}
	return parseGroups(string(out)), nil
}

// parseGroups splits whitespace-separated group names, dropping
// duplicates while preserving first-seen order. Some hosts prefix the
// list with "username :"; the prefix is stripped if present.
func parseGroups(out string) []string {
	if idx := strings.Index(out, ":"); idx >= 0 {
		out = out[idx+1:]
	}

	fields := strings.Fields(out)
	groups := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, g := range fields {
		if seen[g] {
			continue
		}
		seen[g] = true
		groups = append(groups, g)
	}
	return groups
}
