// Package metadata reads, merges, and rewrites the JSON metadata
// documents that track ModuLair virtual environments. A user owns one
// document under their scratch root; each group owns one under the
// shared group root. This layer never creates environments, it only
// describes and removes them.
package metadata

// NameKey is the JSON field holding an environment's unique name.
const NameKey = "name"

// Environment is one metadata entry. Beyond the name, its fields are
// opaque to this layer and round-trip untouched.
type Environment map[string]any

// Name returns the environment's name, or "" if the field is missing
// or not a string.
func (e Environment) Name() string {
	s, _ := e[NameKey].(string)
	return s
}

// Document is the on-disk metadata file: an ordered list of
// environments.
type Document struct {
	Environments []Environment `json:"environments"`
}

// EmptyDocument returns a document with no environments. Missing
// metadata files load as this.
func EmptyDocument() *Document {
	return &Document{Environments: []Environment{}}
}

// SourceType tags an owner as the current user or a group.
type SourceType string

const (
	// SourceUser marks metadata owned by the current user.
	SourceUser SourceType = "user"

	// SourceGroup marks metadata shared by a group.
	SourceGroup SourceType = "group"
)

// Source identifies a metadata document's owner: the current user
// (Name = username) or a group (Name = group name).
type Source struct {
	Type SourceType
	Name string
}

// Merged is the unified view across the user's document and all
// non-empty group documents.
type Merged struct {
	// User is the current user's document, always present (possibly
	// empty).
	User *Document

	// Groups maps group name to document. Only groups with at least
	// one environment appear.
	Groups map[string]*Document

	// GroupOrder preserves the membership-query order of the groups in
	// Groups, since lookup precedence depends on it.
	GroupOrder []string
}

// Match is a successful environment lookup: the record and who owns it.
type Match struct {
	Source Source
	Env    Environment
}

// Removal reports a completed environment removal.
type Removal struct {
	Source Source
	Env    Environment
}

// Notice is a non-fatal warning raised while loading group metadata.
// Loaders collect notices instead of printing so callers control
// presentation.
type Notice struct {
	// Group is the group whose document triggered the notice.
	Group string

	// Message is a human-readable description of the fault.
	Message string

	// Err is the underlying error, if any.
	Err error
}
