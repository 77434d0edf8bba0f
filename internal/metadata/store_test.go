package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modulair/modulair/internal/config"
	"github.com/modulair/modulair/internal/identity"
)

// testStore builds a Store rooted in a temp directory, with the user
// "alice" and the given group memberships.
func testStore(t *testing.T, groups ...string) *Store {
	t.Helper()
	root := t.TempDir()
	id := &identity.Identity{
		Username: "alice",
		Scratch:  filepath.Join(root, "user", "alice"),
		Groups:   groups,
	}
	cfg := &config.Config{
		GroupRoot: filepath.Join(root, "group"),
		Color:     "never",
	}
	return New(id, cfg)
}

// seed writes raw metadata content for an owner, creating directories
// as needed.
func seed(t *testing.T, s *Store, src Source, content string) string {
	t.Helper()
	path, err := s.MetadataPath(src)
	if err != nil {
		t.Fatalf("MetadataPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func envNames(doc *Document) []string {
	names := make([]string, 0, len(doc.Environments))
	for _, env := range doc.Environments {
		names = append(names, env.Name())
	}
	return names
}
