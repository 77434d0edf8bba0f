package metadata

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMetadataPath(t *testing.T) {
	s := testStore(t, "teamx")

	userPath, err := s.MetadataPath(s.UserSource())
	if err != nil {
		t.Fatalf("MetadataPath(user): %v", err)
	}
	want := filepath.Join(s.id.Scratch, EnvsDirName, MetadataFileName)
	if userPath != want {
		t.Errorf("user metadata path = %q, want %q", userPath, want)
	}

	groupPath, err := s.MetadataPath(GroupSource("teamx"))
	if err != nil {
		t.Fatalf("MetadataPath(group): %v", err)
	}
	want = filepath.Join(s.cfg.GroupRoot, "teamx", EnvsDirName, MetadataFileName)
	if groupPath != want {
		t.Errorf("group metadata path = %q, want %q", groupPath, want)
	}
}

func TestEnvironmentPath(t *testing.T) {
	s := testStore(t)

	userEnv, err := s.EnvironmentPath(s.UserSource(), "pytorch")
	if err != nil {
		t.Fatalf("EnvironmentPath(user): %v", err)
	}
	want := filepath.Join(s.id.Scratch, EnvsDirName, "pytorch")
	if userEnv != want {
		t.Errorf("user env path = %q, want %q", userEnv, want)
	}

	groupEnv, err := s.EnvironmentPath(GroupSource("hpc"), "cuda12")
	if err != nil {
		t.Fatalf("EnvironmentPath(group): %v", err)
	}
	want = filepath.Join(s.cfg.GroupRoot, "hpc", EnvsDirName, "cuda12")
	if groupEnv != want {
		t.Errorf("group env path = %q, want %q", groupEnv, want)
	}
}

func TestPaths_InvalidSource(t *testing.T) {
	s := testStore(t)
	bad := Source{Type: SourceType("team"), Name: "x"}

	if _, err := s.MetadataPath(bad); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("MetadataPath error = %v, want ErrInvalidSource", err)
	}
	if _, err := s.EnvironmentPath(bad, "env"); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("EnvironmentPath error = %v, want ErrInvalidSource", err)
	}
}
