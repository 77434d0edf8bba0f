package metadata

import (
	"fmt"
	"path/filepath"
)

const (
	// EnvsDirName is the per-owner directory holding environments and
	// their metadata file.
	EnvsDirName = "virtual_envs"

	// MetadataFileName is the metadata document inside EnvsDirName.
	MetadataFileName = "metadata.json"
)

// envsDir returns the virtual_envs directory for an owner: the user's
// is rooted at their scratch directory, a group's at the shared group
// root.
func (s *Store) envsDir(src Source) (string, error) {
	switch src.Type {
	case SourceUser:
		return filepath.Join(s.id.Scratch, EnvsDirName), nil
	case SourceGroup:
		return filepath.Join(s.cfg.GroupRoot, src.Name, EnvsDirName), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSource, src.Type)
	}
}

// MetadataPath returns the metadata file path for an owner.
func (s *Store) MetadataPath(src Source) (string, error) {
	dir, err := s.envsDir(src)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, MetadataFileName), nil
}

// EnvironmentPath returns the directory of a named environment under
// its owner.
func (s *Store) EnvironmentPath(src Source, envName string) (string, error) {
	dir, err := s.envsDir(src)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, envName), nil
}

// lockPath returns the sidecar lock file guarding mutation of an
// owner's metadata file.
func (s *Store) lockPath(src Source) (string, error) {
	path, err := s.MetadataPath(src)
	if err != nil {
		return "", err
	}
	return path + ".lock", nil
}
