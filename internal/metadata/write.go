package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WriteDocument serializes the document as indented JSON and replaces
// the owner's metadata file. The document is written to a temp file in
// the same directory and renamed into place, so readers never observe
// a half-written file.
func (s *Store) WriteDocument(doc *Document, src Source) error {
	path, err := s.MetadataPath(src)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating metadata directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", MetadataFileName, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing metadata file: %w", err)
	}

	s.logger.Debug("wrote metadata document",
		zap.String("path", path),
		zap.Int("environments", len(doc.Environments)))
	return nil
}

// RemoveEnvironment deletes the named environment from its owning
// metadata document. The owner is resolved via FindEnvironment; a nil
// Removal means the name was absent and nothing was written.
//
// The read-modify-write runs under an advisory flock on a sidecar lock
// file, and the owning document is reloaded fresh under the lock; the
// reload is authoritative. If a concurrent writer removed the entry
// first, this reports not-found rather than failing.
func (s *Store) RemoveEnvironment(envName string) (*Removal, []Notice, error) {
	match, notices, err := s.FindEnvironment(envName)
	if err != nil {
		return nil, notices, err
	}
	if match == nil {
		return nil, notices, nil
	}

	lockFile, err := s.lockPath(match.Source)
	if err != nil {
		return nil, notices, err
	}
	fl := flock.New(lockFile)
	if err := fl.Lock(); err != nil {
		return nil, notices, fmt.Errorf("locking metadata for %s %q: %w", match.Source.Type, match.Source.Name, err)
	}
	defer fl.Unlock()

	var doc *Document
	if match.Source.Type == SourceUser {
		doc, err = s.LoadUserDocument()
		if err != nil {
			return nil, notices, err
		}
	} else {
		var notice *Notice
		doc, notice = s.LoadGroupDocument(match.Source.Name)
		if notice != nil {
			notices = append(notices, *notice)
		}
	}

	removed := doc.removeFirst(envName)
	if removed == nil {
		// Lost a race with another remover; the fresh read wins.
		return nil, notices, nil
	}

	if err := s.WriteDocument(doc, match.Source); err != nil {
		return nil, notices, err
	}

	s.logger.Info("removed environment",
		zap.String("name", envName),
		zap.String("source_type", string(match.Source.Type)),
		zap.String("source_name", match.Source.Name))

	return &Removal{Source: match.Source, Env: removed}, notices, nil
}

// removeFirst deletes the first environment with the given name from
// the document, preserving the order of the rest, and returns it. Nil
// if no entry matches.
func (d *Document) removeFirst(envName string) Environment {
	for i, env := range d.Environments {
		if env.Name() == envName {
			d.Environments = append(d.Environments[:i], d.Environments[i+1:]...)
			return env
		}
	}
	return nil
}
