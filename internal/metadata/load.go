package metadata

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// LoadUserDocument reads the current user's metadata document. A
// missing file is an empty document. The user's own metadata is
// expected to be accessible and well-formed, so corruption and read
// failures are fatal here, unlike group documents.
func (s *Store) LoadUserDocument() (*Document, error) {
	path, err := s.MetadataPath(s.UserSource())
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return EmptyDocument(), nil
		}
		return nil, fmt.Errorf("reading user metadata: %w", err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("user %w: %v", ErrCorruptMetadata, err)
	}
	return doc, nil
}

// LoadGroupDocument reads a group's metadata document. It never fails:
// a missing file or permission denial is routine in multi-tenant
// storage and returns an empty document silently; corruption or an
// unexpected read error returns an empty document plus a Notice.
func (s *Store) LoadGroupDocument(group string) (*Document, *Notice) {
	path, err := s.MetadataPath(GroupSource(group))
	if err != nil {
		// Unreachable for a well-formed group source; degrade anyway.
		return EmptyDocument(), &Notice{Group: group, Message: err.Error(), Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			s.logger.Debug("group metadata inaccessible",
				zap.String("group", group),
				zap.Error(err))
			return EmptyDocument(), nil
		}
		return EmptyDocument(), &Notice{
			Group:   group,
			Message: fmt.Sprintf("unexpected error reading metadata for group %q", group),
			Err:     err,
		}
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return EmptyDocument(), &Notice{
			Group:   group,
			Message: fmt.Sprintf("metadata file for group %q is corrupted or not in JSON format", group),
			Err:     err,
		}
	}
	return doc, nil
}

// LoadAll builds the merged view: the user's document plus every
// group document with at least one environment, in membership order.
// Group faults surface as notices, never as errors.
func (s *Store) LoadAll() (*Merged, []Notice, error) {
	userDoc, err := s.LoadUserDocument()
	if err != nil {
		return nil, nil, err
	}

	merged := &Merged{
		User:   userDoc,
		Groups: make(map[string]*Document),
	}

	var notices []Notice
	for _, group := range s.id.Groups {
		doc, notice := s.LoadGroupDocument(group)
		if notice != nil {
			notices = append(notices, *notice)
		}
		if len(doc.Environments) == 0 {
			continue
		}
		merged.Groups[group] = doc
		merged.GroupOrder = append(merged.GroupOrder, group)
	}

	s.logger.Debug("loaded merged metadata",
		zap.Int("user_envs", len(userDoc.Environments)),
		zap.Int("groups", len(merged.GroupOrder)),
		zap.Int("notices", len(notices)))

	return merged, notices, nil
}

// decodeDocument parses a metadata document, normalizing a missing
// environments list to an empty one.
func decodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Environments == nil {
		doc.Environments = []Environment{}
	}
	return &doc, nil
}
