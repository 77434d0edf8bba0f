package metadata

import (
	"errors"

	"go.uber.org/zap"

	"github.com/modulair/modulair/internal/config"
	"github.com/modulair/modulair/internal/identity"
)

var (
	// ErrCorruptMetadata indicates the user's metadata file exists but
	// is not valid JSON. Group documents never raise this; their
	// corruption degrades to a Notice.
	ErrCorruptMetadata = errors.New("metadata file is corrupted or not in JSON format")

	// ErrInvalidSource indicates an unrecognized owner type was passed
	// to path resolution.
	ErrInvalidSource = errors.New("invalid source type")
)

// Store provides all metadata operations for one resolved identity.
// It holds no cached document state; every operation re-reads disk.
type Store struct {
	id     *identity.Identity
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a Store for the given identity and config.
func New(id *identity.Identity, cfg *config.Config) *Store {
	return &Store{
		id:     id,
		cfg:    cfg,
		logger: zap.NewNop(),
	}
}

// SetLogger installs a logger for debug tracing. The default is a nop
// logger.
func (s *Store) SetLogger(l *zap.Logger) {
	if l != nil {
		s.logger = l
	}
}

// UserSource returns the Source identifying the current user's
// document.
func (s *Store) UserSource() Source {
	return Source{Type: SourceUser, Name: s.id.Username}
}

// GroupSource returns the Source identifying a group's document.
func GroupSource(group string) Source {
	return Source{Type: SourceGroup, Name: group}
}
