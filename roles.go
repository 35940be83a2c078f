package rolekit

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// UsersCollection is the document store collection holding role records,
// keyed by subject id.
const UsersCollection = "users"

// Document field names for a role record.
const (
	fieldUID   = "uid"
	fieldEmail = "email"
	fieldRole  = "role"
)

// RoleStore reads and writes RoleRecords through the document store
// port. Every Get is a fresh point read; nothing is cached across
// calls, so a role downgrade is visible to the very next decision.
type RoleStore struct {
	docs   ports.DocumentStore
	logger *zap.Logger
}

// NewRoleStore creates a role store over a document store.
// A nil logger disables logging.
func NewRoleStore(docs ports.DocumentStore, logger *zap.Logger) *RoleStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleStore{docs: docs, logger: logger}
}

// Get performs one point read for the subject's role record.
// Returns domain.ErrRecordNotFound when no record exists; any other
// failure is wrapped as a store read error so callers can tell
// "record absent" from "could not determine".
func (s *RoleStore) Get(ctx context.Context, subjectID string) (*domain.RoleRecord, error) {
	doc, err := s.docs.Get(ctx, UsersCollection, subjectID)
	if err != nil {
		if errors.Is(err, ports.ErrDocumentNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		s.logger.Error("role store read failed",
			zap.String("subject_id", subjectID),
			zap.Error(err))
		return nil, domain.StoreReadError(err)
	}
	return recordFromDocument(subjectID, doc), nil
}

// Create writes the subject's role record. Used by the signup flow
// with the default viewer role.
func (s *RoleStore) Create(ctx context.Context, record domain.RoleRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	fields := ports.Document{
		fieldUID:   record.SubjectID,
		fieldEmail: record.Email,
		fieldRole:  record.Role.String(),
	}
	if err := s.docs.Set(ctx, UsersCollection, record.SubjectID, fields); err != nil {
		s.logger.Error("role record create failed",
			zap.String("subject_id", record.SubjectID),
			zap.Error(err))
		return domain.StoreWriteError(err)
	}
	return nil
}

// SetRole changes the subject's role. Administration path only; the
// guard's read path never writes.
func (s *RoleStore) SetRole(ctx context.Context, subjectID string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}
	err := s.docs.Update(ctx, UsersCollection, subjectID, ports.Document{
		fieldRole: role.String(),
	})
	if err != nil {
		if errors.Is(err, ports.ErrDocumentNotFound) {
			return domain.ErrRecordNotFound
		}
		return domain.StoreWriteError(err)
	}
	return nil
}

// List returns every role record, for the administration view.
func (s *RoleStore) List(ctx context.Context) ([]domain.RoleRecord, error) {
	docs, err := s.docs.List(ctx, UsersCollection)
	if err != nil {
		return nil, domain.StoreReadError(err)
	}
	records := make([]domain.RoleRecord, 0, len(docs))
	for key, doc := range docs {
		records = append(records, *recordFromDocument(key, doc))
	}
	return records, nil
}

func recordFromDocument(key string, doc ports.Document) *domain.RoleRecord {
	rec := &domain.RoleRecord{SubjectID: key}
	if uid, ok := doc[fieldUID].(string); ok && uid != "" {
		rec.SubjectID = uid
	}
	if email, ok := doc[fieldEmail].(string); ok {
		rec.Email = email
	}
	if role, ok := doc[fieldRole].(string); ok {
		// Unknown stored values parse to RoleNone and can never
		// satisfy an expected role.
		rec.Role = domain.ParseRole(role)
	}
	return rec
}
