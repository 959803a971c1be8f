package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Write persists a single audit entry handed over by the dispatcher.
func (s *auditService) Write(ctx context.Context, entry domain.AuditEntry) error {
	entry.RecordedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}

	s.log.Info().
		Str("user_id", entry.UserID).
		Str("action", string(entry.Action)).
		Str("actor_id", entry.ActorID).
		Msg("audit entry recorded")

	return nil
}
