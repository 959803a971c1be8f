package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// BanList abstracts the token denylist (Redis). Banning a manager places the
// id on the list so that already-issued JWTs stop working immediately.
type BanList interface {
	Add(ctx context.Context, userID string) error
	Remove(ctx context.Context, userID string) error
}

// UserService implements manager listing, user lookup, and the admin
// ban/unban/delete actions.
type UserService struct {
	repo      ports.UserRepository
	auditRepo ports.AuditRepository
	banlist   BanList
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	auditRepo ports.AuditRepository,
	banlist BanList,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:      repo,
		auditRepo: auditRepo,
		banlist:   banlist,
		audit:     audit,
		logger:    logger,
	}
}

// normalisePage applies the default page/limit when the caller supplied a
// non-positive value. Garbage query strings arrive here as zero, so omitted
// and malformed input collapse to the same defaults.
func normalisePage(page, limit int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

// totalPages returns ceil(total/limit), with 0 pages for an empty result set.
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ListManagers returns one page of manager-role users plus the unfiltered
// total. An out-of-range page yields an empty page, not an error.
func (s *UserService) ListManagers(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error) {
	page, limit := normalisePage(input.Page, input.Limit)

	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		Role:  domain.RoleManager,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Int("limit", limit).Msg("failed to list managers")
		return nil, fmt.Errorf("list managers: %w", err)
	}

	return &ports.ListManagersResult{
		Users:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// GetUser resolves a user by identifier. Absence (including malformed ids,
// which the repository normalises) surfaces as domain.ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// BanManager sets the manager's ban flag and places the id on the denylist.
// Banning an already-banned manager is a success.
func (s *UserService) BanManager(ctx context.Context, id string, actor ports.AdminActor) error {
	if err := s.repo.SetActive(ctx, id, domain.RoleManager, false); err != nil {
		return err
	}

	// Denylist failure does not undo the ban; the flag in the store is
	// authoritative and the entry expires with the token TTL anyway.
	if err := s.banlist.Add(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to add user to ban denylist")
	}

	s.recordAudit(id, domain.AuditBan, actor)
	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("manager banned")
	return nil
}

// UnbanManager clears the manager's ban flag and removes the denylist entry.
func (s *UserService) UnbanManager(ctx context.Context, id string, actor ports.AdminActor) error {
	if err := s.repo.SetActive(ctx, id, domain.RoleManager, true); err != nil {
		return err
	}

	if err := s.banlist.Remove(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to remove user from ban denylist")
	}

	s.recordAudit(id, domain.AuditUnban, actor)
	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("manager unbanned")
	return nil
}

// DeleteManager permanently removes the manager's record.
func (s *UserService) DeleteManager(ctx context.Context, id string, actor ports.AdminActor) error {
	if err := s.repo.Delete(ctx, id, domain.RoleManager); err != nil {
		return err
	}

	if err := s.banlist.Add(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to denylist deleted user")
	}

	s.recordAudit(id, domain.AuditDelete, actor)
	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("manager deleted")
	return nil
}

// ManagerAudit returns the audit trail recorded for a manager account.
func (s *UserService) ManagerAudit(ctx context.Context, id string) ([]*domain.AuditEntry, error) {
	return s.auditRepo.FindByUserID(ctx, id)
}

func (s *UserService) recordAudit(userID string, action domain.AuditAction, actor ports.AdminActor) {
	s.audit.Record(domain.AuditEntry{
		UserID:    userID,
		Action:    action,
		ActorID:   actor.ID,
		ActorName: actor.Username,
		Timestamp: time.Now().UTC(),
	})
}
