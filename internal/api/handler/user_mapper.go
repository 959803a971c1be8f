package handler

import (
	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListManagersResult) listManagersResponse {
	users := make([]userResponse, len(r.Users))
	for i, u := range r.Users {
		users[i] = toUserResponse(u)
	}
	return listManagersResponse{
		Users:         users,
		TotalPages:    r.TotalPages,
		CurrentPage:   r.Page,
		Limit:         r.Limit,
		TotalManagers: r.Total,
	}
}

func toAuditResponse(userID string, entries []*domain.AuditEntry) auditTrailResponse {
	out := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = auditEntryResponse{
			Action:    string(e.Action),
			ActorID:   e.ActorID,
			ActorName: e.ActorName,
			Timestamp: e.Timestamp.UTC(),
		}
	}
	return auditTrailResponse{UserID: userID, Entries: out}
}
