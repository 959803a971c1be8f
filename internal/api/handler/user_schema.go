package handler

import "time"

// messageResponse is the standard envelope returned on 4xx/5xx responses and
// on bodyless-success actions.
type messageResponse struct {
	Message string `json:"message"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes — and so the password hash and token state can never leak.

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listManagersResponse mirrors the public listing contract: the page of users
// plus pagination bookkeeping and the unfiltered manager total.
type listManagersResponse struct {
	Users         []userResponse `json:"users"`
	TotalPages    int            `json:"totalPages"`
	CurrentPage   int            `json:"currentPage"`
	Limit         int            `json:"limit"`
	TotalManagers int64          `json:"totalManagers"`
}

type auditEntryResponse struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actorId"`
	ActorName string    `json:"actorName,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type auditTrailResponse struct {
	UserID  string               `json:"userId"`
	Entries []auditEntryResponse `json:"entries"`
}
