package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crmsuite/user-management-api/internal/api/metrics"
	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user listing, lookup, and the
// admin manager actions.
type UserHandler struct {
	service ports.UserService
	logger  zerolog.Logger
}

func NewUserHandler(service ports.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// queryInt parses a base-10 query parameter. Missing or malformed values
// return 0, which the service layer normalises to the documented default —
// garbage pagination input is corrected, never rejected.
func queryInt(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ListManagers handles GET /api/users/managers.
//
// @Summary      List managers
// @Description  Returns one page of manager-role users plus pagination totals.
// @Tags         users
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based, default 1)"
// @Param        limit  query     int  false  "Page size (default 5)"
// @Success      200    {object}  listManagersResponse
// @Failure      500    {object}  messageResponse
// @Router       /api/users/managers [get]
func (h *UserHandler) ListManagers(c echo.Context) error {
	metrics.ManagerListRequestsTotal.Inc()

	result, err := h.service.ListManagers(c.Request().Context(), ports.ListManagersInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("list managers failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// GetByID handles GET /api/users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User identifier"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		h.logger.Error().Err(err).Str("id", c.Param("id")).Msg("get user failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Ban handles PATCH /api/users/managers/ban/:id.
//
// @Summary      Ban a manager
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Manager identifier"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users/managers/ban/{id} [patch]
func (h *UserHandler) Ban(c echo.Context) error {
	return h.adminAction(c, "ban", h.service.BanManager, "Manager banned successfully")
}

// Unban handles PATCH /api/users/managers/unban/:id.
//
// @Summary      Unban a manager
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Manager identifier"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users/managers/unban/{id} [patch]
func (h *UserHandler) Unban(c echo.Context) error {
	return h.adminAction(c, "unban", h.service.UnbanManager, "Manager unbanned successfully")
}

// Delete handles DELETE /api/users/managers/:id.
//
// @Summary      Delete a manager
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "Manager identifier"
// @Success      204  "Manager deleted"
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users/managers/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteManager(c.Request().Context(), id, actor); err != nil {
		return h.actionError(c, "delete", id, err)
	}

	metrics.AdminActionsTotal.WithLabelValues("delete", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Audit handles GET /api/users/managers/:id/audit.
//
// @Summary      Admin audit trail for a manager
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Manager identifier"
// @Success      200  {object}  auditTrailResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/users/managers/{id}/audit [get]
func (h *UserHandler) Audit(c echo.Context) error {
	id := c.Param("id")
	entries, err := h.service.ManagerAudit(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("fetch audit trail failed")
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}

	return c.JSON(http.StatusOK, toAuditResponse(id, entries))
}

type actionFunc func(ctx context.Context, id string, actor ports.AdminActor) error

func (h *UserHandler) adminAction(c echo.Context, action string, fn actionFunc, okMessage string) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := fn(c.Request().Context(), id, actor); err != nil {
		return h.actionError(c, action, id, err)
	}

	metrics.AdminActionsTotal.WithLabelValues(action, "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: okMessage})
}

func (h *UserHandler) actionError(c echo.Context, action, id string, err error) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		metrics.AdminActionsTotal.WithLabelValues(action, "not_found").Inc()
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Manager not found"})
	}
	metrics.AdminActionsTotal.WithLabelValues(action, "error").Inc()
	h.logger.Error().Err(err).Str("action", action).Str("id", id).Msg("admin action failed")
	return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
}
