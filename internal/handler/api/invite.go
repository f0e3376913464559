package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "rifas-api/internal/handler/dto/request"
	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/internal/handler/middleware"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/commands"
	"rifas-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InviteHandler struct {
	invites       commands.InviteCommands
	inviteQueries queries.InviteQueries
	poolQueries   queries.PoolQueries
}

func NewInviteHandler(invites commands.InviteCommands, inviteQueries queries.InviteQueries, poolQueries queries.PoolQueries) *InviteHandler {
	return &InviteHandler{invites: invites, inviteQueries: inviteQueries, poolQueries: poolQueries}
}

// @Summary Request shared access
// @Description Open a pending access request using a pool's invite code
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInviteRequest true "Invite request"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invites [post]
func (h *InviteHandler) Request(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.invites.Request(c.Request.Context(), userID, req.InviteCode)
	if err != nil {
		h.respondInviteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List pending invites
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {array} resdto.InviteResponse
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/invites [get]
func (h *InviteHandler) ListPending(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}

	// Membership gate before exposing requester profiles.
	if _, err := h.poolQueries.GetByID(c.Request.Context(), userID, poolID); err != nil {
		h.respondInviteError(c, err)
		return
	}

	views, err := h.inviteQueries.ListPending(c.Request.Context(), poolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.InviteResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromInviteView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Accept invite
// @Tags invites
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invites/{id}/accept [post]
func (h *InviteHandler) Accept(c *gin.Context) {
	h.transition(c, h.invites.Accept)
}

func (h *InviteHandler) transition(c *gin.Context, op func(ctx context.Context, actorID, inviteID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invite ID format"})
		return
	}

	if err := op(c.Request.Context(), userID, inviteID); err != nil {
		h.respondInviteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel invite
// @Tags invites
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invites/{id}/cancel [post]
func (h *InviteHandler) Cancel(c *gin.Context) {
	h.transition(c, h.invites.Cancel)
}

func (h *InviteHandler) respondInviteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrInviteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invite not found"})
	case errors.Is(err, errs.ErrAlreadyMember):
		c.JSON(http.StatusConflict, gin.H{"error": "Already a member of this pool"})
	case errors.Is(err, errs.ErrInviteAlreadyPending):
		c.JSON(http.StatusConflict, gin.H{"error": "An invite request is already pending"})
	case errors.Is(err, errs.ErrInviteNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "Invite is no longer pending"})
	case errors.Is(err, errs.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the pool owner may do this"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
