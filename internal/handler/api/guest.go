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

type GuestHandler struct {
	guests       commands.GuestCommands
	guestQueries queries.GuestQueries
	poolQueries  queries.PoolQueries
}

func NewGuestHandler(guests commands.GuestCommands, guestQueries queries.GuestQueries, poolQueries queries.PoolQueries) *GuestHandler {
	return &GuestHandler{guests: guests, guestQueries: guestQueries, poolQueries: poolQueries}
}

// @Summary Issue guest credential
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.CreateGuestRequest true "Guest request"
// @Success 201 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /pools/{id}/guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
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

	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.guests.IssueGuest(c.Request.Context(), userID, req.ToInput(poolID))
	if err != nil {
		h.respondGuestError(c, err)
		return
	}

	view, err := h.guestQueries.GetGuest(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary List pool guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {array} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
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

	if _, err := h.poolQueries.GetByID(c.Request.Context(), userID, poolID); err != nil {
		h.respondGuestError(c, err)
		return
	}

	views, err := h.guestQueries.ListGuests(c.Request.Context(), poolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.GuestResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromGuestView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Issue group credential
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.CreateGroupRequest true "Group request"
// @Success 201 {object} resdto.GroupResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pools/{id}/groups [post]
func (h *GuestHandler) CreateGroup(c *gin.Context) {
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

	var req reqdto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.guests.IssueGroup(c.Request.Context(), userID, req.ToInput(poolID))
	if err != nil {
		h.respondGuestError(c, err)
		return
	}

	view, err := h.guestQueries.GetGroup(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGroupView(view))
}

// @Summary List pool groups
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {array} resdto.GroupResponse
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/groups [get]
func (h *GuestHandler) ListGroups(c *gin.Context) {
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

	if _, err := h.poolQueries.GetByID(c.Request.Context(), userID, poolID); err != nil {
		h.respondGuestError(c, err)
		return
	}

	views, err := h.guestQueries.ListGroups(c.Request.Context(), poolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.GroupResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromGroupView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update group
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body reqdto.UpdateGroupRequest true "Update request"
// @Success 200 {object} resdto.GroupResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /groups/{id} [patch]
func (h *GuestHandler) UpdateGroup(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID format"})
		return
	}

	var req reqdto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.guests.UpdateGroup(c.Request.Context(), userID, groupID, req.ToInput()); err != nil {
		h.respondGuestError(c, err)
		return
	}

	view, err := h.guestQueries.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupView(view))
}

// @Summary Revoke guest credential
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [delete]
func (h *GuestHandler) RevokeGuest(c *gin.Context) {
	h.revoke(c, h.guests.RevokeGuest)
}

// @Summary Revoke group credential
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /groups/{id} [delete]
func (h *GuestHandler) RevokeGroup(c *gin.Context) {
	h.revoke(c, h.guests.RevokeGroup)
}

func (h *GuestHandler) revoke(c *gin.Context, op func(ctx context.Context, actorID, id uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := op(c.Request.Context(), userID, id); err != nil {
		h.respondGuestError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GuestHandler) respondGuestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
	case errors.Is(err, errs.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
	case errors.Is(err, errs.ErrNotMember):
		// Non-members learn nothing about the pool, matching the read side.
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrCredentialRender):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Credential rendering failed"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid guest data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
