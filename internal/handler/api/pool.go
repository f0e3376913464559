package api

import (
	"errors"
	"net/http"

	reqdto "rifas-api/internal/handler/dto/request"
	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/internal/handler/middleware"
	"rifas-api/internal/pkg/config"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/commands"
	"rifas-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PoolHandler struct {
	pools       commands.PoolCommands
	poolQueries queries.PoolQueries
	cfg         config.Config
}

func NewPoolHandler(pools commands.PoolCommands, poolQueries queries.PoolQueries, cfg config.Config) *PoolHandler {
	return &PoolHandler{pools: pools, poolQueries: poolQueries, cfg: cfg}
}

// @Summary Create raffle
// @Tags pools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRaffleRequest true "Raffle request"
// @Success 201 {object} resdto.PoolResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pools/raffles [post]
func (h *PoolHandler) CreateRaffle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.pools.CreateRaffle(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.respondPoolError(c, err)
		return
	}
	h.respondPool(c, userID, id, http.StatusCreated)
}

// @Summary Create event
// @Tags pools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event request"
// @Success 201 {object} resdto.PoolResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pools/events [post]
func (h *PoolHandler) CreateEvent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.pools.CreateEvent(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.respondPoolError(c, err)
		return
	}
	h.respondPool(c, userID, id, http.StatusCreated)
}

// @Summary List my pools
// @Tags pools
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PoolListResponse
// @Router /pools [get]
func (h *PoolHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.poolQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.PoolListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromPoolListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get pool
// @Tags pools
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {object} resdto.PoolResponse
// @Failure 404 {object} map[string]string
// @Router /pools/{id} [get]
func (h *PoolHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}
	h.respondPool(c, userID, id, http.StatusOK)
}

// @Summary Get pool by short name
// @Tags pools
// @Produce json
// @Security BearerAuth
// @Param shortName path string true "Pool short name"
// @Success 200 {object} resdto.PoolResponse
// @Failure 404 {object} map[string]string
// @Router /pools/short/{shortName} [get]
func (h *PoolHandler) GetByShortName(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.poolQueries.GetByShortName(c.Request.Context(), userID, c.Param("shortName"))
	if err != nil {
		h.respondPoolError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPoolView(view, h.cfg.Server.PublicBaseURL))
}

// @Summary Get raffle progress
// @Tags pools
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {object} resdto.PoolProgressResponse
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/progress [get]
func (h *PoolHandler) Progress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}

	progress, err := h.poolQueries.Progress(c.Request.Context(), userID, id)
	if err != nil {
		h.respondPoolError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PoolProgressResponse{
		Quantity:  progress.Quantity,
		SoldCount: progress.SoldCount,
	})
}

// @Summary Update pool
// @Tags pools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.UpdatePoolRequest true "Update request"
// @Success 200 {object} resdto.PoolResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pools/{id} [patch]
func (h *PoolHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}

	var req reqdto.UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.pools.Update(c.Request.Context(), userID, id, req.ToInput()); err != nil {
		h.respondPoolError(c, err)
		return
	}
	h.respondPool(c, userID, id, http.StatusOK)
}

// @Summary Rotate invite code
// @Tags pools
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {object} resdto.RotateInviteCodeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/invite-code/rotate [post]
func (h *PoolHandler) RotateInviteCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}

	code, err := h.pools.RotateInviteCode(c.Request.Context(), userID, id)
	if err != nil {
		h.respondPoolError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RotateInviteCodeResponse{
		InviteCode: code,
		InviteURI:  h.cfg.Server.PublicBaseURL + "/invite/" + code,
	})
}

// @Summary Delete pool
// @Tags pools
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pools/{id} [delete]
func (h *PoolHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pool ID format"})
		return
	}

	if err := h.pools.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondPoolError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PoolHandler) respondPool(c *gin.Context, userID, poolID uuid.UUID, status int) {
	view, err := h.poolQueries.GetByID(c.Request.Context(), userID, poolID)
	if err != nil {
		h.respondPoolError(c, err)
		return
	}
	c.JSON(status, resdto.FromPoolView(view, h.cfg.Server.PublicBaseURL))
}

func (h *PoolHandler) respondPoolError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the pool owner may do this"})
	case errors.Is(err, errs.ErrShortNameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Short name already in use"})
	case errors.Is(err, errs.ErrQuantityBelowReserved):
		c.JSON(http.StatusConflict, gin.H{"error": "Quantity cannot drop below the highest reserved number"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid pool data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
