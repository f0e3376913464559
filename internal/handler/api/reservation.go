package api

import (
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

type ReservationHandler struct {
	reservations       commands.ReservationCommands
	reservationQueries queries.ReservationQueries
	poolQueries        queries.PoolQueries
}

func NewReservationHandler(reservations commands.ReservationCommands, reservationQueries queries.ReservationQueries, poolQueries queries.PoolQueries) *ReservationHandler {
	return &ReservationHandler{
		reservations:       reservations,
		reservationQueries: reservationQueries,
		poolQueries:        poolQueries,
	}
}

// @Summary Reserve slot numbers
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pools/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
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

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.reservations.Reserve(c.Request.Context(), userID, req.ToInput(poolID))
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List pool reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/reservations [get]
func (h *ReservationHandler) ListByPool(c *gin.Context) {
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

	// Membership gate; a non-member cannot enumerate the pool's buyers.
	if _, err := h.poolQueries.GetByID(c.Request.Context(), userID, poolID); err != nil {
		h.respondReservationError(c, err)
		return
	}

	views, err := h.reservationQueries.ListByPool(c.Request.Context(), poolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReservationView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Release reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Release(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID format"})
		return
	}

	if err := h.reservations.Release(c.Request.Context(), userID, id); err != nil {
		h.respondReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSlotAlreadyReserved):
		var conflict *commands.SlotConflictError
		detail := gin.H{"error": "Slots already reserved"}
		if errors.As(err, &conflict) {
			detail["conflictingSlots"] = conflict.Conflicting
		}
		c.JSON(http.StatusConflict, detail)
	case errors.Is(err, errs.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, errs.ErrNotMember):
		// Non-members learn nothing about the pool, matching the read side.
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid reservation data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
