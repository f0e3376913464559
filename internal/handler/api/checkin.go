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
)

// CheckinHandler serves the public credential surface. Token possession is
// the only authorization for resolve and confirm; check-in additionally
// requires an authenticated pool member.
type CheckinHandler struct {
	guests       commands.GuestCommands
	guestQueries queries.GuestQueries
}

func NewCheckinHandler(guests commands.GuestCommands, guestQueries queries.GuestQueries) *CheckinHandler {
	return &CheckinHandler{guests: guests, guestQueries: guestQueries}
}

// @Summary Resolve credential token
// @Description Public lookup of the guest or group a credential belongs to
// @Tags checkin
// @Produce json
// @Param token path string true "Credential token"
// @Success 200 {object} resdto.TokenHolderResponse
// @Failure 404 {object} map[string]string
// @Router /checkin/{token} [get]
func (h *CheckinHandler) Resolve(c *gin.Context) {
	view, err := h.guestQueries.ResolveToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.respondCheckinError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenHolderView(view))
}

// @Summary Confirm presence
// @Description Guest-side attendance confirmation, authorized by token possession
// @Tags checkin
// @Accept json
// @Param token path string true "Credential token"
// @Param request body reqdto.ConfirmPresenceRequest true "Confirmation"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkin/{token}/confirm [post]
func (h *CheckinHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.guests.ConfirmPresence(c.Request.Context(), c.Param("token"), req.GuestID, *req.Confirmed); err != nil {
		h.respondCheckinError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check guest in
// @Description Organizer-side arrival marking against a scanned credential
// @Tags checkin
// @Accept json
// @Security BearerAuth
// @Param token path string true "Credential token"
// @Param request body reqdto.CheckInRequest true "Check-in"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkin/{token}/present [post]
func (h *CheckinHandler) CheckIn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.guests.CheckIn(c.Request.Context(), userID, c.Param("token"), req.GuestID, *req.Present); err != nil {
		h.respondCheckinError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckinHandler) respondCheckinError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Credential not found"})
	case errors.Is(err, errs.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
	case errors.Is(err, errs.ErrGuestNotInGroup):
		c.JSON(http.StatusConflict, gin.H{"error": "Guest does not belong to this credential"})
	case errors.Is(err, errs.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool not found"})
	case errors.Is(err, errs.ErrNotMember):
		// The scanner holds the credential, so existence is not a secret
		// here; only their authority is in question.
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this pool"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid check-in data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
