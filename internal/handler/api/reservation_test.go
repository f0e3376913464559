//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rifas-api/internal/handler/api"
	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/commands"
	"rifas-api/internal/usecase/queries"
	"rifas-api/tests/common/httptest"
	commandsmock "rifas-api/tests/mock/commands"
	queriesmock "rifas-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockPools    *queriesmock.MockPoolQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockPools = queriesmock.NewMockPoolQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.mockPools)

	// Auth middleware stand-in.
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	})
	s.router.POST("/pools/:id/reservations", s.handler.Create)
	s.router.GET("/pools/:id/reservations", s.handler.ListByPool)
	s.router.DELETE("/reservations/:id", s.handler.Release)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	poolID := uuid.New()
	url := "/pools/" + poolID.String() + "/reservations"
	reqBody := map[string]any{
		"slotNumbers":  []int{3, 7},
		"claimantName": "Maria Silva",
	}

	s.Run("success: returns 201 with the created reservation", func() {
		reservationID := uuid.New()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), s.userID, gomock.Any()).
			Return(reservationID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(&queries.ReservationView{
				ID:           reservationID,
				PoolID:       poolID,
				SlotNumbers:  []int{3, 7},
				ClaimantName: "Maria Silva",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reservationID, response.ID)
		s.Equal([]int{3, 7}, response.SlotNumbers)
	})

	s.Run("error: 409 conflict names the losing numbers", func() {
		conflict := errs.Mark(&commands.SlotConflictError{Conflicting: []int{7}}, errs.ErrSlotAlreadyReserved)
		s.mockCommands.EXPECT().Reserve(gomock.Any(), s.userID, gomock.Any()).
			Return(uuid.Nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"conflictingSlots":[7]`)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "pool not found", commandsError: errs.ErrPoolNotFound, expectedStatus: http.StatusNotFound},
			{name: "not a member sees not-found", commandsError: errs.ErrNotMember, expectedStatus: http.StatusNotFound},
			{name: "invalid slot numbers", commandsError: errs.ErrDomainValidation, expectedStatus: http.StatusUnprocessableEntity},
			{name: "internal error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), s.userID, gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"claimantName": "Maria"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on invalid pool id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pools/not-a-uuid/reservations", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pool ID")
	})
}

func (s *ReservationHandlerTestSuite) TestListByPool() {
	poolID := uuid.New()
	url := "/pools/" + poolID.String() + "/reservations"

	s.Run("success: returns the pool's reservations", func() {
		s.mockPools.EXPECT().GetByID(gomock.Any(), s.userID, poolID).
			Return(&queries.PoolView{ID: poolID}, nil).Times(1)
		s.mockQueries.EXPECT().ListByPool(gomock.Any(), poolID).
			Return([]*queries.ReservationView{
				{ID: uuid.New(), PoolID: poolID, SlotNumbers: []int{1}, ClaimantName: "Ana"},
				{ID: uuid.New(), PoolID: poolID, SlotNumbers: []int{2, 3}, ClaimantName: "Bruno"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: non-member sees 404, not the list", func() {
		s.mockPools.EXPECT().GetByID(gomock.Any(), s.userID, poolID).
			Return(nil, errs.ErrPoolNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pool not found")
	})
}

func (s *ReservationHandlerTestSuite) TestRelease() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), s.userID, reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown reservation is 404", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), s.userID, reservationID).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
