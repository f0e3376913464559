//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rifas-api/internal/handler/api"
	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/queries"
	"rifas-api/tests/common/httptest"
	commandsmock "rifas-api/tests/mock/commands"
	queriesmock "rifas-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckinHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestCommands
	mockQueries  *queriesmock.MockGuestQueries
	handler      *api.CheckinHandler
	userID       uuid.UUID
}

func (s *CheckinHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.handler = api.NewCheckinHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/checkin/:token", s.handler.Resolve)
	s.router.POST("/checkin/:token/confirm", s.handler.Confirm)
	s.router.POST("/checkin/:token/present", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.CheckIn(c)
	})
}

func (s *CheckinHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckinHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckinHandlerTestSuite))
}

func (s *CheckinHandlerTestSuite) TestResolve() {
	token := "sample-token"

	s.Run("success: guest credential resolves to the guest", func() {
		guestID := uuid.New()
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), token).
			Return(&queries.TokenHolderView{
				Guest: &queries.GuestView{ID: guestID, Name: "Maria"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkin/"+token, nil, "")

		var response resdto.TokenHolderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Guest)
		s.Nil(response.Group)
		s.Equal(guestID, response.Guest.ID)
	})

	s.Run("success: group credential resolves to the group", func() {
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), token).
			Return(&queries.TokenHolderView{
				Group: &queries.GroupView{ID: uuid.New(), Name: "Silva Family"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkin/"+token, nil, "")

		var response resdto.TokenHolderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Guest)
		s.NotNil(response.Group)
	})

	s.Run("error: unknown or revoked token is 404", func() {
		s.mockQueries.EXPECT().ResolveToken(gomock.Any(), token).
			Return(nil, errs.ErrTokenNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkin/"+token, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Credential not found")
	})
}

func (s *CheckinHandlerTestSuite) TestConfirm() {
	token := "sample-token"
	url := "/checkin/" + token + "/confirm"

	s.Run("success: no authentication required", func() {
		s.mockCommands.EXPECT().ConfirmPresence(gomock.Any(), token, gomock.Nil(), true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirmed": true}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: group token narrowed to one member", func() {
		memberID := uuid.New()
		s.mockCommands.EXPECT().ConfirmPresence(gomock.Any(), token, gomock.Any(), false).
			DoAndReturn(func(_ any, _ string, guestID *uuid.UUID, _ bool) error {
				s.Require().NotNil(guestID)
				s.Equal(memberID, *guestID)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirmed": false, "guestId": memberID.String()}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: member outside the group is 409", func() {
		s.mockCommands.EXPECT().ConfirmPresence(gomock.Any(), token, gomock.Any(), true).
			Return(errs.ErrGuestNotInGroup).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirmed": true, "guestId": uuid.New().String()}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 when confirmed is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CheckinHandlerTestSuite) TestCheckIn() {
	token := "sample-token"
	url := "/checkin/" + token + "/present"

	s.Run("success: organizer marks arrival", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.userID, token, gomock.Nil(), true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"present": true}, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: non-member scanner is 403", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.userID, token, gomock.Nil(), true).
			Return(errs.ErrNotMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"present": true}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"present": true}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
