//go:build e2e

package checkin_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/tests/common/httptest"
	"rifas-api/tests/e2e"
	"rifas-api/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type checkinSuite struct {
	e2e.SharedSuite
}

func TestCheckinSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkinSuite))
}

func (s *checkinSuite) newEvent() (string, resdto.PoolResponse) {
	token := helper.RegisterAndLogin(s.T(), s.Router, "host@example.com", "Host")

	start := time.Now().Add(24 * time.Hour)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pools/events",
		map[string]any{
			"name":             "Birthday Party",
			"shortName":        "birthday-party",
			"visibility":       "private",
			"budgetValueCents": 100000,
			"startAt":          start.Format(time.RFC3339),
			"endAt":            start.Add(4 * time.Hour).Format(time.RFC3339),
		}, token)

	var pool resdto.PoolResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &pool)
	return token, pool
}

func (s *checkinSuite) addGuest(token string, poolID uuid.UUID, name string) resdto.GuestResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/pools/"+poolID.String()+"/guests", map[string]any{"name": name}, token)

	var guest resdto.GuestResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &guest)
	s.NotEmpty(guest.QRImageURL)
	return guest
}

// credential tokens never leave the API, so tests read them straight from the DB
func (s *checkinSuite) guestToken(guestID uuid.UUID) string {
	var token string
	err := s.DB.QueryRow(context.Background(),
		"SELECT checkin_token FROM guests WHERE id = $1", guestID).Scan(&token)
	s.Require().NoError(err)
	return token
}

func (s *checkinSuite) groupToken(groupID uuid.UUID) string {
	var token string
	err := s.DB.QueryRow(context.Background(),
		"SELECT checkin_token FROM guest_groups WHERE id = $1", groupID).Scan(&token)
	s.Require().NoError(err)
	return token
}

func (s *checkinSuite) TestGuestCheckin() {
	s.Run("guest confirms, host marks arrival", func() {
		token, pool := s.newEvent()
		guest := s.addGuest(token, pool.ID, "Maria Silva")
		credential := s.guestToken(guest.ID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/checkin/"+credential, nil, "")
		var holder resdto.TokenHolderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &holder)
		s.Require().NotNil(holder.Guest)
		s.Equal("Maria Silva", holder.Guest.Name)
		s.False(holder.Guest.IsPresenceConfirmed)

		confirmRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/checkin/"+credential+"/confirm", map[string]any{"confirmed": true}, "")
		s.Equal(http.StatusNoContent, confirmRec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/checkin/"+credential, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &holder)
		s.True(holder.Guest.IsPresenceConfirmed)

		presentRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/checkin/"+credential+"/present", map[string]any{"present": true}, token)
		s.Equal(http.StatusNoContent, presentRec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/checkin/"+credential, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &holder)
		s.True(holder.Guest.IsPresentInEvent)
	})

	s.Run("marking arrival requires a pool member", func() {
		token, pool := s.newEvent()
		guest := s.addGuest(token, pool.ID, "Maria Silva")
		credential := s.guestToken(guest.ID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/checkin/"+credential+"/present", map[string]any{"present": true}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		stranger := helper.RegisterAndLogin(s.T(), s.Router, "stranger@example.com", "Stranger")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/checkin/"+credential+"/present", map[string]any{"present": true}, stranger)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("a revoked credential stops resolving", func() {
		token, pool := s.newEvent()
		guest := s.addGuest(token, pool.ID, "Maria Silva")
		credential := s.guestToken(guest.ID)

		revokeRec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/guests/"+guest.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, revokeRec.Code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/checkin/"+credential, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Credential not found")
	})
}

func (s *checkinSuite) TestGroupCheckin() {
	s.Run("group token narrows to a single member", func() {
		token, pool := s.newEvent()
		maria := s.addGuest(token, pool.ID, "Maria Silva")
		joao := s.addGuest(token, pool.ID, "Joao Silva")

		groupRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/pools/"+pool.ID.String()+"/groups",
			map[string]any{
				"name":     "Silva Family",
				"isFamily": true,
				"guestIds": []string{maria.ID.String(), joao.ID.String()},
			}, token)
		var group resdto.GroupResponse
		httptest.AssertSuccessResponse(s.T(), groupRec, http.StatusCreated, &group)
		s.Len(group.Guests, 2)

		credential := s.groupToken(group.ID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/checkin/"+credential, nil, "")
		var holder resdto.TokenHolderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &holder)
		s.Require().NotNil(holder.Group)
		s.Len(holder.Group.Guests, 2)

		confirmRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/checkin/"+credential+"/confirm",
			map[string]any{"confirmed": true, "guestId": maria.ID.String()}, "")
		s.Equal(http.StatusNoContent, confirmRec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/checkin/"+credential, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &holder)
		for _, g := range holder.Group.Guests {
			if g.ID == maria.ID {
				s.True(g.IsPresenceConfirmed)
			} else {
				s.False(g.IsPresenceConfirmed)
			}
		}
	})

	s.Run("a member outside the group is rejected", func() {
		token, pool := s.newEvent()
		maria := s.addGuest(token, pool.ID, "Maria Silva")
		joao := s.addGuest(token, pool.ID, "Joao Silva")
		ana := s.addGuest(token, pool.ID, "Ana Costa")

		groupRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/pools/"+pool.ID.String()+"/groups",
			map[string]any{
				"name":     "Silva Family",
				"guestIds": []string{maria.ID.String(), joao.ID.String()},
			}, token)
		var group resdto.GroupResponse
		httptest.AssertSuccessResponse(s.T(), groupRec, http.StatusCreated, &group)

		credential := s.groupToken(group.ID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/checkin/"+credential+"/confirm",
			map[string]any{"confirmed": true, "guestId": ana.ID.String()}, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
