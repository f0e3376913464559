//go:build e2e

package invite_test

import (
	"net/http"
	"testing"

	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/tests/common/httptest"
	"rifas-api/tests/e2e"
	"rifas-api/tests/e2e/common/helper"

	"github.com/stretchr/testify/suite"
)

type inviteSuite struct {
	e2e.SharedSuite
}

func TestInviteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(inviteSuite))
}

// newSharedRaffle sets up an owner with a raffle plus a second registered user.
func (s *inviteSuite) newSharedRaffle() (ownerToken, userToken string, pool resdto.PoolResponse) {
	ownerToken = helper.RegisterAndLogin(s.T(), s.Router, "owner@example.com", "Owner")
	userToken = helper.RegisterAndLogin(s.T(), s.Router, "friend@example.com", "Friend")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pools/raffles",
		map[string]any{
			"kind":             "raffle_number",
			"name":             "Summer Raffle",
			"shortName":        "summer-raffle",
			"visibility":       "private",
			"quantity":         50,
			"ticketValueCents": 500,
		}, ownerToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &pool)
	return ownerToken, userToken, pool
}

func (s *inviteSuite) requestInvite(token, inviteCode string) *struct {
	ID string `json:"id"`
} {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/invites",
		map[string]any{"inviteCode": inviteCode}, token)
	resp := &struct {
		ID string `json:"id"`
	}{}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, resp)
	return resp
}

func (s *inviteSuite) TestSharedAccessFlow() {
	s.Run("request and accept grant shared access", func() {
		ownerToken, userToken, pool := s.newSharedRaffle()
		poolURL := "/api/pools/" + pool.ID.String()

		// Before acceptance the pool is invisible to the requestee.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, poolURL, nil, userToken)
		s.Equal(http.StatusNotFound, rec.Code)

		invite := s.requestInvite(userToken, pool.InviteCode)

		listRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, poolURL+"/invites", nil, ownerToken)
		var pending []resdto.InviteResponse
		httptest.AssertSuccessResponse(s.T(), listRec, http.StatusOK, &pending)
		s.Require().Len(pending, 1)
		s.Equal("friend@example.com", pending[0].RequesteeEmail)
		s.Equal("pending", pending[0].Status)

		acceptRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/invites/"+invite.ID+"/accept", nil, ownerToken)
		s.Equal(http.StatusNoContent, acceptRec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, poolURL, nil, userToken)
		var shared resdto.PoolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &shared)
		s.Equal(pool.ID, shared.ID)
	})

	s.Run("a second pending request is rejected", func() {
		_, userToken, pool := s.newSharedRaffle()

		s.requestInvite(userToken, pool.InviteCode)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/invites",
			map[string]any{"inviteCode": pool.InviteCode}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already pending")
	})

	s.Run("members cannot request again", func() {
		ownerToken, userToken, pool := s.newSharedRaffle()
		invite := s.requestInvite(userToken, pool.InviteCode)

		acceptRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/invites/"+invite.ID+"/accept", nil, ownerToken)
		s.Require().Equal(http.StatusNoContent, acceptRec.Code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/invites",
			map[string]any{"inviteCode": pool.InviteCode}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already a member")
	})

	s.Run("an unknown invite code looks like a missing pool", func() {
		_, userToken, _ := s.newSharedRaffle()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/invites",
			map[string]any{"inviteCode": "nosuchcode42"}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pool not found")
	})
}

func (s *inviteSuite) TestInviteTransitions() {
	s.Run("only the owner may accept", func() {
		_, userToken, pool := s.newSharedRaffle()
		invite := s.requestInvite(userToken, pool.InviteCode)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/invites/"+invite.ID+"/accept", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the pool owner")
	})

	s.Run("the requestee may withdraw, after which accept loses", func() {
		ownerToken, userToken, pool := s.newSharedRaffle()
		invite := s.requestInvite(userToken, pool.InviteCode)

		cancelRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/invites/"+invite.ID+"/cancel", nil, userToken)
		s.Equal(http.StatusNoContent, cancelRec.Code)

		acceptRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/invites/"+invite.ID+"/accept", nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), acceptRec, http.StatusConflict, "no longer pending")
	})

	s.Run("rotating the invite code invalidates the old link", func() {
		ownerToken, userToken, pool := s.newSharedRaffle()

		rotateRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/pools/"+pool.ID.String()+"/invite-code/rotate", nil, ownerToken)
		var rotated resdto.RotateInviteCodeResponse
		httptest.AssertSuccessResponse(s.T(), rotateRec, http.StatusOK, &rotated)
		s.NotEqual(pool.InviteCode, rotated.InviteCode)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/invites",
			map[string]any{"inviteCode": pool.InviteCode}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pool not found")

		s.requestInvite(userToken, rotated.InviteCode)
	})
}
