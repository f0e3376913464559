//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	resdto "rifas-api/internal/handler/dto/response"
	"rifas-api/tests/common/httptest"
	"rifas-api/tests/e2e"
	"rifas-api/tests/e2e/common/helper"

	"github.com/stretchr/testify/suite"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

// newRaffle registers an organizer, creates a numbered raffle and returns
// the organizer's token together with the pool.
func (s *reservationSuite) newRaffle(quantity int) (string, resdto.PoolResponse) {
	token := helper.RegisterAndLogin(s.T(), s.Router, "organizer@example.com", "Organizer")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pools/raffles",
		map[string]any{
			"kind":             "raffle_number",
			"name":             "Summer Raffle",
			"shortName":        "summer-raffle",
			"visibility":       "private",
			"quantity":         quantity,
			"ticketValueCents": 500,
		}, token)

	var pool resdto.PoolResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &pool)
	return token, pool
}

func (s *reservationSuite) reserve(token string, poolID string, slots []int, claimant string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/pools/"+poolID+"/reservations",
		map[string]any{"slotNumbers": slots, "claimantName": claimant}, token)
}

func (s *reservationSuite) TestReserveLifecycle() {
	s.Run("reserve, list, release, reserve again", func() {
		token, pool := s.newRaffle(10)
		poolID := pool.ID.String()

		rec := s.reserve(token, poolID, []int{7, 3, 7}, "Maria Silva")
		var created resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal([]int{3, 7}, created.SlotNumbers, "slots are stored sorted and deduplicated")

		listRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/pools/"+poolID+"/reservations", nil, token)
		var listed []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), listRec, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal(created.ID, listed[0].ID)

		releaseRec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/reservations/"+created.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, releaseRec.Code)

		// Releasing twice is a no-op, not an error.
		againRec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/reservations/"+created.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, againRec.Code)

		// Released slots go back into the pool.
		rec = s.reserve(token, poolID, []int{3, 7}, "Ana Costa")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	})

	s.Run("taken slots are reported in the conflict", func() {
		token, pool := s.newRaffle(10)
		poolID := pool.ID.String()

		rec := s.reserve(token, poolID, []int{5}, "Maria Silva")
		s.Require().Equal(http.StatusCreated, rec.Code)

		rec = s.reserve(token, poolID, []int{4, 5, 6}, "Ana Costa")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"conflictingSlots":[5]`)
	})

	s.Run("out-of-range slots are rejected", func() {
		token, pool := s.newRaffle(10)
		poolID := pool.ID.String()

		rec := s.reserve(token, poolID, []int{11}, "Maria Silva")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		rec = s.reserve(token, poolID, []int{0}, "Maria Silva")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("quantity cannot shrink below a reserved number", func() {
		token, pool := s.newRaffle(10)
		poolID := pool.ID.String()

		rec := s.reserve(token, poolID, []int{9}, "Maria Silva")
		s.Require().Equal(http.StatusCreated, rec.Code)

		patchRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/pools/"+poolID, map[string]any{"quantity": 5}, token)
		httptest.AssertErrorResponse(s.T(), patchRec, http.StatusConflict,
			"Quantity cannot drop below the highest reserved number")
	})

	s.Run("non-members cannot reserve", func() {
		_, pool := s.newRaffle(10)
		stranger := helper.RegisterAndLogin(s.T(), s.Router, "stranger@example.com", "Stranger")

		rec := s.reserve(stranger, pool.ID.String(), []int{1}, "Stranger")
		s.Equal(http.StatusNotFound, rec.Code, "non-members learn nothing about the pool")
	})
}

func (s *reservationSuite) TestConcurrentReserve() {
	s.Run("one winner when everyone wants the same slot", func() {
		token, pool := s.newRaffle(100)
		poolID := pool.ID.String()

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := s.reserve(token, poolID, []int{7}, fmt.Sprintf("Claimant %d", i))
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created, "exactly one reservation wins slot 7")
		s.Equal(workers-1, conflicted)
	})

	s.Run("disjoint concurrent reservations all succeed", func() {
		token, pool := s.newRaffle(100)
		poolID := pool.ID.String()

		const workers = 10
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				slots := []int{i*10 + 1, i*10 + 2}
				rec := s.reserve(token, poolID, slots, fmt.Sprintf("Claimant %d", i))
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		for i, code := range codes {
			s.Equal(http.StatusCreated, code, "worker %d", i)
		}

		progressRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/pools/"+poolID+"/progress", nil, token)
		var progress resdto.PoolProgressResponse
		httptest.AssertSuccessResponse(s.T(), progressRec, http.StatusOK, &progress)
		s.Equal(100, progress.Quantity)
		s.Equal(workers*2, progress.SoldCount)
	})
}
