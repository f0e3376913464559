//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/queries"
	queriesmock "rifas-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func TestPoolQueriesMembershipGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockPoolReadStore(ctrl)
	q := queries.NewPoolQueries(store)

	owner := uuid.New()
	sharedUser := uuid.New()
	stranger := uuid.New()
	poolID := uuid.New()

	view := &queries.PoolView{
		ID:            poolID,
		OwnerID:       owner,
		Kind:          "raffle_number",
		SharedUserIDs: []uuid.UUID{sharedUser},
	}

	t.Run("owner reads the pool", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), poolID).Return(view, nil)

		got, err := q.GetByID(context.Background(), owner, poolID)
		require.NoError(t, err)
		if diff := cmp.Diff(view, got, cmpOpts...); diff != "" {
			t.Errorf("PoolView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("shared user reads the pool", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), poolID).Return(view, nil)

		_, err := q.GetByID(context.Background(), sharedUser, poolID)
		require.NoError(t, err)
	})

	t.Run("non-member sees not-found, not forbidden", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), poolID).Return(view, nil)

		_, err := q.GetByID(context.Background(), stranger, poolID)
		require.ErrorIs(t, err, errs.ErrPoolNotFound)
	})

	t.Run("short name lookup gates the same way", func(t *testing.T) {
		store.EXPECT().FindByShortName(gomock.Any(), "summer-raffle").Return(view, nil)

		_, err := q.GetByShortName(context.Background(), stranger, "summer-raffle")
		require.ErrorIs(t, err, errs.ErrPoolNotFound)
	})

	t.Run("missing pool maps the store error to the sentinel", func(t *testing.T) {
		missing := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), missing).
			Return(nil, infra.WrapRepoErr("pool not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), owner, missing)
		require.ErrorIs(t, err, errs.ErrPoolNotFound)
	})

	t.Run("missing short name maps the same way", func(t *testing.T) {
		store.EXPECT().FindByShortName(gomock.Any(), "no-such-pool").
			Return(nil, infra.WrapRepoErr("pool not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := q.GetByShortName(context.Background(), owner, "no-such-pool")
		require.ErrorIs(t, err, errs.ErrPoolNotFound)
	})
}

func TestPoolQueriesProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockPoolReadStore(ctrl)
	q := queries.NewPoolQueries(store)

	owner := uuid.New()
	poolID := uuid.New()

	t.Run("sold over total for a numbered raffle", func(t *testing.T) {
		quantity := 100
		store.EXPECT().FindByID(gomock.Any(), poolID).Return(&queries.PoolView{
			ID:       poolID,
			OwnerID:  owner,
			Kind:     "raffle_number",
			Quantity: &quantity,
		}, nil)
		store.EXPECT().CountReservedSlots(gomock.Any(), poolID).Return(37, nil)

		progress, err := q.Progress(context.Background(), owner, poolID)
		require.NoError(t, err)
		assert.Equal(t, 100, progress.Quantity)
		assert.Equal(t, 37, progress.SoldCount)
	})

	t.Run("pools without a quantity have no progress", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), poolID).Return(&queries.PoolView{
			ID:      poolID,
			OwnerID: owner,
			Kind:    "event",
		}, nil)

		_, err := q.Progress(context.Background(), owner, poolID)
		require.Error(t, err)
	})
}
