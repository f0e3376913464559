//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/queries"
	queriesmock "rifas-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The read stores surface misses as repository errors; the queries layer
// owns the translation into the sentinels handlers switch on.
func TestGuestQueriesNotFoundTranslation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockGuestReadStore(ctrl)
	q := queries.NewGuestQueries(store)

	storeMiss := func(msg string) error {
		return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
	}

	t.Run("unknown or revoked token", func(t *testing.T) {
		store.EXPECT().FindHolderByToken(gomock.Any(), "gone-token").
			Return(nil, storeMiss("credential not found"))

		_, err := q.ResolveToken(context.Background(), "gone-token")
		require.ErrorIs(t, err, errs.ErrTokenNotFound)
	})

	t.Run("unknown guest", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindGuestByID(gomock.Any(), id).
			Return(nil, storeMiss("guest not found"))

		_, err := q.GetGuest(context.Background(), id)
		require.ErrorIs(t, err, errs.ErrGuestNotFound)
	})

	t.Run("unknown group", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindGroupByID(gomock.Any(), id).
			Return(nil, storeMiss("guest group not found"))

		_, err := q.GetGroup(context.Background(), id)
		require.ErrorIs(t, err, errs.ErrGroupNotFound)
	})

	t.Run("other store failures pass through untyped", func(t *testing.T) {
		store.EXPECT().FindHolderByToken(gomock.Any(), "any-token").
			Return(nil, infra.WrapRepoErr("connection reset", pgx.ErrTxClosed))

		_, err := q.ResolveToken(context.Background(), "any-token")
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrTokenNotFound)
	})
}
