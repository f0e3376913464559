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

func TestReservationQueriesNotFoundTranslation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewReservationQueries(store)

	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := q.GetByID(context.Background(), id)
	require.ErrorIs(t, err, errs.ErrReservationNotFound)
}
