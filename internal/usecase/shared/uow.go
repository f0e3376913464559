package shared

import (
	"context"
	"time"

	"rifas-api/internal/domain/guest"
	"rifas-api/internal/domain/invite"
	"rifas-api/internal/domain/pool"
	"rifas-api/internal/domain/reservation"
	"rifas-api/internal/domain/user"
	"rifas-api/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside one database transaction. Transactions aborted
// by a concurrent conflict are retried at most once before the error
// surfaces; unbounded automatic retry would mask genuine double-booking
// attempts under load.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	DB() db.DBTX
	Pools() PoolRepository
	Reservations() ReservationRepository
	Invites() InviteRepository
	Guests() GuestRepository
	Users() UserRepository
}

type PoolRepository interface {
	Create(ctx context.Context, db db.DBTX, p *pool.Pool) (uuid.UUID, error)
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*pool.Pool, error)
	// FindByIDForUpdate locks the pool row, serializing writers that touch
	// the pool's reservation set or membership.
	FindByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*pool.Pool, error)
	FindByInviteCode(ctx context.Context, db db.DBTX, code string) (*pool.Pool, error)
	ShortNameTaken(ctx context.Context, db db.DBTX, shortName string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, db db.DBTX, p *pool.Pool) error
	// SaveSharedUsers persists the entity's membership set; the caller must
	// hold the pool row lock.
	SaveSharedUsers(ctx context.Context, db db.DBTX, p *pool.Pool) error
	SoftDelete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// ConflictingSlots returns the requested numbers already covered by a
	// live reservation of the pool, ascending.
	ConflictingSlots(ctx context.Context, db db.DBTX, poolID uuid.UUID, numbers []int) ([]int, error)
	// MaxReservedSlot returns 0 when the pool has no live reservations.
	MaxReservedSlot(ctx context.Context, db db.DBTX, poolID uuid.UUID) (int, error)
	// SoftDelete reports whether the row was live before the call.
	SoftDelete(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
}

type InviteRepository interface {
	Create(ctx context.Context, db db.DBTX, inv *invite.Invite) (uuid.UUID, error)
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*invite.Invite, error)
	HasPending(ctx context.Context, db db.DBTX, poolID, requesteeID uuid.UUID) (bool, error)
	// TransitionFromPending applies the state change only if the invite is
	// still pending, reporting whether this caller won the transition.
	TransitionFromPending(ctx context.Context, db db.DBTX, id uuid.UUID, to invite.Status, at time.Time) (bool, error)
}

type GuestRepository interface {
	CreateGuest(ctx context.Context, db db.DBTX, g *guest.Guest) (uuid.UUID, error)
	FindGuestByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*guest.Guest, error)
	// FindLiveGuests resolves ids to live guests of the pool; missing or
	// deleted ids are simply absent from the result.
	FindLiveGuests(ctx context.Context, db db.DBTX, poolID uuid.UUID, ids []uuid.UUID) ([]*guest.Guest, error)
	CreateGroup(ctx context.Context, db db.DBTX, g *guest.Group) (uuid.UUID, error)
	FindGroupByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*guest.Group, error)
	UpdateGroup(ctx context.Context, db db.DBTX, g *guest.Group) error
	FindGuestByToken(ctx context.Context, db db.DBTX, token string) (*guest.Guest, error)
	FindGroupByToken(ctx context.Context, db db.DBTX, token string) (*guest.Group, error)
	SetPresenceConfirmed(ctx context.Context, db db.DBTX, guestID uuid.UUID, confirmed bool) (bool, error)
	SetPresentInEvent(ctx context.Context, db db.DBTX, guestID uuid.UUID, present bool) (bool, error)
	SoftDeleteGuest(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
	SoftDeleteGroup(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, db db.DBTX, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID) error
}
