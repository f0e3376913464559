package invite

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending    = errors.New("invite is not pending")
	ErrInvalidStatus = errors.New("invalid invite status")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusCanceled Status = "canceled"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusAccepted, StatusCanceled:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string   { return string(s) }
func (s Status) IsTerminal() bool { return s != StatusPending }

// Invite is a request for shared access to a pool. The state machine is
// Pending -> Accepted or Pending -> Canceled; both are terminal and the
// transition is guarded transactionally against the racing counterpart.
type Invite struct {
	id          uuid.UUID
	poolID      uuid.UUID
	requesteeID uuid.UUID
	status      Status
	createdAt   time.Time
	acceptedAt  *time.Time
	canceledAt  *time.Time
}

func NewInvite(poolID, requesteeID uuid.UUID) *Invite {
	return &Invite{
		id:          uuid.New(),
		poolID:      poolID,
		requesteeID: requesteeID,
		status:      StatusPending,
	}
}

func Reconstruct(id, poolID, requesteeID uuid.UUID, status Status, createdAt time.Time, acceptedAt, canceledAt *time.Time) *Invite {
	return &Invite{
		id:          id,
		poolID:      poolID,
		requesteeID: requesteeID,
		status:      status,
		createdAt:   createdAt,
		acceptedAt:  acceptedAt,
		canceledAt:  canceledAt,
	}
}

// Accept transitions Pending -> Accepted. Terminal states never transition
// again; re-accepting an accepted invite is an error, not a silent no-op,
// so callers can tell the loser of an accept/cancel race apart.
func (i *Invite) Accept(now time.Time) error {
	if i.status != StatusPending {
		return ErrNotPending
	}
	i.status = StatusAccepted
	i.acceptedAt = &now
	return nil
}

// Cancel transitions Pending -> Canceled. Canceling an accepted invite is
// rejected; membership revocation is a separate owner action.
func (i *Invite) Cancel(now time.Time) error {
	if i.status != StatusPending {
		return ErrNotPending
	}
	i.status = StatusCanceled
	i.canceledAt = &now
	return nil
}

func (i *Invite) ID() uuid.UUID          { return i.id }
func (i *Invite) PoolID() uuid.UUID      { return i.poolID }
func (i *Invite) RequesteeID() uuid.UUID { return i.requesteeID }
func (i *Invite) Status() Status         { return i.status }
func (i *Invite) CreatedAt() time.Time   { return i.createdAt }
func (i *Invite) AcceptedAt() *time.Time { return i.acceptedAt }
func (i *Invite) CanceledAt() *time.Time { return i.canceledAt }
