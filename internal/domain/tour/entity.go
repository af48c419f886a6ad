package tour

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrInvalidSeatPrice = errors.New("seat price must be positive")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTourNotOpen      = errors.New("tour is not open for sale")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

// Tour is a fixed-capacity shared experience sold as individual tickets.
type Tour struct {
	id             uuid.UUID
	operatorID     uuid.UUID
	title          string
	categoryKey    string
	departsAt      time.Time
	capacity       int32
	seatPriceCents int64
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTour(operatorID uuid.UUID, title, categoryKey string, departsAt time.Time, capacity int32, seatPriceCents int64) (*Tour, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if seatPriceCents <= 0 {
		return nil, ErrInvalidSeatPrice
	}

	return &Tour{
		id:             uuid.New(),
		operatorID:     operatorID,
		title:          title,
		categoryKey:    categoryKey,
		departsAt:      departsAt,
		capacity:       capacity,
		seatPriceCents: seatPriceCents,
		status:         StatusDraft,
	}, nil
}

func ReconstructTour(
	id, operatorID uuid.UUID,
	title, categoryKey string,
	departsAt time.Time,
	capacity int32,
	seatPriceCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Tour {
	return &Tour{
		id:             id,
		operatorID:     operatorID,
		title:          title,
		categoryKey:    categoryKey,
		departsAt:      departsAt,
		capacity:       capacity,
		seatPriceCents: seatPriceCents,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (t *Tour) IsOpen() bool {
	return t.status == StatusOpen
}

func (t *Tour) ID() uuid.UUID         { return t.id }
func (t *Tour) OperatorID() uuid.UUID { return t.operatorID }
func (t *Tour) Title() string         { return t.title }
func (t *Tour) CategoryKey() string   { return t.categoryKey }
func (t *Tour) DepartsAt() time.Time  { return t.departsAt }
func (t *Tour) Capacity() int32       { return t.capacity }
func (t *Tour) SeatPriceCents() int64 { return t.seatPriceCents }
func (t *Tour) Status() Status        { return t.status }
func (t *Tour) CreatedAt() time.Time  { return t.createdAt }
func (t *Tour) UpdatedAt() time.Time  { return t.updatedAt }
