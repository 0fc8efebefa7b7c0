// Package bookings owns gardener booking creation, listing and reviews.
package bookings

import (
	"context"
	"strings"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

// Service exposes the booking surface.
type Service interface {
	Create(ctx context.Context, input CreateInput) store.GardenerBooking
	ForSession(ctx context.Context, sessionID string) []store.GardenerBooking
	AttachReview(ctx context.Context, id, rating int, reviewText string) (store.GardenerBooking, error)
}

// CreateInput captures a new booking request. Fields are validated at the
// HTTP boundary; the service attaches the session and delegates.
type CreateInput struct {
	ServiceType  string
	Date         string
	TimeSlot     string
	GardenSize   string
	Notes        string
	ContactName  string
	ContactPhone string
	ContactEmail string
	SessionID    string
}

type service struct {
	store *store.Store
}

// NewService constructs the booking service.
func NewService(st *store.Store) (*service, error) {
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "store required")
	}
	return &service{store: st}, nil
}

func (s *service) Create(_ context.Context, input CreateInput) store.GardenerBooking {
	return s.store.CreateBooking(store.BookingInput{
		ServiceType:  input.ServiceType,
		Date:         input.Date,
		TimeSlot:     input.TimeSlot,
		GardenSize:   input.GardenSize,
		Notes:        input.Notes,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		SessionID:    input.SessionID,
	})
}

func (s *service) ForSession(_ context.Context, sessionID string) []store.GardenerBooking {
	return s.store.BookingsBySession(sessionID)
}

// AttachReview merges a rating and review text into the booking. The rating
// range is enforced here; the store performs an unconditional merge.
func (s *service) AttachReview(_ context.Context, id, rating int, reviewText string) (store.GardenerBooking, error) {
	if rating < 1 || rating > 5 {
		return store.GardenerBooking{}, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	booking, ok := s.store.UpdateBookingReview(id, rating, strings.TrimSpace(reviewText))
	if !ok {
		return store.GardenerBooking{}, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	return booking, nil
}
