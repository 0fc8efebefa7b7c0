package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/greenkartlabs/greenkart-backend/api/middleware"
	"github.com/greenkartlabs/greenkart-backend/api/responses"
	"github.com/greenkartlabs/greenkart-backend/api/validators"
	bookingsvc "github.com/greenkartlabs/greenkart-backend/internal/bookings"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
)

// CreateBooking books a gardener visit for the current session.
func CreateBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload createBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking := svc.Create(r.Context(), bookingsvc.CreateInput{
			ServiceType:  payload.ServiceType,
			Date:         payload.Date,
			TimeSlot:     payload.TimeSlot,
			GardenSize:   payload.GardenSize,
			Notes:        payload.Notes,
			ContactName:  payload.ContactName,
			ContactPhone: payload.ContactPhone,
			ContactEmail: payload.ContactEmail,
			SessionID:    middleware.SessionIDFromContext(r.Context()),
		})

		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

// ListBookings returns the current session's bookings.
func ListBookings(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		responses.WriteSuccess(w, svc.ForSession(r.Context(), sessionID))
	}
}

// ReviewBooking attaches a rating and review text to a completed booking.
func ReviewBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid booking id"))
			return
		}

		var payload reviewBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.AttachReview(r.Context(), id, payload.Rating, payload.ReviewText)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

type createBookingRequest struct {
	ServiceType  string `json:"serviceType" validate:"required"`
	Date         string `json:"date" validate:"required"`
	TimeSlot     string `json:"timeSlot" validate:"required"`
	GardenSize   string `json:"gardenSize" validate:"required"`
	Notes        string `json:"notes"`
	ContactName  string `json:"contactName" validate:"required"`
	ContactPhone string `json:"contactPhone" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
}

type reviewBookingRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText"`
}
