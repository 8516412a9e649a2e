package handler

import (
	"errors"   // errors.Is comparisons against sentinel values
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// BookingHandler exposes the booking endpoints.  All methods assume that
// JWT authentication has already been performed by middleware and read the
// caller's identity from the request context.  Domain failures raised by
// the service are mapped onto HTTP status codes here: missing records are
// 404, an ineligible ticket or a full room is 403.
type BookingHandler struct {
	Service *service.BookingService // business rules for bookings
}

// NewBookingHandler constructs a BookingHandler.  The service must be
// non-nil.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc}
}

// bookingRequest is the JSON body of POST /booking and PUT /booking/:bookingId.
type bookingRequest struct {
	RoomID uint64 `json:"roomId"`
}

// GetBooking handles GET /booking.  It returns the caller's booking with
// its room embedded, or 404 when the caller has none.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	det, err := h.Service.GetBooking(c.Request().Context(), userID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, det)
}

// CreateBooking handles POST /booking.  The body must carry the desired
// room ID.  The caller needs an enrollment and a paid, in-person,
// hotel-inclusive ticket; the room must exist and have a free slot.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body bookingRequest
	if err := c.Bind(&body); err != nil || body.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	det, err := h.Service.CreateBooking(c.Request().Context(), userID, body.RoomID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, det)
}

// ChangeBooking handles PUT /booking/:bookingId.  The booking mutated is
// always the caller's own; the path parameter is validated as numeric and,
// when it does not refer to the caller's booking, the request is answered
// with 404 rather than touching someone else's record.
func (h *BookingHandler) ChangeBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body bookingRequest
	if err := c.Bind(&body); err != nil || body.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	det, err := h.Service.UpdateBooking(c.Request().Context(), userID, bookingID, body.RoomID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, det)
}

// bookingError maps service and repository failures onto HTTP responses.
// NotFound sentinels become 404, ErrCannotBook becomes 403, anything else
// is a 500.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case errors.Is(err, repository.ErrEnrollmentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
	case errors.Is(err, repository.ErrTicketNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
	case errors.Is(err, service.ErrCannotBook):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot book room"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
