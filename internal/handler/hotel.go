// This file defines handlers for the public browsing API.  These routes let
// users inspect hotels and their rooms before booking; no authentication is
// required.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// HotelHandler aggregates the repositories needed for hotel browsing.
type HotelHandler struct {
	HotelRepo *repository.HotelRepo // provides access to hotel data
	RoomRepo  *repository.RoomRepo  // provides access to room data
}

// NewHotelHandler constructs a HotelHandler and panics if any dependency is nil.
func NewHotelHandler(hotelRepo *repository.HotelRepo, roomRepo *repository.RoomRepo) *HotelHandler {
	if hotelRepo == nil || roomRepo == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{HotelRepo: hotelRepo, RoomRepo: roomRepo}
}

// hotelResponse is a hotel as exposed by the browse endpoints.
type hotelResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// hotelWithRoomsResponse is a hotel together with its rooms.
type hotelWithRoomsResponse struct {
	hotelResponse
	Rooms []repository.RoomDetail `json:"Rooms"`
}

func toHotelResponse(h repository.Hotel) hotelResponse {
	return hotelResponse{ID: h.ID, Name: h.Name, Image: h.Image, CreatedAt: h.CreatedAt, UpdatedAt: h.UpdatedAt}
}

// GetHotels handles GET /hotels.  It returns every hotel known to the
// application.
func (h *HotelHandler) GetHotels(c echo.Context) error {
	hotels, err := h.HotelRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]hotelResponse, 0, len(hotels))
	for _, hot := range hotels {
		out = append(out, toHotelResponse(hot))
	}
	return c.JSON(http.StatusOK, out)
}

// GetHotelWithRooms handles GET /hotels/:hotelId.  It validates the hotel
// exists and returns it with all of its rooms.
func (h *HotelHandler) GetHotelWithRooms(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	hotel, err := h.HotelRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrHotelNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.RoomRepo.ListByHotel(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := hotelWithRoomsResponse{hotelResponse: toHotelResponse(*hotel), Rooms: make([]repository.RoomDetail, 0, len(rooms))}
	for _, rm := range rooms {
		out.Rooms = append(out.Rooms, repository.RoomDetail{
			ID:        rm.ID,
			Name:      rm.Name,
			Capacity:  rm.Capacity,
			HotelID:   rm.HotelID,
			CreatedAt: rm.CreatedAt,
			UpdatedAt: rm.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
