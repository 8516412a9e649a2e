// Package service implements the booking business rules that sit between
// the HTTP handlers and the repositories.  All rules that read and then
// write shared state run inside a single database transaction so that the
// capacity check and the booking write cannot be interleaved by a
// concurrent request.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// ErrCannotBook is returned when the caller is not allowed to take the
// requested room: the room is at capacity, the user already holds a
// booking, or the user's ticket is unpaid, remote or does not include a
// hotel stay.  Handlers translate it into an HTTP 403 response.
var ErrCannotBook = errors.New("cannot book room")

// BookingService orchestrates the booking rules over the repositories.  It
// owns the transaction boundaries; repositories only run statements.
type BookingService struct {
	db       *sql.DB                    // shared pool used to open transactions
	bookings *repository.BookingRepo    // booking reads and writes
	rooms    *repository.RoomRepo       // room lookups and row locks
	tickets  *repository.TicketRepo     // read-only enrollment/ticket gate
}

// NewBookingService constructs a BookingService.  All dependencies must be
// non-nil.
func NewBookingService(db *sql.DB, bookings *repository.BookingRepo, rooms *repository.RoomRepo, tickets *repository.TicketRepo) *BookingService {
	if db == nil || bookings == nil || rooms == nil || tickets == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{db: db, bookings: bookings, rooms: rooms, tickets: tickets}
}

// GetBooking returns the user's booking with its room embedded.  Returns
// repository.ErrBookingNotFound when the user has no booking.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
	return s.bookings.FindByUser(ctx, userID)
}

// ticketCheck verifies that the user may book at all: an enrollment must
// exist, it must carry a ticket, and the ticket must be paid, in-person and
// hotel-inclusive.  Missing records surface as the repository's not-found
// sentinels; an ineligible ticket is ErrCannotBook.
func (s *BookingService) ticketCheck(ctx context.Context, userID uint64) error {
	enr, err := s.tickets.FindEnrollmentByUser(ctx, userID)
	if err != nil {
		return err
	}
	t, err := s.tickets.FindTicketByEnrollment(ctx, enr.ID)
	if err != nil {
		return err
	}
	if t.Status != repository.TicketStatusPaid || t.IsRemote || !t.IncludesHotel {
		return ErrCannotBook
	}
	return nil
}

// roomCheckTx locks the room row and verifies it has a free slot.  The
// count excludes excludeBookingID when non-zero so that re-targeting the
// room a booking already occupies is idempotent.  The caller owns the
// transaction; the room lock is held until it commits or rolls back.
func (s *BookingService) roomCheckTx(ctx context.Context, tx *sql.Tx, roomID, excludeBookingID uint64) (*repository.Room, error) {
	room, err := s.rooms.GetByIDForUpdateTx(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}
	occupied, err := s.bookings.CountByRoomTx(ctx, tx, roomID, excludeBookingID)
	if err != nil {
		return nil, err
	}
	if occupied >= room.Capacity {
		return nil, ErrCannotBook
	}
	return room, nil
}

// CreateBooking reserves a room for the user.  It runs the ticket gate,
// then checks capacity, inserts the booking and re-reads it with its room,
// all inside one transaction.  A user holding a booking already cannot
// create a second one.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (*repository.BookingDetail, error) {
	if err := s.ticketCheck(ctx, userID); err != nil {
		return nil, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := s.roomCheckTx(ctx, tx, roomID, 0); err != nil {
		return nil, err
	}
	// One booking per user.
	if _, err := s.bookings.FindByUserTx(ctx, tx, userID); err == nil {
		return nil, ErrCannotBook
	} else if !errors.Is(err, repository.ErrBookingNotFound) {
		return nil, err
	}
	rec := &repository.BookingRecord{UserID: userID, RoomID: roomID}
	if err := s.bookings.CreateTx(ctx, tx, rec); err != nil {
		return nil, err
	}
	det, err := s.bookings.GetDetailTx(ctx, tx, rec.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return det, nil
}

// UpdateBooking moves the user's existing booking to another room.  The
// booking is always resolved from the authenticated user; when bookingID is
// non-zero it must match that booking, otherwise the request refers to a
// booking the user does not own and is treated as not found.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, bookingID, roomID uint64) (*repository.BookingDetail, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	cur, err := s.bookings.FindByUserTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if bookingID != 0 && bookingID != cur.ID {
		return nil, repository.ErrBookingNotFound
	}
	if _, err := s.roomCheckTx(ctx, tx, roomID, cur.ID); err != nil {
		return nil, err
	}
	if err := s.bookings.UpdateRoomTx(ctx, tx, cur.ID, roomID); err != nil {
		return nil, err
	}
	det, err := s.bookings.GetDetailTx(ctx, tx, cur.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return det, nil
}
