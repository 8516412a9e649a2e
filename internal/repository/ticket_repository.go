package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Enrollment mirrors the 'enrollments' table owned by the enrollment
// subsystem.  The booking service treats it as a read-only existence check:
// a user without an enrollment cannot book a room.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	Name      string    // enrollments.name
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}

// Ticket mirrors the 'tickets' table joined with its ticket type.  Status
// and the type flags decide whether the holder is eligible to book a room:
// the ticket must be paid, for in-person attendance, and include a hotel
// stay.  The ticket/payment subsystems own these rows; this service only
// reads them.
type Ticket struct {
	ID            uint64    // tickets.id
	EnrollmentID  uint64    // tickets.enrollment_id
	TicketTypeID  uint64    // tickets.ticket_type_id
	Status        string    // tickets.status (RESERVED or PAID)
	IsRemote      bool      // ticket_types.is_remote
	IncludesHotel bool      // ticket_types.includes_hotel
	CreatedAt     time.Time // tickets.created_at
	UpdatedAt     time.Time // tickets.updated_at
}

// TicketStatusPaid is the status a ticket reaches once its payment is
// confirmed.  Only paid tickets may book.
const TicketStatusPaid = "PAID"

// ErrEnrollmentNotFound indicates the user has no enrollment record.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// ErrTicketNotFound indicates the enrollment has no ticket.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepo provides read-only access to the enrollment and ticket data
// consumed by the booking rules.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// FindEnrollmentByUser returns the user's enrollment or
// ErrEnrollmentNotFound when none exists.
func (r *TicketRepo) FindEnrollmentByUser(ctx context.Context, userID uint64) (*Enrollment, error) {
	const q = `SELECT id, user_id, name, created_at, updated_at FROM enrollments WHERE user_id = ? LIMIT 1`
	var e Enrollment
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&e.ID, &e.UserID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindTicketByEnrollment returns the ticket attached to an enrollment,
// joined with its type so callers can check the attendance flags.  Returns
// ErrTicketNotFound when the enrollment has no ticket.
func (r *TicketRepo) FindTicketByEnrollment(ctx context.Context, enrollmentID uint64) (*Ticket, error) {
	const q = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status,
	                  tt.is_remote, tt.includes_hotel, t.created_at, t.updated_at
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.enrollment_id = ? LIMIT 1`
	var t Ticket
	err := r.db.QueryRowContext(ctx, q, enrollmentID).Scan(
		&t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status,
		&t.IsRemote, &t.IncludesHotel, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}
