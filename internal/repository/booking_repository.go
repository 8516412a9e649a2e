package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions
	"time"         // timestamps scanned from DATETIME columns
)

// BookingRecord mirrors the schema of the bookings table.  It is used
// internally by the repository when constructing or scanning rows.  A user
// holds at most one booking at a time, so lookups by user return a single
// record.
type BookingRecord struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	RoomID    uint64    // bookings.room_id
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}

// RoomDetail is the room as embedded in booking responses.  Field names
// follow the wire contract of the surrounding application, hence the
// camelCase JSON tags.
type RoomDetail struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Capacity  uint32    `json:"capacity"`
	HotelID   uint64    `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingDetail is a booking joined with its room, shaped for API
// responses.  The embedded room is serialized under the "Room" key as the
// clients of the wider application expect.
type BookingDetail struct {
	ID        uint64     `json:"id"`
	UserID    uint64     `json:"userId"`
	RoomID    uint64     `json:"roomId"`
	Room      RoomDetail `json:"Room"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ErrBookingNotFound indicates that a booking was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo manages persistence for bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingDetailQuery = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id`

func scanBookingDetail(row *sql.Row) (*BookingDetail, error) {
	var d BookingDetail
	err := row.Scan(
		&d.ID, &d.UserID, &d.RoomID, &d.CreatedAt, &d.UpdatedAt,
		&d.Room.ID, &d.Room.Name, &d.Room.Capacity, &d.Room.HotelID,
		&d.Room.CreatedAt, &d.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByUser returns the user's booking together with its room.  A user has
// at most one booking; when none exists ErrBookingNotFound is returned.
func (r *BookingRepo) FindByUser(ctx context.Context, userID uint64) (*BookingDetail, error) {
	const q = bookingDetailQuery + ` WHERE b.user_id = ? LIMIT 1`
	return scanBookingDetail(r.db.QueryRowContext(ctx, q, userID))
}

// FindByUserTx loads the user's booking row within the scope of an existing
// transaction and locks it until the transaction ends.  The lock keeps the
// row stable while its room pointer is being reassigned.  Returns
// ErrBookingNotFound when the user has no booking.
func (r *BookingRepo) FindByUserTx(ctx context.Context, tx *sql.Tx, userID uint64) (*BookingRecord, error) {
	const q = `SELECT id, user_id, room_id, created_at, updated_at
	           FROM bookings WHERE user_id = ? LIMIT 1 FOR UPDATE`
	var b BookingRecord
	err := tx.QueryRowContext(ctx, q, userID).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// CountByRoomTx returns the number of bookings currently pointing at the
// given room.  When excludeBookingID is non-zero that booking is left out of
// the count, so that moving a booking onto the room it already occupies does
// not count itself against the room's capacity.  Must run inside the same
// transaction that locked the room row for the count to be trustworthy.
func (r *BookingRepo) CountByRoomTx(ctx context.Context, tx *sql.Tx, roomID, excludeBookingID uint64) (uint32, error) {
	q := `SELECT COUNT(*) FROM bookings WHERE room_id = ?`
	args := []interface{}{roomID}
	if excludeBookingID != 0 {
		q += ` AND id <> ?`
		args = append(args, excludeBookingID)
	}
	var n uint32
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateTx inserts a new booking within the scope of an existing
// transaction.  It populates the generated ID and the DB-default timestamps
// on the provided record.  The caller must commit or roll back the
// transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *BookingRecord) error {
	const q = `INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`
	result, err := tx.ExecContext(ctx, q, b.UserID, b.RoomID)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults
	const sel = `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
}

// UpdateRoomTx reassigns the booking's room pointer within the provided
// transaction.  Setting the same room again is a no-op at the SQL level and
// is not treated as an error.
func (r *BookingRepo) UpdateRoomTx(ctx context.Context, tx *sql.Tx, bookingID, roomID uint64) error {
	const q = `UPDATE bookings SET room_id = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, roomID, bookingID)
	return err
}

// GetDetailTx re-reads a booking joined with its room inside the provided
// transaction.  Used after an insert or update so that the response body
// reflects exactly what was committed.
func (r *BookingRepo) GetDetailTx(ctx context.Context, tx *sql.Tx, bookingID uint64) (*BookingDetail, error) {
	const q = bookingDetailQuery + ` WHERE b.id = ?`
	return scanBookingDetail(tx.QueryRowContext(ctx, q, bookingID))
}
