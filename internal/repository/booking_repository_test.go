package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	testCreated = time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	testUpdated = time.Date(2023, 3, 2, 8, 30, 0, 0, time.UTC)
)

func bookingDetailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"b.id", "b.user_id", "b.room_id", "b.created_at", "b.updated_at",
		"r.id", "r.name", "r.capacity", "r.hotel_id", "r.created_at", "r.updated_at",
	})
}

func TestBookingRepoFindByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT b.id, b.user_id, b.room_id").
		WithArgs(uint64(2)).
		WillReturnRows(bookingDetailRows().
			AddRow(5, 2, 3, testCreated, testUpdated, 3, "101", 2, 1, testCreated, testUpdated))

	repo := NewBookingRepo(db)
	det, err := repo.FindByUser(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, uint64(5), det.ID)
	require.Equal(t, uint64(2), det.UserID)
	require.Equal(t, uint64(3), det.RoomID)
	require.Equal(t, "101", det.Room.Name)
	require.Equal(t, uint32(2), det.Room.Capacity)
	require.Equal(t, uint64(1), det.Room.HotelID)
	require.True(t, det.CreatedAt.Equal(testCreated))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoFindByUserMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT b.id, b.user_id, b.room_id").
		WithArgs(uint64(9)).
		WillReturnError(sql.ErrNoRows)

	repo := NewBookingRepo(db)
	_, err = repo.FindByUser(context.Background(), 9)
	require.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCountByRoomTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	repo := NewBookingRepo(db)
	n, err := repo.CountByRoomTx(context.Background(), tx, 3, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCountByRoomTxExcludesBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(uint64(3), uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	repo := NewBookingRepo(db)
	n, err := repo.CountByRoomTx(context.Background(), tx, 3, 7)
	require.NoError(t, err)
	require.Equal(t, uint32(0), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCreateTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(2), uint64(3)).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT id, user_id, room_id").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}).
			AddRow(5, 2, 3, testCreated, testCreated))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	repo := NewBookingRepo(db)
	rec := &BookingRecord{UserID: 2, RoomID: 3}
	require.NoError(t, repo.CreateTx(context.Background(), tx, rec))
	require.Equal(t, uint64(5), rec.ID)
	require.True(t, rec.CreatedAt.Equal(testCreated))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoUpdateRoomTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET room_id").
		WithArgs(uint64(4), uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	repo := NewBookingRepo(db)
	require.NoError(t, repo.UpdateRoomTx(context.Background(), tx, 5, 4))
	require.NoError(t, mock.ExpectationsWereMet())
}
