package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func expectPostExists(mock sqlmock.Sqlmock, postID int64, count int64) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestToggleLikeUnknownPostIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectPostExists(mock, 99, 0)
	mock.ExpectRollback()

	status, err := ToggleLike(db, 2, 99)
	assert.Nil(t, status)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Belum ada like → toggle menyisipkan dan membalas liked=true.
func TestToggleLikeInsertsWhenAbsent(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectPostExists(mock, 10, 1)
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(int64(2), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	status, err := ToggleLike(db, 2, 10)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(1), status.LikesCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Sudah ada like → toggle menghapus dan membalas liked=false.
// Bersama test di atas: dua kali toggle mengembalikan keadaan semula.
func TestToggleLikeDeletesWhenPresent(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectPostExists(mock, 10, 1)
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(int64(2), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	status, err := ToggleLike(db, 2, 10)
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(0), status.LikesCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Balapan dua toggle: insert kedua kena unique violation → tetap liked=true,
// bukan error 500.
func TestToggleLikeSurvivesConcurrentInsertRace(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectPostExists(mock, 10, 1)
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(int64(2), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).
		WillReturnError(errDuplicateKey{})
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	status, err := ToggleLike(db, 2, 10)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(1), status.LikesCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

type errDuplicateKey struct{}

func (errDuplicateKey) Error() string {
	return `ERROR: duplicate key value violates unique constraint "likes_pkey" (SQLSTATE 23505)`
}

func TestFindLike(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"like_user_id", "like_post_id"}).
			AddRow(int64(2), int64(10)))

	like, err := FindLike(db, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), like.LikeUserID)
	assert.Equal(t, int64(10), like.LikePostID)

	mock.ExpectQuery(`SELECT \* FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"like_user_id", "like_post_id"}))

	like, err = FindLike(db, 2, 11)
	assert.Nil(t, like)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Postingan hilang di antara cek eksistensi dan insert like: FK menolak,
// dan pemanggil menerima 404, bukan 500.
func TestToggleLikePostRemovedBeforeInsert(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(int64(2), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	out, err := ToggleLike(db, 2, 10)
	assert.Nil(t, out)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
