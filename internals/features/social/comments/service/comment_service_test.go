package service

import (
	"testing"
	"time"

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

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "error harus *fiber.Error, dapat: %v", err)
	return fe.Code
}

// Teks kosong dicek sebelum eksistensi post: target ngawur pun tetap 400,
// dan store sama sekali tidak disentuh.
func TestCreateCommentValidatesTextBeforeExistence(t *testing.T) {
	db, mock := newTestDB(t)

	cm, err := CreateComment(db, 1, 999999, "   ")
	assert.Nil(t, cm)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentUnknownPostIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	cm, err := CreateComment(db, 1, 99, "halo")
	assert.Nil(t, cm)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentTrimsAndInserts(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WithArgs("halo", int64(1), int64(10), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	cm, err := CreateComment(db, 1, 10, " halo ")
	require.NoError(t, err)
	assert.Equal(t, int64(5), cm.CommentID)
	assert.Equal(t, "halo", cm.CommentText)
	require.NoError(t, mock.ExpectationsWereMet())
}

func commentRows(id, userID, postID int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"comment_id", "comment_text", "comment_user_id", "comment_post_id", "comment_created_at"}).
		AddRow(id, "halo", userID, postID, time.Now())
}

func TestDeleteCommentByAuthor(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRows(5, 1, 10))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, DeleteComment(db, 1, 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Bukan penulis → 403 dan komentar tidak tersentuh.
func TestDeleteCommentByNonAuthorIsForbidden(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRows(5, 1, 10))

	err := DeleteComment(db, 2, 5)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentUnknownIDIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "comment_text", "comment_user_id", "comment_post_id", "comment_created_at"}))

	err := DeleteComment(db, 1, 404)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Postingan dihapus oleh transaksi lain setelah cek eksistensi lolos:
// FK di database yang menolak insert, dan pemanggil tetap menerima 404.
func TestCreateCommentPostRemovedBeforeInsert(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	cm, err := CreateComment(db, 2, 10, "telat")
	assert.Nil(t, cm)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	require.NoError(t, mock.ExpectationsWereMet())
}
