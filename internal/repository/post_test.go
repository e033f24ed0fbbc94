package repository

import (
	"context"
	"regexp"
	"testing"

	"flare/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_IncrementVote(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	t.Run("Upvote increments upvote counter only", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "upvote_count"=upvote_count + 1 WHERE id = $1`)).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.IncrementVote(ctx, 3, models.VoteUpvote)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Downvote increments downvote counter only", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "downvote_count"=downvote_count + 1 WHERE id = $1`)).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.IncrementVote(ctx, 3, models.VoteDownvote)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown post", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "upvote_count"=upvote_count + 1 WHERE id = $1`)).
			WithArgs(404).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.IncrementVote(ctx, 404, models.VoteUpvote)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid kind does not touch the database", func(t *testing.T) {
		err := repo.IncrementVote(ctx, 3, models.VoteKind("sideways"))
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_TotalVotesByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	t.Run("Sums counters", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"total_upvotes", "total_downvotes"}).AddRow(12, 4)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(upvote_count), 0) AS total_upvotes, COALESCE(SUM(downvote_count), 0) AS total_downvotes FROM "posts" WHERE user_id = $1`)).
			WithArgs(1).
			WillReturnRows(rows)

		totals, err := repo.TotalVotesByUser(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), totals.UserID)
		assert.Equal(t, 12, totals.TotalUpvotes)
		assert.Equal(t, 4, totals.TotalDownvotes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User with no posts gets zero totals", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"total_upvotes", "total_downvotes"}).AddRow(0, 0)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(upvote_count), 0) AS total_upvotes, COALESCE(SUM(downvote_count), 0) AS total_downvotes FROM "posts" WHERE user_id = $1`)).
			WithArgs(2).
			WillReturnRows(rows)

		totals, err := repo.TotalVotesByUser(context.Background(), 2)
		require.NoError(t, err)
		assert.Zero(t, totals.TotalUpvotes)
		assert.Zero(t, totals.TotalDownvotes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_ListByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "post_text"}).
		AddRow(1, 1, "first").
		AddRow(2, 1, "second")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(1).
		WillReturnRows(rows)

	posts, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
