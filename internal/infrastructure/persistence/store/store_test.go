package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/review"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// newTestDB SQLite内存库(单连接),每个测试独立
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: MemoryDSN},
	}
	db, cleanup, err := NewDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return db
}

func addBook(t *testing.T, repo book.Repository, title, author string) *book.Book {
	t.Helper()
	b, err := book.NewBook(title, author, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func addReview(t *testing.T, repo review.Repository, bookID uint, score float64) {
	t.Helper()
	text := "review"
	rv, err := review.NewReview(&bookID, &text, &score)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), rv))
}

func strPtr(s string) *string { return &s }

func TestBookRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	b := addBook(t, books, "Dune", "Frank Herbert")
	assert.NotZero(t, b.ID)

	t.Run("没有评论时平均分为nil", func(t *testing.T) {
		got, err := books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Title)
		assert.Equal(t, "", got.Summary)
		assert.Nil(t, got.AverageScore)
	})

	t.Run("平均分", func(t *testing.T) {
		addReview(t, reviews, b.ID, 4)
		addReview(t, reviews, b.ID, 5)

		got, err := books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, got.AverageScore)
		assert.InDelta(t, 4.5, *got.AverageScore, 1e-9)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := books.FindByID(ctx, 404)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestBookRepository_List(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)
	ctx := context.Background()

	all, err := books.List(ctx, book.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	addBook(t, books, "Emma", "Jane Austen")
	addBook(t, books, "Persuasion", "Jane Austen")
	addBook(t, books, "100%_Pure", "Someone Else")

	all, err = books.List(ctx, book.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Emma", all[0].Title)

	byAuthor, err := books.List(ctx, book.ListFilter{Author: "austen"})
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	literal, err := books.List(ctx, book.ListFilter{Title: "%_"})
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "100%_Pure", literal[0].Title)
}

func TestBookRepository_UpdateDelete(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	b := addBook(t, books, "Dune", "Frank Herbert")

	require.NoError(t, books.Update(ctx, b.ID, book.Changes{Genre: strPtr("Science Fiction")}))
	got, err := books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", got.Genre)
	assert.Equal(t, "Dune", got.Title)

	err = books.Update(ctx, 999, book.Changes{Genre: strPtr("x")})
	assert.True(t, apperrors.IsNotFound(err))

	addReview(t, reviews, b.ID, 3)
	n, err := reviews.DeleteByBook(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, books.Delete(ctx, b.ID))
	ok, err := books.Exists(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, apperrors.IsNotFound(books.Delete(ctx, b.ID)))
}

func TestBookRepository_Top(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	top, err := books.Top(ctx, book.TopLimit)
	require.NoError(t, err)
	assert.Empty(t, top)

	// 7本有评论 + 1本无评论
	scores := []float64{3, 5, 1, 4, 2, 4.5, 0.5}
	ids := make([]uint, len(scores))
	for i, s := range scores {
		b := addBook(t, books, "Book", "Author")
		ids[i] = b.ID
		addReview(t, reviews, b.ID, s)
	}
	unreviewed := addBook(t, books, "Lonely", "Nobody")

	top, err = books.Top(ctx, book.TopLimit)
	require.NoError(t, err)
	require.Len(t, top, 5)

	want := []float64{5, 4.5, 4, 3, 2}
	for i, tb := range top {
		assert.InDelta(t, want[i], tb.AverageScore, 1e-9)
		assert.NotEqual(t, unreviewed.ID, tb.ID)
	}
	assert.Equal(t, ids[1], top[0].ID)
}

func TestReviewRepository_DanglingBook(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	b := addBook(t, books, "Dune", "Frank Herbert")
	addReview(t, reviews, b.ID, 5)
	addReview(t, reviews, 777, 2) // 指向不存在的图书

	all, err := reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].BookTitle)
	assert.Equal(t, "Dune", *all[0].BookTitle)
	assert.Nil(t, all[1].BookTitle)

	byBook, err := reviews.ListByBook(ctx, 777)
	require.NoError(t, err)
	assert.Len(t, byBook, 1)

	none, err := reviews.ListByBook(ctx, 12345)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScope(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)

	t.Run("首次使用才取连接,Close后归还", func(t *testing.T) {
		scope := NewScope(db)
		ctx := WithScope(context.Background(), scope)
		assert.False(t, scope.Acquired())

		addBook(t, books, "Scoped", "Writer")
		_, err := books.List(ctx, book.ListFilter{})
		require.NoError(t, err)
		assert.True(t, scope.Acquired())

		require.NoError(t, scope.Close())
		require.NoError(t, scope.Close())
		assert.False(t, scope.Acquired())

		// 单连接库:连接已归还,全局句柄可以继续使用
		_, err = books.List(context.Background(), book.ListFilter{})
		require.NoError(t, err)
	})

	t.Run("关闭后使用返回错误", func(t *testing.T) {
		scope := NewScope(db)
		require.NoError(t, scope.Close())

		_, err := books.List(WithScope(context.Background(), scope), book.ListFilter{})
		assert.ErrorIs(t, err, ErrScopeClosed)
	})
}

func TestTxManager(t *testing.T) {
	db := newTestDB(t)
	books := NewBookRepository(db)
	tm := NewTxManager(db)

	scope := NewScope(db)
	defer scope.Close()
	ctx := WithScope(context.Background(), scope)

	t.Run("返回错误时回滚", func(t *testing.T) {
		boom := errors.New("boom")
		err := tm.Transaction(ctx, func(ctx context.Context) error {
			b, _ := book.NewBook("Rolled", "Back", "", "")
			require.NoError(t, books.Create(ctx, b))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		all, err := books.List(ctx, book.ListFilter{Title: "Rolled"})
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("成功时提交", func(t *testing.T) {
		err := tm.Transaction(ctx, func(ctx context.Context) error {
			b, _ := book.NewBook("Committed", "Writer", "", "")
			return books.Create(ctx, b)
		})
		require.NoError(t, err)

		all, err := books.List(ctx, book.ListFilter{Title: "Committed"})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
