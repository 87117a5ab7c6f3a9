package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/application/event"
	appreview "github.com/xiebiao/bookcatalog/internal/application/review"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/review"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/external"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
)

// newTestEngine 与cmd/api相同的组装方式,存储使用SQLite内存库,外部API指向upstream
func newTestEngine(t *testing.T, upstream http.Handler, withMetrics bool) *gin.Engine {
	t.Helper()

	if upstream == nil {
		upstream = http.NotFoundHandler()
	}
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: store.MemoryDSN},
		Author: config.AuthorConfig{
			OpenLibraryURL: srv.URL,
			WikipediaURL:   srv.URL,
			UserAgent:      "bookcatalog-test",
			Timeout:        3 * time.Second,
		},
		Metrics: config.MetricsConfig{Enabled: withMetrics, Path: "/metrics"},
	}
	logger := zap.NewNop()

	db, cleanup, err := store.NewDB(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	bookService := book.NewService(store.NewBookRepository(db))
	reviewService := review.NewService(store.NewReviewRepository(db))
	txManager := store.NewTxManager(db)
	events := event.NewEmitter(event.NopPublisher{}, logger)

	httpClient := external.NewHTTPClient(cfg)
	authorService := author.NewService(
		external.NewOpenLibraryClient(cfg, httpClient),
		external.NewWikipediaClient(cfg, httpClient),
	)

	return New(cfg, logger, db, Handlers{
		Book: handler.NewBookHandler(
			appbook.NewAddBookUseCase(bookService, events),
			appbook.NewListBooksUseCase(bookService),
			appbook.NewGetBookUseCase(bookService),
			appbook.NewUpdateBookUseCase(bookService, txManager, events),
			appbook.NewDeleteBookUseCase(bookService, reviewService, txManager, events, logger),
			appbook.NewTopBooksUseCase(bookService),
		),
		Review: handler.NewReviewHandler(
			appreview.NewAddReviewUseCase(reviewService, events),
			appreview.NewListReviewsUseCase(reviewService),
			appreview.NewListBookReviewsUseCase(reviewService),
		),
		Author: handler.NewAuthorHandler(appauthor.NewGetAuthorInfoUseCase(authorService, logger)),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func addBook(t *testing.T, r *gin.Engine, body string) uint {
	t.Helper()
	rec, out := do(t, r, http.MethodPost, "/books", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(out["book_id"].(float64))
}

func addReview(t *testing.T, r *gin.Engine, bookID uint, score float64) {
	t.Helper()
	rec, _ := do(t, r, http.MethodPost, "/reviews",
		fmt.Sprintf(`{"book_id":%d,"review_text":"ok","review_score":%v}`, bookID, score))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	r := newTestEngine(t, nil, true)

	rec, _ := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello world", rec.Body.String())

	rec, out := do(t, r, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", out["message"])
	assert.Equal(t, "healthy", out["status"])

	rec, _ = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")

	rec, _ = do(t, r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/books/top")
}

func TestBookLifecycle(t *testing.T) {
	r := newTestEngine(t, nil, false)

	t.Run("新增后读取字段一致", func(t *testing.T) {
		id := addBook(t, r, `{"title":"Dune","author":"Frank Herbert"}`)

		rec, out := do(t, r, http.MethodGet, fmt.Sprintf("/books/%d", id), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, id, out["book_id"])
		assert.Equal(t, "Dune", out["title"])
		assert.Equal(t, "Frank Herbert", out["author"])
		assert.Equal(t, "", out["summary"])
		assert.Equal(t, "", out["genre"])
		assert.Nil(t, out["average_score"])
	})

	t.Run("新增响应", func(t *testing.T) {
		rec, out := do(t, r, http.MethodPost, "/books", `{"title":"Emma","author":"Jane Austen","genre":"Novel"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Book added successfully", out["message"])
		assert.NotZero(t, out["book_id"])
	})

	t.Run("缺少title或author返回400", func(t *testing.T) {
		for _, body := range []string{
			`{"author":"A","summary":"s","genre":"g"}`,
			`{"title":"T","summary":"s"}`,
			`{}`,
		} {
			rec, out := do(t, r, http.MethodPost, "/books", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, "Title and Author are required", out["error"])
		}
	})

	t.Run("非JSON对象返回400", func(t *testing.T) {
		rec, out := do(t, r, http.MethodPost, "/books", `[1,2]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body must be a JSON object", out["error"])
	})

	t.Run("不存在的ID", func(t *testing.T) {
		rec, out := do(t, r, http.MethodGet, "/books/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Book with ID 999 not found", out["error"])

		rec, _ = do(t, r, http.MethodPut, "/books/999", `{"title":"X"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec, _ = do(t, r, http.MethodDelete, "/books/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec, _ = do(t, r, http.MethodGet, "/books/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("更新不存在的图书时404优先于请求体错误", func(t *testing.T) {
		for _, body := range []string{`[]`, `"x"`, ``, `{}`, `{"isbn":"1"}`, `{"title":1}`} {
			rec, out := do(t, r, http.MethodPut, "/books/999", body)
			assert.Equal(t, http.StatusNotFound, rec.Code, body)
			assert.Equal(t, "Book with ID 999 not found", out["error"], body)
		}
	})

	t.Run("更新存在的图书时请求体错误返回400", func(t *testing.T) {
		id := addBook(t, r, `{"title":"Kept","author":"Writer"}`)
		path := fmt.Sprintf("/books/%d", id)

		rec, out := do(t, r, http.MethodPut, path, `[]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body must be a JSON object", out["error"])

		rec, out = do(t, r, http.MethodPut, path, ``)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body must be a JSON object", out["error"])

		_, out = do(t, r, http.MethodGet, path, "")
		assert.Equal(t, "Kept", out["title"])
	})

	t.Run("字段类型错误指出字段名", func(t *testing.T) {
		rec, out := do(t, r, http.MethodPost, "/books", `{"title":1,"author":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, out["error"], `Invalid type for field "title"`)

		rec, out = do(t, r, http.MethodPost, "/reviews", `{"book_id":"1","review_text":"t","review_score":3}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, out["error"], `Invalid type for field "book_id"`)
	})

	t.Run("非法ID返回400", func(t *testing.T) {
		rec, _ := do(t, r, http.MethodGet, "/books/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("更新与删除", func(t *testing.T) {
		id := addBook(t, r, `{"title":"Old","author":"Writer"}`)
		path := fmt.Sprintf("/books/%d", id)

		rec, out := do(t, r, http.MethodPut, path, `{"title":"New","genre":"Drama"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, fmt.Sprintf("Book with ID %d updated successfully", id), out["message"])

		_, out = do(t, r, http.MethodGet, path, "")
		assert.Equal(t, "New", out["title"])
		assert.Equal(t, "Drama", out["genre"])
		assert.Equal(t, "Writer", out["author"])

		rec, _ = do(t, r, http.MethodPut, path, `{"book_id":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, out = do(t, r, http.MethodDelete, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, fmt.Sprintf("Book with ID %d deleted successfully", id), out["message"])

		rec, _ = do(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListBooks_Filter(t *testing.T) {
	r := newTestEngine(t, nil, false)

	_, out := do(t, r, http.MethodGet, "/books", "")
	assert.Equal(t, []interface{}{}, out["books"])

	addBook(t, r, `{"title":"Dune","author":"Frank Herbert","genre":"SF"}`)
	addBook(t, r, `{"title":"Emma","author":"Jane Austen","genre":"Novel"}`)

	_, out = do(t, r, http.MethodGet, "/books?genre=sf", "")
	books := out["books"].([]interface{})
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].(map[string]interface{})["title"])
}

func TestReviewsAndTop(t *testing.T) {
	r := newTestEngine(t, nil, false)

	t.Run("没有评论时排行榜返回404", func(t *testing.T) {
		rec, out := do(t, r, http.MethodGet, "/books/top", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "There were no books", out["error"])
	})

	ids := make([]uint, 7)
	for i := range ids {
		ids[i] = addBook(t, r, fmt.Sprintf(`{"title":"Book %d","author":"A"}`, i))
	}
	// ids[6]没有评论
	for i := 0; i < 6; i++ {
		addReview(t, r, ids[i], float64(i))
		addReview(t, r, ids[i], float64(i)+1)
	}

	t.Run("排行榜至多5条且降序", func(t *testing.T) {
		rec, out := do(t, r, http.MethodGet, "/books/top", "")
		require.Equal(t, http.StatusOK, rec.Code)
		top := out["top_5_books"].([]interface{})
		require.Len(t, top, 5)

		prev := 100.0
		for _, item := range top {
			entry := item.(map[string]interface{})
			score := entry["average_score"].(float64)
			assert.LessOrEqual(t, score, prev)
			assert.NotEqual(t, float64(ids[6]), entry["book_id"])
			prev = score
		}
		assert.EqualValues(t, ids[5], top[0].(map[string]interface{})["book_id"])
		assert.Equal(t, "Book 5", top[0].(map[string]interface{})["book_title"])
		assert.InDelta(t, 5.5, top[0].(map[string]interface{})["average_score"], 1e-9)
	})

	t.Run("未评论的图书出现在列表中且平均分为null", func(t *testing.T) {
		_, out := do(t, r, http.MethodGet, "/books", "")
		books := out["books"].([]interface{})
		require.Len(t, books, 7)
		last := books[6].(map[string]interface{})
		assert.EqualValues(t, ids[6], last["book_id"])
		assert.Nil(t, last["average_score"])
		assert.InDelta(t, 0.5, books[0].(map[string]interface{})["average_score"], 1e-9)
	})

	t.Run("新增评论响应", func(t *testing.T) {
		rec, out := do(t, r, http.MethodPost, "/reviews", fmt.Sprintf(`{"book_id":%d,"review_text":"Nice","review_score":0}`, ids[6]))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, fmt.Sprintf("Review for Book with ID %d added successfully", ids[6]), out["message"])
		assert.NotZero(t, out["review_id"])
	})

	t.Run("缺少字段返回400", func(t *testing.T) {
		rec, out := do(t, r, http.MethodPost, "/reviews", `{"book_id":1,"review_text":"no score"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "book_id, review_text, and review_score are required", out["error"])
	})

	t.Run("评论列表", func(t *testing.T) {
		rec, out := do(t, r, http.MethodGet, "/reviews", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, out["reviews"], 13)

		rec, out = do(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", ids[0]), "")
		require.Equal(t, http.StatusOK, rec.Code)
		reviews := out["reviews"].([]interface{})
		require.Len(t, reviews, 2)
		first := reviews[0].(map[string]interface{})
		assert.Equal(t, "Book 0", first["book_title"])
		assert.Equal(t, "ok", first["review_text"])
	})

	t.Run("没有评论的图书返回404", func(t *testing.T) {
		rec, out := do(t, r, http.MethodGet, "/reviews/4242", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Reviews for Book ID 4242 not found", out["error"])
	})

	t.Run("删除图书级联删除评论", func(t *testing.T) {
		rec, _ := do(t, r, http.MethodDelete, fmt.Sprintf("/books/%d", ids[0]), "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", ids[0]), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// authorUpstream 同时模拟Open Library与Wikipedia
// 两个处理函数都等到对方也收到请求后才返回,串行调用会超时失败
func authorUpstream(t *testing.T, docs, pages string) http.Handler {
	t.Helper()
	var started sync.WaitGroup
	started.Add(2)
	both := make(chan struct{})
	go func() {
		started.Wait()
		close(both)
	}()

	wait := func(w http.ResponseWriter) bool {
		started.Done()
		select {
		case <-both:
			return true
		case <-time.After(2 * time.Second):
			http.Error(w, "lookups were not concurrent", http.StatusGatewayTimeout)
			return false
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, _ *http.Request) {
		if wait(w) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, docs)
		}
	})
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, _ *http.Request) {
		if wait(w) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, pages)
		}
	})
	return mux
}

func TestAuthorInfo(t *testing.T) {
	t.Run("并发查询并合并", func(t *testing.T) {
		r := newTestEngine(t, authorUpstream(t,
			`{"docs":[{"title":"Pride and Prejudice"},{"title":"Emma"}]}`,
			`{"query":{"pages":{"1":{"title":"Jane Austen","extract":"Jane Austen was an English novelist."}}}}`,
		), false)

		rec, out := do(t, r, http.MethodGet, "/author?name=Jane+Austen", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Jane Austen", out["author_name"])
		assert.Equal(t, "Pride and Prejudice", out["most_known_work"])
		assert.Equal(t, "Jane Austen was an English novelist.", out["short_summary"])
	})

	t.Run("缺少name返回400", func(t *testing.T) {
		r := newTestEngine(t, nil, false)
		rec, out := do(t, r, http.MethodGet, "/author", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Author name not provided", out["error"])
	})

	t.Run("目录检索无结果返回404", func(t *testing.T) {
		r := newTestEngine(t, authorUpstream(t,
			`{"docs":[]}`,
			`{"query":{"pages":{"-1":{"title":"Nobody","missing":""}}}}`,
		), false)

		rec, out := do(t, r, http.MethodGet, "/author?name=Nobody", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No information found for the specified author", out["error"])
	})

	t.Run("外部服务异常返回500", func(t *testing.T) {
		r := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream down", http.StatusServiceUnavailable)
		}), false)

		rec, out := do(t, r, http.MethodGet, "/author?name=Jane+Austen", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.True(t, strings.HasPrefix(out["error"].(string), "Failed to fetch author information. Reason: "), out["error"])
	})
}
