package gin_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	skimgin "github.com/fwojciec/skim/gin"
	"github.com/fwojciec/skim/mock"
	"github.com/fwojciec/skim/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newServer builds a Server whose pipeline and store succeed by default.
// Tests override individual mock functions to exercise failure paths.
func newServer(summaries *mock.SummaryService) *skimgin.Server {
	p := &pipeline.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><article><p>hello world</p></article></body></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (string, error) {
				return "hello world", nil
			},
		},
		Summarizer: &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, text string) (*skim.SummaryDraft, error) {
				return &skim.SummaryDraft{Title: "Hello", Bullets: []string{"world"}}, nil
			},
		},
		Summaries: summaries,
	}
	return skimgin.NewServer(p, summaries, discardLogger(), nil)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := newServer(&mock.SummaryService{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_CreateSummary(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{
			CreateSummaryFn: func(ctx context.Context, summary *skim.Summary) error {
				summary.ID = "abc-123"
				summary.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
				return nil
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/summaries",
			strings.NewReader(`{"url":"https://example.com/post"}`))
		r.Header.Set("Content-Type", "application/json")
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"abc-123"`)
		assert.Contains(t, w.Body.String(), `"Hello"`)
	})

	t.Run("missing url field", func(t *testing.T) {
		t.Parallel()

		srv := newServer(&mock.SummaryService{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/summaries", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid url maps to 400", func(t *testing.T) {
		t.Parallel()

		srv := newServer(&mock.SummaryService{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/summaries",
			strings.NewReader(`{"url":"not a url"}`))
		r.Header.Set("Content-Type", "application/json")
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("unprocessable page maps to 422", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{}
		srv := newServer(summaries)
		srv.Pipeline.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (string, error) {
				return "", skim.Errorf(skim.EUNPROCESSABLE, "no extractable content")
			},
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/summaries",
			strings.NewReader(`{"url":"https://example.com"}`))
		r.Header.Set("Content-Type", "application/json")
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "no extractable content")
	})

	t.Run("unavailable source maps to 502", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{}
		srv := newServer(summaries)
		srv.Pipeline.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", skim.Errorf(skim.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/summaries",
			strings.NewReader(`{"url":"https://example.com"}`))
		r.Header.Set("Content-Type", "application/json")
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestServer_GetSummaries(t *testing.T) {
	t.Parallel()

	t.Run("returns list and passes filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter skim.SummaryFilter
		summaries := &mock.SummaryService{
			FindSummariesFn: func(ctx context.Context, filter skim.SummaryFilter) ([]*skim.Summary, error) {
				gotFilter = filter
				return []*skim.Summary{
					{ID: "a", URL: "https://example.com/a", Title: "A"},
					{ID: "b", URL: "https://example.com/b", Title: "B"},
				}, nil
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/summaries?limit=5&offset=10&url=https%3A%2F%2Fexample.com%2Fa", nil)
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Equal(t, 10, gotFilter.Offset)
		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://example.com/a", *gotFilter.URL)
		assert.Contains(t, w.Body.String(), `"a"`)
		assert.Contains(t, w.Body.String(), `"b"`)
	})

	t.Run("empty store returns empty list", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{
			FindSummariesFn: func(ctx context.Context, filter skim.SummaryFilter) ([]*skim.Summary, error) {
				return nil, nil
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/summaries", nil)
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"summaries":[]}`, w.Body.String())
	})
}

func TestServer_GetSummary(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{
			FindSummaryByIDFn: func(ctx context.Context, id string) (*skim.Summary, error) {
				require.Equal(t, "abc-123", id)
				return &skim.Summary{ID: "abc-123", URL: "https://example.com", Title: "A"}, nil
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/summaries/abc-123", nil)
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"abc-123"`)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{
			FindSummaryByIDFn: func(ctx context.Context, id string) (*skim.Summary, error) {
				return nil, skim.Errorf(skim.ENOTFOUND, "summary not found")
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/summaries/missing", nil)
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"summary not found"}`, w.Body.String())
	})
}

func TestServer_DeleteSummary(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		summaries := &mock.SummaryService{
			DeleteSummaryFn: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/summaries/abc-123", nil)
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "abc-123", deletedID)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		t.Parallel()

		summaries := &mock.SummaryService{
			DeleteSummaryFn: func(ctx context.Context, id string) error {
				return skim.Errorf(skim.ENOTFOUND, "summary not found")
			},
		}
		srv := newServer(summaries)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/summaries/missing", nil)
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
