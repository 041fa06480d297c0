package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()
	store := newMemStore()
	srv := httptest.NewServer(newRouter(store.stores()))
	t.Cleanup(srv.Close)
	return srv, store
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	return resp.StatusCode, decoded
}

func TestEndpointsDescriptor(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, status)

	var want map[string]any
	require.NoError(t, json.Unmarshal(endpointsJSON, &want))
	assert.Equal(t, want, body["endpoints"])
	assert.Contains(t, want, "GET /api/articles")
}

func TestInvalidEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/not-a-route"},
		{http.MethodGet, "/nowhere"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodDelete, "/api/topics"},
	} {
		status, body := do(t, srv, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, status, tc.path)
		assert.Equal(t, "Invalid Endpoint", body["msg"], tc.path)
	}
}

func TestGetTopicsAndUsers(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["topics"], 3)

	status, body = do(t, srv, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["users"], 2)

	status, body = do(t, srv, http.MethodGet, "/api/users/butter_bridge", "")
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "jonny", user["name"])
	assert.Equal(t, "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg", user["avatar_url"])

	status, body = do(t, srv, http.MethodGet, "/api/users/nobody", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])
}

func TestPostTopic(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/topics", `{"slug":"new topic","description":"description for new topic","extra":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, map[string]any{"slug": "new topic", "description": "description for new topic"}, body["topic"])

	status, body = do(t, srv, http.MethodPost, "/api/topics", `{"description":"no slug"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, _ = do(t, srv, http.MethodPost, "/api/topics", `{"slug":"mitch"}`)
	assert.Equal(t, http.StatusConflict, status)
}

func TestGetArticlesQueries(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantMsg    string
		wantLen    int
	}{
		{"/api/articles", http.StatusOK, "", 3},
		{"/api/articles/", http.StatusOK, "", 3},
		{"/api/articles?topic=cats", http.StatusOK, "", 1},
		{"/api/articles?topic=paper", http.StatusOK, "", 0},
		{"/api/articles?topic=somethingelse", http.StatusNotFound, "Not Found", 0},
		{"/api/articles?topic=4", http.StatusBadRequest, "Invalid query", 0},
		{"/api/articles?sort_by=3", http.StatusBadRequest, "Invalid query", 0},
		{"/api/articles?sort_by=invalid_query", http.StatusBadRequest, "Invalid query", 0},
		{"/api/articles?order=3", http.StatusBadRequest, "Invalid query", 0},
		{"/api/articles?limit=invalid&p=invalid", http.StatusBadRequest, "Invalid query - limit and p can only be numbers", 0},
		{"/api/articles?sort_by=article_id&order=asc&limit=5&p=1", http.StatusOK, "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := do(t, srv, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["msg"])
				return
			}
			articles, ok := body["articles"].([]any)
			require.True(t, ok, "articles must be an array, got %v", body["articles"])
			assert.Len(t, articles, tt.wantLen)
			assert.Contains(t, body, "total_count")
		})
	}
}

func TestGetArticle(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodGet, "/api/articles/1", "")
	require.Equal(t, http.StatusOK, status)
	article := body["article"].(map[string]any)
	assert.EqualValues(t, 1, article["article_id"])
	assert.EqualValues(t, 1, article["comment_count"])
	assert.Equal(t, "I find this existence challenging", article["body"])

	status, body = do(t, srv, http.MethodGet, "/api/articles/4", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["article"].(map[string]any)["comment_count"])

	status, body = do(t, srv, http.MethodGet, "/api/articles/999", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])

	status, body = do(t, srv, http.MethodGet, "/api/articles/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, _ = do(t, srv, http.MethodGet, "/api/articles/99999999999", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPostArticle(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/articles",
		`{"author":"lurker","title":"Article Title","body":"Article text...","topic":"paper","extra":"Something"}`)
	require.Equal(t, http.StatusCreated, status)
	article := body["article"].(map[string]any)
	assert.Equal(t, "paper", article["topic"])
	assert.Equal(t, "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700", article["article_img_url"])
	assert.EqualValues(t, 0, article["comment_count"])
	assert.NotNil(t, article["article_id"])

	for _, payload := range []string{
		`{"author":"lurker","title":"t","body":"b","topic":"dogs"}`,
		`{"author":"User123","title":"t","body":"b","topic":"paper"}`,
	} {
		status, body = do(t, srv, http.MethodPost, "/api/articles", payload)
		assert.Equal(t, http.StatusNotFound, status, payload)
		assert.Equal(t, "Not Found", body["msg"])
	}

	status, body = do(t, srv, http.MethodPost, "/api/articles", `{"author":"lurker","title":"t","body":"b"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, _ = do(t, srv, http.MethodPost, "/api/articles", `{"author":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPatchArticleVotes(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodPatch, "/api/articles/1", `{"inc_votes":3}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 103, body["article"].(map[string]any)["votes"])

	status, body = do(t, srv, http.MethodPatch, "/api/articles/1", `{"inc_votes":-20,"body":"something else"}`)
	require.Equal(t, http.StatusOK, status)
	article := body["article"].(map[string]any)
	assert.EqualValues(t, 83, article["votes"])
	assert.Equal(t, "I find this existence challenging", article["body"])

	status, body = do(t, srv, http.MethodPatch, "/api/articles/1", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 83, body["article"].(map[string]any)["votes"])

	status, _ = do(t, srv, http.MethodPatch, "/api/articles/1", "")
	assert.Equal(t, http.StatusOK, status)

	status, body = do(t, srv, http.MethodPatch, "/api/articles/1", `{"inc_votes":"word"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, _ = do(t, srv, http.MethodPatch, "/api/articles/1", `{"inc_votes":1.5}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, srv, http.MethodPatch, "/api/articles/100", `{"inc_votes":20}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])

	status, _ = do(t, srv, http.MethodPatch, "/api/articles/not-a-number", `{"inc_votes":3}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteArticleCascades(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodDelete, "/api/articles/5", "")
	require.Equal(t, http.StatusNoContent, status)
	assert.Nil(t, body)

	status, body = do(t, srv, http.MethodGet, "/api/articles/5/comments", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])

	status, _ = do(t, srv, http.MethodDelete, "/api/articles/5", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, srv, http.MethodDelete, "/api/articles/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, srv, http.MethodPatch, "/api/comments/17", `{"inc_votes":1}`)
	assert.Equal(t, http.StatusNotFound, status, "comment went with its article")
}

func TestArticleComments(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodGet, "/api/articles/1/comments", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["comments"], 1)

	status, body = do(t, srv, http.MethodGet, "/api/articles/4/comments", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["comments"])

	status, body = do(t, srv, http.MethodGet, "/api/articles/10000/comments", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])

	status, body = do(t, srv, http.MethodGet, "/api/articles/invalid_id/comments", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, body = do(t, srv, http.MethodGet, "/api/articles/1/comments?limit=invalid&p=invalid", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid query - limit and p can only be numbers", body["msg"])
}

func TestPostComment(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/articles/4/comments",
		`{"username":"butter_bridge","body":"A hungry bear doesn't dance","beth":"is totally cooool"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "A hungry bear doesn't dance", body["comment"])

	status, body = do(t, srv, http.MethodPost, "/api/articles/4/comments", `{"username":"butter_bridge"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, _ = do(t, srv, http.MethodPost, "/api/articles/not-a-number/comments", `{"username":"butter_bridge","body":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, srv, http.MethodPost, "/api/articles/100/comments", `{"username":"butter_bridge","body":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])

	status, _ = do(t, srv, http.MethodPost, "/api/articles/4/comments", `{"username":"I DONT EXIST","body":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCommentVotesAndDelete(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, srv, http.MethodPatch, "/api/comments/16", `{"inc_votes":5}`)
	require.Equal(t, http.StatusOK, status)
	comment := body["comment"].(map[string]any)
	assert.EqualValues(t, 6, comment["votes"])
	assert.Equal(t, "This is a bad article name", comment["body"])

	status, body = do(t, srv, http.MethodPatch, "/api/comments/16", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 6, body["comment"].(map[string]any)["votes"])

	status, _ = do(t, srv, http.MethodPatch, "/api/comments/16", `{"inc_votes":"word"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, srv, http.MethodPatch, "/api/comments/not-a-number", `{"inc_votes":3}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, srv, http.MethodDelete, "/api/comments/16", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, srv, http.MethodDelete, "/api/comments/16", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["msg"])
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/topics", nil)
	require.NoError(t, err)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))

	resp, err = srv.Client().Get(srv.URL + "/api/topics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get(requestIDHeader), 36)
}

func TestHealth(t *testing.T) {
	srv, store := newTestServer(t)

	status, body := do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	store.pingErr = errors.New("connection refused")
	status, _ = do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestPanicRecovery(t *testing.T) {
	h := requestID(LogInternalServerErrors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"msg":"Internal Server Error"}`, rec.Body.String())
}
