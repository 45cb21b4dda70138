package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core"
	"github.com/agenthands/resumegraph/internal/core/extraction"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/driver"
	"github.com/agenthands/resumegraph/internal/driver/drivertest"
)

const adaProfile = `{"name": "Ada Lovelace", "skills": ["Python", "SQL"], "education": [], "projects": [], "experience": [], "certifications": []}`

type testServer struct {
	router *gin.Engine
	driver *drivertest.MemoryDriver
	llm    *extraction.MockLLMClient
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Summary.Enabled = false
	d := drivertest.NewMemoryDriver()
	mockLLM := &extraction.MockLLMClient{Response: adaProfile}
	logger := zaptest.NewLogger(t)

	engine, err := core.NewEngine(d, mockLLM, cfg, logger)
	require.NoError(t, err)

	return &testServer{
		router: NewServer(engine, cfg, logger).SetupRouter(),
		driver: d,
		llm:    mockLLM,
	}
}

func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func uploadRequest(t *testing.T, files map[string]string, order ...string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, name := range order {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth_SetsRequestID(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = ts.do(t, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestUploadResumes(t *testing.T) {
	ts := newTestServer(t)
	files := map[string]string{
		"ada.txt":   "Ada Lovelace\nPython, SQL",
		"again.txt": "Ada Lovelace\nPython, SQL",
		"blank.txt": "",
	}

	w := ts.do(t, uploadRequest(t, files, "ada.txt", "blank.txt", "again.txt"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Results []model.IngestResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, model.StatusIngested, resp.Results[0].Status)
	assert.Equal(t, "ada lovelace", resp.Results[0].Name)
	assert.Equal(t, model.StatusUnreadable, resp.Results[1].Status)
	assert.Equal(t, model.StatusAlreadyPresent, resp.Results[2].Status)
	assert.Equal(t, resp.Results[0].ContentHash, resp.Results[2].ContentHash)
}

func TestUploadResumes_NoFiles(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, uploadRequest(t, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResumes_StoreFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.driver.FailQuery = func(q string) error {
		if q == driver.MergeCandidateQuery {
			return errors.New("store down")
		}
		return nil
	}

	w := ts.do(t, uploadRequest(t, map[string]string{"ada.txt": "resume"}, "ada.txt"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), string(model.StatusStoreFailed))
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, uploadRequest(t, map[string]string{"ada.txt": "resume"}, "ada.txt"))
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, jsonRequest(http.MethodPost, "/search", `{"skills": ["PYTHON", "sql"]}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Candidates []model.CandidateSummary `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "ada lovelace", resp.Candidates[0].Name)

	w = ts.do(t, jsonRequest(http.MethodPost, "/search", `{"skills": ["python", "rust"]}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"candidates": []}`, w.Body.String())
}

func TestSearch_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, jsonRequest(http.MethodPost, "/search", `{"skills": []}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), core.ErrEmptySkillSet.Error())

	w = ts.do(t, jsonRequest(http.MethodPost, "/search", `not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCandidatesStatsAndClear(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, uploadRequest(t, map[string]string{"ada.txt": "resume"}, "ada.txt"))
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Candidates []model.CandidateSummary `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Candidates, 1)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/candidates/"+list.Candidates[0].ContentHash, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"python"`)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/candidates/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"nodes": 3, "edges": 2}`, w.Body.String())

	w = ts.do(t, httptest.NewRequest(http.MethodDelete, "/graph", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, ts.driver.NodeCount())
}

func TestClearGraph_StoreFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.driver.Err = errors.New("unreachable")

	w := ts.do(t, httptest.NewRequest(http.MethodDelete, "/graph", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
