package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/infrastructure/storage"
	"svw.info/nonogram/internal/linesolver"
	"svw.info/nonogram/internal/scheduler"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	svc := usecase.NewService(
		scheduler.New(linesolver.New()),
		validator.New(),
		storage.NewFS(t.TempDir()),
	)
	return New(svc, nil)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	h := testHandler(t).Routes()

	w := postJSON(t, h, "/api/solve", puzzleReq{Source: "[1;1,1;1|1;1,1;1]"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusFixpoint, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Greater(t, resp.Inferences, 0)
	require.Len(t, resp.Cells, 3)
	assert.Equal(t, domain.Filled, resp.Cells[1][0])
	assert.Equal(t, domain.Blank, resp.Cells[1][1])
}

func TestSolveEndpointMalformedClue(t *testing.T) {
	h := testHandler(t).Routes()

	// [3,2] cannot fit a 4-cell row, so the solve is rejected before
	// the first pass.
	w := postJSON(t, h, "/api/solve", puzzleReq{Source: "[1;1;1;1|3,2;1;1;1]"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestSolveEndpointContradiction(t *testing.T) {
	h := testHandler(t).Routes()

	w := postJSON(t, h, "/api/solve", puzzleReq{Source: "[;2|1;]"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusContradiction, resp.Status)
	assert.NotEmpty(t, resp.Error)
	require.NotNil(t, resp.Failed)
	assert.Equal(t, domain.Vertical, resp.Failed.Orientation)
	assert.NotEmpty(t, resp.Trace, "the partial pass must be served")
}

func TestValidateEndpoint(t *testing.T) {
	h := testHandler(t).Routes()

	w := postJSON(t, h, "/api/validate", puzzleReq{Source: "[1|1]"})
	require.Equal(t, http.StatusOK, w.Code)
	var ok validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.True(t, ok.OK)

	w = postJSON(t, h, "/api/validate", puzzleReq{Source: "[1|2]"})
	require.Equal(t, http.StatusOK, w.Code)
	var bad validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bad))
	assert.False(t, bad.OK)
	assert.NotEmpty(t, bad.Error)
}

func TestParseEndpoint(t *testing.T) {
	h := testHandler(t).Routes()

	w := postJSON(t, h, "/api/parse", puzzleReq{Source: "[;1,2|2,1;]"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp parseResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "[;1,2|2,1;]", resp.Source)
	require.NotNil(t, resp.Puzzle)
	assert.Equal(t, []domain.Clue{{2, 1}, {}}, resp.Puzzle.RowClues)

	w = postJSON(t, h, "/api/parse", puzzleReq{Source: "not a puzzle"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, h, "/api/parse", puzzleReq{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	h := testHandler(t).Routes()

	w := postJSON(t, h, "/api/puzzles/", puzzleReq{Source: "[1;1,1;1|1;1,1;1]", Name: "cross"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved saveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/puzzles/"+saved.ID, nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	var rec domain.Record
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &rec))
	assert.Equal(t, "cross", rec.Name)
	assert.Equal(t, "[1;1,1;1|1;1,1;1]", rec.Source)
	require.NotNil(t, rec.Solution)
	assert.Equal(t, domain.StatusFixpoint, rec.Solution.Status)

	req = httptest.NewRequest(http.MethodGet, "/api/puzzles/", nil)
	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code)
	var metas []domain.RecordMeta
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &metas))
	require.Len(t, metas, 1)
	assert.Equal(t, saved.ID, metas[0].ID)

	req = httptest.NewRequest(http.MethodGet, "/api/puzzles/missing", nil)
	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusNotFound, rw.Code)
}
