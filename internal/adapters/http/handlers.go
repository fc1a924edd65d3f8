package httpadapter

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/parser"
	"svw.info/nonogram/internal/usecase"
)

// Handler exposes the engine over a JSON API.
type Handler struct {
	UC  *usecase.Service
	Log logrus.FieldLogger
}

func New(uc *usecase.Service, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{UC: uc, Log: log}
}

func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", h.handleParse)
		r.Post("/validate", h.handleValidate)
		r.Post("/solve", h.handleSolve)
		r.Route("/puzzles", func(r chi.Router) {
			r.Get("/", h.handleList)
			r.Post("/", h.handleSave)
			r.Get("/{id}", h.handleLoad)
		})
	})
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	render.Status(r, code)
	render.JSON(w, r, errResp{Error: err.Error()})
}

// puzzleReq accepts either the one-line source encoding or a
// structured puzzle.
type puzzleReq struct {
	Source string         `json:"source,omitempty"`
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Name   string         `json:"name,omitempty"`
}

func (h *Handler) decodePuzzle(w http.ResponseWriter, r *http.Request) (*puzzleReq, *domain.Puzzle, bool) {
	var req puzzleReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return nil, nil, false
	}
	p := req.Puzzle
	if req.Source != "" {
		var err error
		if p, err = parser.Parse(req.Source); err != nil {
			fail(w, r, http.StatusBadRequest, err)
			return nil, nil, false
		}
	}
	if p == nil {
		fail(w, r, http.StatusBadRequest, errors.New("missing puzzle"))
		return nil, nil, false
	}
	return &req, p, true
}

// ---- Parse ----

type parseResp struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
	Source string         `json:"source"`
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	_, p, ok := h.decodePuzzle(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, parseResp{Puzzle: p, Source: parser.Encode(p)})
}

// ---- Validate ----

type validateResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	_, p, ok := h.decodePuzzle(w, r)
	if !ok {
		return
	}
	if err := h.UC.Validate(r.Context(), p); err != nil {
		render.JSON(w, r, validateResp{OK: false, Error: err.Error()})
		return
	}
	render.JSON(w, r, validateResp{OK: true})
}

// ---- Solve ----

type solveResp struct {
	Status     domain.SolveStatus   `json:"status"`
	Cells      [][]domain.CellState `json:"cells,omitempty"`
	Trace      domain.Trace         `json:"trace,omitempty"`
	Failed     *domain.LineRef      `json:"failed,omitempty"`
	Passes     int                  `json:"passes"`
	Inferences int                  `json:"inferences"`
	DurationMs int64                `json:"durationMs"`
	Error      string               `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	_, p, ok := h.decodePuzzle(w, r)
	if !ok {
		return
	}
	sol, stats, err := h.UC.Solve(r.Context(), p)
	if sol == nil {
		// Rejected before pass 1 (malformed clue or bad pre-fill).
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	resp := solveResp{
		Status:     sol.Status,
		Cells:      sol.Cells,
		Trace:      sol.Trace,
		Failed:     sol.Failed,
		Passes:     stats.Passes,
		Inferences: stats.Inferences,
		DurationMs: stats.Duration.Milliseconds(),
	}
	if err != nil {
		// Contradicted mid-solve: the partial trace is still served.
		resp.Error = err.Error()
	}
	render.JSON(w, r, resp)
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	req, p, ok := h.decodePuzzle(w, r)
	if !ok {
		return
	}
	sol, _, err := h.UC.Solve(r.Context(), p)
	if sol == nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	rec := &domain.Record{
		Name:     req.Name,
		Source:   parser.Encode(p),
		Puzzle:   p,
		Solution: sol,
	}
	if err := h.UC.Save(r.Context(), rec); err != nil {
		h.Log.WithError(err).Error("save record")
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, saveResp{ID: rec.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	rec, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			code = http.StatusNotFound
		}
		fail(w, r, code, err)
		return
	}
	render.JSON(w, r, rec)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	if metas == nil {
		metas = []domain.RecordMeta{}
	}
	render.JSON(w, r, metas)
}
