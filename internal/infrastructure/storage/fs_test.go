package storage

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/nonogram/internal/domain"
)

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	s := NewFS(t.TempDir())
	rec := &domain.Record{Source: "[1|1]", Name: "dot"}

	if err := s.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Save must assign an id")
	}
	if rec.CreatedAt == 0 {
		t.Fatal("Save must stamp CreatedAt")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	rec := &domain.Record{
		Name:   "cross",
		Source: "[1;1,1;1|1;1,1;1]",
		Puzzle: &domain.Puzzle{
			ColClues: []domain.Clue{{1}, {1, 1}, {1}},
			RowClues: []domain.Clue{{1}, {1, 1}, {1}},
		},
		Solution: &domain.Solution{
			Status: domain.StatusFixpoint,
			Cells: [][]domain.CellState{
				{domain.Blank, domain.Filled, domain.Blank},
				{domain.Filled, domain.Blank, domain.Filled},
				{domain.Blank, domain.Filled, domain.Blank},
			},
			Trace: domain.Trace{
				{{Orientation: domain.Vertical, Line: 1, Pos: 0, State: domain.Filled, Technique: domain.TechniqueCapacity}},
				{},
			},
		},
	}

	if err := s.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Fatalf("record mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("want a not-exist error, got %v", err)
	}
}

func TestLoadRejectsPathyID(t *testing.T) {
	s := NewFS(t.TempDir())
	for _, id := range []string{"", "../escape", `a\b`} {
		if _, err := s.Load(context.Background(), id); err == nil {
			t.Fatalf("id %q accepted", id)
		}
	}
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	metas, err := s.List(ctx)
	if err != nil || len(metas) != 0 {
		t.Fatalf("empty store: got %v, %v", metas, err)
	}

	a := &domain.Record{Name: "a", Source: "[1|1]"}
	b := &domain.Record{Name: "b", Source: "[2|1;1]"}
	for _, rec := range []*domain.Record{a, b} {
		if err := s.Save(ctx, rec); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	metas, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("want 2 records, got %v", metas)
	}
	byID := map[string]domain.RecordMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	if byID[a.ID].Name != "a" || byID[b.ID].Name != "b" {
		t.Fatalf("listing lost names: %v", metas)
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewFS("does-not-exist")
	metas, err := s.List(context.Background())
	if err != nil || metas != nil {
		t.Fatalf("missing dir should list empty, got %v, %v", metas, err)
	}
}
