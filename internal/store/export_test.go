package store

import (
	"context"
	"testing"

	"github.com/rcliao/vinculum/internal/model"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	valid := true
	src.Record(ctx, RecordParams{Direction: model.DirectionToRoman, Numeral: "M_V_", Value: 4000})
	src.Record(ctx, RecordParams{Direction: model.DirectionCheck, Numeral: "XIV", Value: 14, Valid: &valid})
	src.Record(ctx, RecordParams{Direction: model.DirectionToArabic, Numeral: "IX", Value: 9, Method: model.MethodBasic})

	exported, err := src.ExportAll(ctx, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 3 || exported[0].Value != 4000 {
		t.Fatalf("expected 3 oldest-first, got %+v", exported)
	}

	dst := newTestStore(t)
	n, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 imported, got %d", n)
	}

	got, err := dst.Get(ctx, exported[1].ID)
	if err != nil {
		t.Fatalf("get imported: %v", err)
	}
	if got.Valid == nil || !*got.Valid || got.Direction != model.DirectionCheck {
		t.Errorf("unexpected imported conversion: %+v", got)
	}
	if !got.CreatedAt.Equal(exported[1].CreatedAt) {
		t.Errorf("created_at not preserved: %v vs %v", got.CreatedAt, exported[1].CreatedAt)
	}

	// Second import skips existing IDs
	n, _ = dst.Import(ctx, exported)
	if n != 0 {
		t.Errorf("expected duplicates skipped, got %d imported", n)
	}
}

func TestExportByDirection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Record(ctx, RecordParams{Direction: model.DirectionToRoman, Numeral: "I", Value: 1})
	s.Record(ctx, RecordParams{Direction: model.DirectionToArabic, Numeral: "I", Value: 1, Method: model.MethodMap})

	got, _ := s.ExportAll(ctx, model.DirectionToArabic)
	if len(got) != 1 || got[0].Method != model.MethodMap {
		t.Errorf("unexpected export: %+v", got)
	}
}
