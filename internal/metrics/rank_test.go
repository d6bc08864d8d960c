package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jemcclin/readabilitycheck/internal/readability"
)

func TestSortRows_DescendingWithPathTieBreak(t *testing.T) {
	def, ok := Lookup("bytes")
	if !ok {
		t.Fatal("bytes metric not found")
	}

	rows := []Row{
		{Path: "b.md", Metrics: map[string]Value{"bytes": AvailableValue(10)}},
		{Path: "a.md", Metrics: map[string]Value{"bytes": AvailableValue(10)}},
		{Path: "c.md", Metrics: map[string]Value{"bytes": AvailableValue(3)}},
	}

	SortRows(rows, def, OrderDesc)

	want := []string{"a.md", "b.md", "c.md"}
	for i, path := range want {
		if rows[i].Path != path {
			t.Fatalf("row %d path = %q, want %q", i, rows[i].Path, path)
		}
	}
}

func TestSortRows_DefaultOrderPutsHardestFirst(t *testing.T) {
	flesch, _ := Lookup("flesch")
	rows := []Row{
		{Path: "easy.md", Metrics: map[string]Value{"flesch": AvailableValue(90)}},
		{Path: "hard.md", Metrics: map[string]Value{"flesch": AvailableValue(20)}},
	}
	SortRows(rows, flesch, "")
	if rows[0].Path != "hard.md" {
		t.Errorf("flesch default order should be ascending, got %q first", rows[0].Path)
	}

	smog, _ := Lookup("smog")
	rows = []Row{
		{Path: "easy.md", Metrics: map[string]Value{"smog": AvailableValue(5)}},
		{Path: "hard.md", Metrics: map[string]Value{"smog": AvailableValue(15)}},
	}
	SortRows(rows, smog, "")
	if rows[0].Path != "hard.md" {
		t.Errorf("smog default order should be descending, got %q first", rows[0].Path)
	}
}

func TestSortRows_AvailableBeforeUnavailable(t *testing.T) {
	def, ok := Lookup("flesch")
	if !ok {
		t.Fatal("flesch metric not found")
	}

	rows := []Row{
		{Path: "a.md", Metrics: map[string]Value{"flesch": UnavailableValue()}},
		{Path: "b.md", Metrics: map[string]Value{"flesch": AvailableValue(40)}},
	}

	SortRows(rows, def, OrderAsc)
	if rows[0].Path != "b.md" {
		t.Fatalf("available row should sort first, got %q", rows[0].Path)
	}
}

func TestLimitRows(t *testing.T) {
	rows := []Row{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}}
	if limited := LimitRows(rows, 2); len(limited) != 2 {
		t.Fatalf("len = %d, want 2", len(limited))
	}
	if limited := LimitRows(rows, 0); len(limited) != 3 {
		t.Fatalf("len = %d, want 3", len(limited))
	}
}

func TestFormatValue(t *testing.T) {
	intDef, _ := Lookup("words")
	floatDef, ok := Lookup("dale-chall")
	if !ok {
		t.Fatal("dale-chall metric not found")
	}

	if got := FormatValue(intDef, AvailableValue(12.4)); got != "12" {
		t.Fatalf("int format = %q, want 12", got)
	}
	if got := FormatValue(floatDef, AvailableValue(12.44)); got != "12.4" {
		t.Fatalf("float format = %q, want 12.4", got)
	}
	if got := FormatValue(floatDef, UnavailableValue()); got != "-" {
		t.Fatalf("unavailable format = %q, want -", got)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	if err := os.WriteFile(a, []byte("The cat sat.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	defs, err := Resolve([]string{"words", "ari"})
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Collect([]string{a, b}, defs, readability.New())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if v := rows[0].Metrics["automated-readability"]; !v.Available || v.Number != -4 {
		t.Errorf("a.md ari = %+v, want -4", v)
	}
	if v := rows[1].Metrics["automated-readability"]; v.Available {
		t.Errorf("empty file should have no score, got %+v", v)
	}
	if v := rows[1].Metrics["words"]; !v.Available || v.Number != 0 {
		t.Errorf("empty file words = %+v", v)
	}

	if _, err := Collect([]string{filepath.Join(dir, "missing.md")}, defs, readability.New()); err == nil {
		t.Error("expected error for missing file")
	}
}
