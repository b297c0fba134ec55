package driver_test

import (
	"context"
	"strings"
	"testing"

	"vb6cst/internal/driver"
)

func TestCheckDirReportsPerFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.bas", "Dim a As Integer\r\n")
	writeFile(t, dir, "broken.bas", "Dim a\n@@@\n")

	results, err := driver.CheckDir(context.Background(), dir, 2, nil, 0, nil)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// ListSourceFiles sorts, so broken.bas comes first.
	broken, clean := results[0], results[1]
	if !strings.HasSuffix(broken.Path, "broken.bas") {
		t.Fatalf("unexpected order: %s first", broken.Path)
	}
	if !broken.HasErrors || broken.DiagnosticCount == 0 {
		t.Errorf("broken.bas: HasErrors=%v count=%d", broken.HasErrors, broken.DiagnosticCount)
	}
	if broken.Golden == "" {
		t.Error("broken.bas: empty golden rendering")
	}
	if clean.HasErrors || clean.DiagnosticCount != 0 {
		t.Errorf("clean.bas: HasErrors=%v count=%d", clean.HasErrors, clean.DiagnosticCount)
	}
}

func TestCheckDirSecondRunHitsCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("vb6cst-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "mod.bas", "Dim a\n@@@\n")

	first, err := driver.CheckDir(context.Background(), dir, 1, nil, 0, cache)
	if err != nil {
		t.Fatalf("first CheckDir: %v", err)
	}
	if first[0].Cached {
		t.Error("first run reported a cache hit")
	}

	second, err := driver.CheckDir(context.Background(), dir, 1, nil, 0, cache)
	if err != nil {
		t.Fatalf("second CheckDir: %v", err)
	}
	if !second[0].Cached {
		t.Fatal("second run over unchanged file missed the cache")
	}
	if second[0].DiagnosticCount != first[0].DiagnosticCount ||
		second[0].HasErrors != first[0].HasErrors ||
		second[0].Golden != first[0].Golden {
		t.Error("cached payload differs from the parsed result")
	}
}

func TestCheckDirChangedFileMissesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("vb6cst-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "mod.bas", "Dim a\n")
	if _, err := driver.CheckDir(context.Background(), dir, 1, nil, 0, cache); err != nil {
		t.Fatalf("first CheckDir: %v", err)
	}

	writeFile(t, dir, "mod.bas", "Dim b\n")
	results, err := driver.CheckDir(context.Background(), dir, 1, nil, 0, cache)
	if err != nil {
		t.Fatalf("second CheckDir: %v", err)
	}
	if results[0].Cached {
		t.Error("changed content reported a cache hit")
	}
}
