package driver_test

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"vb6cst/internal/driver"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mod.bas", "Dim x As Integer\r\n")

	res, err := driver.Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Tokens.Len() != 8 {
		t.Errorf("expected 8 tokens (7 + newline), got %d", res.Tokens.Len())
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Bag.Items())
	}
}

func TestParseFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := "Private Sub Form_Load()\r\n    MsgBox \"hi\"\r\nEnd Sub\r\n"
	path := writeFile(t, dir, "form.frm", src)

	res, err := driver.ParseFile(path, 0)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if res.Tree == nil {
		t.Fatalf("expected a tree")
	}
	if got := res.Tree.Text(); got != src {
		t.Errorf("round trip failed:\n%q\n%q", src, got)
	}
}

func TestParseFileHonorsDiagnosticLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.bas", "@@@\r\n@@@\r\n@@@\r\n")

	res, err := driver.ParseFile(path, 1)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Errorf("expected the bag capped at 1 diagnostic, got %d", res.Bag.Len())
	}

	unlimited, err := driver.ParseFile(path, 0)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if unlimited.Bag.Len() < 3 {
		t.Errorf("expected at least 3 diagnostics uncapped, got %d", unlimited.Bag.Len())
	}
}

func TestParseProject(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.vbp", "Type=Exe\r\nStartup=\"Form1\"\r\n")

	res, err := driver.ParseProject(path, 0)
	if err != nil {
		t.Fatalf("ParseProject: %v", err)
	}
	if res.Project.Startup != "Form1" {
		t.Errorf("wrong startup: %q", res.Project.Startup)
	}
}

func TestParseDirIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.bas", "Dim b\r\n")
	writeFile(t, dir, "a.cls", "Dim a\r\n")
	writeFile(t, dir, "ignored.txt", "not source")

	results, err := driver.ParseDir(context.Background(), dir, 2)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.cls" || filepath.Base(results[1].Path) != "b.bas" {
		t.Errorf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
		if r.Result == nil || r.Result.Tree == nil {
			t.Errorf("%s: missing tree", r.Path)
		}
	}
}

func TestParseDirEmpty(t *testing.T) {
	results, err := driver.ParseDir(context.Background(), t.TempDir(), 0)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if results != nil {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("vb6cst-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := sha256.Sum256([]byte("Dim x\r\n"))
	in := &driver.DiskPayload{
		Path:            "mod.bas",
		ContentHash:     key,
		DiagnosticCount: 0,
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out driver.DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if out.Path != "mod.bas" || out.ContentHash != key {
		t.Errorf("payload mismatch: %+v", out)
	}

	var missing driver.DiskPayload
	ok, err = cache.Get(sha256.Sum256([]byte("other")), &missing)
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if ok {
		t.Errorf("expected a miss for unknown key")
	}
}
