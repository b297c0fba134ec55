package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"vb6cst/internal/diag"
)

// sourceExtensions are the module kinds a VB6 project can contain.
var sourceExtensions = []string{".bas", ".cls", ".frm"}

// ListSourceFiles returns every VB6 source file under dir, sorted for
// deterministic processing order. A nil exts list means the standard
// .bas/.cls/.frm set; configured extensions must include the dot.
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = sourceExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range exts {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// DirResult is the per-file outcome of a directory parse. Err is set
// when the file could not be read; Tree and Bag are set otherwise.
type DirResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

// ParseDir parses every VB6 source file under dir, up to jobs files in
// parallel (GOMAXPROCS when jobs <= 0). Results come back in the same
// deterministic order as ListSourceFiles. Per-file failures land in
// the result slice; only directory walking and cancellation surface as
// an error.
func ParseDir(ctx context.Context, dir string, jobs int) ([]DirResult, error) {
	files, err := ListSourceFiles(dir, nil)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own slot; no mutex needed.
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := ParseFile(path, diag.DefaultLimit)
			results[i] = DirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
