package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"vb6cst/internal/cst"
	"vb6cst/internal/diagfmt"
	"vb6cst/internal/source"
)

// CheckResult is the per-file outcome of a directory check. Err is set
// when the file could not be read; the remaining fields summarize the
// diagnostics otherwise.
type CheckResult struct {
	Path            string
	Cached          bool
	DiagnosticCount int
	HasErrors       bool

	// Golden is the plain-text rendering of the diagnostics, suitable
	// for printing or comparing across runs.
	Golden string

	Err error
}

// CheckDir parses every matching source file under dir and summarizes
// its diagnostics, up to jobs files in parallel (GOMAXPROCS when
// jobs <= 0). A nil exts list means the standard .bas/.cls/.frm set.
// maxDiagnostics caps each file's bag; zero means unlimited. When
// cache is non-nil, files whose content digest already has a payload
// are answered from the cache without re-parsing; a cached payload
// keeps the diagnostic cap in effect when it was written.
func CheckDir(ctx context.Context, dir string, jobs int, exts []string, maxDiagnostics int, cache *DiskCache) ([]CheckResult, error) {
	files, err := ListSourceFiles(dir, exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkOne(path, maxDiagnostics, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(path string, maxDiagnostics int, cache *DiskCache) CheckResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return CheckResult{Path: path, Err: err}
	}
	digest := Digest(sha256.Sum256(content))

	if cache != nil {
		var payload DiskPayload
		if ok, err := cache.Get(digest, &payload); err == nil && ok {
			return CheckResult{
				Path:            path,
				Cached:          true,
				DiagnosticCount: payload.DiagnosticCount,
				HasErrors:       payload.HasErrors,
				Golden:          payload.Golden,
			}
		}
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.Add(path, content, 0))
	_, bag := cst.ParseFileLimit(file, maxDiagnostics)

	var golden bytes.Buffer
	if bag.Len() > 0 {
		diagfmt.Pretty(&golden, bag, fs, diagfmt.PrettyOpts{Context: 1})
	}

	res := CheckResult{
		Path:            path,
		DiagnosticCount: bag.Len(),
		HasErrors:       bag.HasErrors(),
		Golden:          golden.String(),
	}
	if cache != nil {
		// A failed cache write only costs a re-parse next time.
		_ = cache.Put(digest, &DiskPayload{
			Schema:          diskCacheSchemaVersion,
			Path:            path,
			ContentHash:     digest,
			DiagnosticCount: res.DiagnosticCount,
			HasErrors:       res.HasErrors,
			Golden:          res.Golden,
		})
	}
	return res
}
