package analyzer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/quantacode/qoc/internal/parser"
)

// skipDirs are directory names excluded from batch scans.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
}

// FileError records a per-file analysis failure within a batch scan.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Batch holds the outcome of a directory scan: successful results and the
// per-file failures that were skipped, partitioned explicitly so neither
// side is silently swallowed.
type Batch struct {
	Results  []*FileResult
	Failures []FileError
}

// AnalyzeDir analyzes every supported file under dir, optionally recursing
// into subdirectories. Files whose extension resolves to no language or to a
// language without a registered parser are not candidates at all. Candidate
// files that fail hard are recorded in Batch.Failures and never abort the
// scan.
//
// Analysis runs on a worker pool with one parser registry per worker, since
// the native parser handles are not reentrant. Results are ordered by path
// so repeated scans of an unchanged tree are bit-identical.
//
// An empty candidate set returns ErrNoFiles so callers can distinguish
// "nothing to analyze" from an empty-but-successful scan.
func (a *Analyzer) AnalyzeDir(dir string, recursive bool) (*Batch, error) {
	files, err := a.collectFiles(dir, recursive)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}

	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	tasks := make(chan string)
	type outcome struct {
		result  *FileResult
		failure *FileError
	}
	outcomes := make(chan outcome, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		// Each worker gets its own registry; the weight table is shared
		// read-only.
		worker := &Analyzer{
			weights:     a.weights,
			registry:    a.newRegistry(),
			newRegistry: a.newRegistry,
		}
		go func() {
			defer wg.Done()
			for path := range tasks {
				result, err := worker.AnalyzeFile(path)
				if err != nil {
					outcomes <- outcome{failure: &FileError{Path: path, Err: err}}
					continue
				}
				outcomes <- outcome{result: result}
			}
		}()
	}

	go func() {
		for _, f := range files {
			tasks <- f
		}
		close(tasks)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	batch := &Batch{}
	for o := range outcomes {
		if o.result != nil {
			batch.Results = append(batch.Results, o.result)
		}
		if o.failure != nil {
			batch.Failures = append(batch.Failures, *o.failure)
		}
	}

	sort.Slice(batch.Results, func(i, j int) bool {
		return batch.Results[i].Path < batch.Results[j].Path
	})
	sort.Slice(batch.Failures, func(i, j int) bool {
		return batch.Failures[i].Path < batch.Failures[j].Path
	})

	return batch, nil
}

// collectFiles gathers candidate file paths under dir: files whose language
// resolves and has a registered parser.
func (a *Analyzer) collectFiles(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", dir)
	}

	var files []string
	add := func(path string) {
		lang, ok := parser.Detect(path)
		if !ok || !a.registry.Supports(lang) {
			return
		}
		files = append(files, path)
	}

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			add(filepath.Join(dir, entry.Name()))
		}
		return files, nil
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		add(path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return files, nil
}
