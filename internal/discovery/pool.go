package discovery

import (
	"runtime"
	"sync"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// Stats accumulates per-document-type counts and totals across a run.
type Stats struct {
	MarkdownFiles int
	JSFiles       int
	JavaFiles     int
	PythonFiles   int
	TotalNodes    int
	Errors        int
}

// TotalFiles sums every successfully processed file count.
func (s *Stats) TotalFiles() int {
	return s.MarkdownFiles + s.JSFiles + s.JavaFiles + s.PythonFiles
}

// addSuccess records one successfully processed file of docType with
// nodeCount total AST nodes.
func (s *Stats) addSuccess(docType ast.DocumentType, nodeCount int) {
	switch docType {
	case ast.DocMarkdown:
		s.MarkdownFiles++
	case ast.DocJavaScript, ast.DocTypeScript:
		s.JSFiles++
	case ast.DocJava:
		s.JavaFiles++
	case ast.DocPython:
		s.PythonFiles++
	}
	s.TotalNodes += nodeCount
}

// ProcessFunc processes a single discovered file, returning the
// resulting document's node count.
type ProcessFunc func(f File) (nodeCount int, err error)

// ResultHandler is called once per processed file, in no particular
// order, with the file, its outcome, and any processing error.
type ResultHandler func(f File, nodeCount int, err error)

// ProcessSequential runs process over files one at a time, in order,
// reporting each outcome via onResult (which may be nil).
func ProcessSequential(files []File, process ProcessFunc, onResult ResultHandler) Stats {
	var stats Stats
	for _, f := range files {
		nodeCount, err := process(f)
		if err != nil {
			stats.Errors++
		} else {
			stats.addSuccess(f.DocType, nodeCount)
		}
		if onResult != nil {
			onResult(f, nodeCount, err)
		}
	}
	return stats
}

// ProcessParallel fans files out across a bounded pool of worker
// goroutines (sized to GOMAXPROCS, the idiomatic Go equivalent of the
// fixed thread-chunking the original uses) and merges their outcomes
// into a single Stats value. onResult, if non-nil, is invoked once per
// file from whichever goroutine processed it — callers needing
// ordering or exclusive access must synchronize it themselves.
func ProcessParallel(files []File, process ProcessFunc, onResult ResultHandler) Stats {
	return ProcessParallelN(files, process, onResult, 0)
}

// ProcessParallelN is ProcessParallel with an explicit worker cap.
// maxWorkers <= 0 falls back to GOMAXPROCS.
func ProcessParallelN(files []File, process ProcessFunc, onResult ResultHandler, maxWorkers int) Stats {
	numWorkers := maxWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}
	if numWorkers == 0 {
		return Stats{}
	}

	jobs := make(chan File, len(files))
	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	var (
		mu    sync.Mutex
		stats Stats
		wg    sync.WaitGroup
	)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				nodeCount, err := process(f)

				mu.Lock()
				if err != nil {
					stats.Errors++
				} else {
					stats.addSuccess(f.DocType, nodeCount)
				}
				mu.Unlock()

				if onResult != nil {
					onResult(f, nodeCount, err)
				}
			}
		}()
	}

	wg.Wait()
	return stats
}
