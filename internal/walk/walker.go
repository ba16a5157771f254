package walk

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Options configures a Walker.
type Options struct {
	// DryRun computes and reports renames without applying them.
	DryRun bool
	// Serial disables parallel fan-out; traversal order is then fully
	// deterministic: self first, then children in listing order, depth
	// first.
	Serial bool
	// Workers bounds the number of concurrently traversed paths when
	// parallel; 0 means GOMAXPROCS.
	Workers int
	// Logger receives debug traces; nil discards them.
	Logger *slog.Logger
}

// Walker applies the sanitize engine across directory subtrees.
type Walker struct {
	fs     FS
	dryRun bool
	serial bool
	sem    *semaphore.Weighted
	log    *slog.Logger
}

// New creates a Walker over fsys.
func New(fsys FS, opts Options) *Walker {
	w := &Walker{
		fs:     fsys,
		dryRun: opts.DryRun,
		serial: opts.Serial,
		log:    opts.Logger,
	}
	if w.log == nil {
		w.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !opts.Serial {
		workers := opts.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		w.sem = semaphore.NewWeighted(int64(workers))
	}
	return w
}

// Run visits every path depth first and returns one outcome per visited
// entry. Each root is renamed before its children so descendants are
// recorded under the parent's new name. Per-item failures are recorded in
// the result rather than aborting the walk; a run always completes, and no
// cancellation mechanism exists. Under parallel execution the aggregate is
// complete but callers must not rely on its ordering, and must not pass
// overlapping or nested roots in one invocation, since a directory rename
// and a rename inside that directory could race.
func (w *Walker) Run(_ context.Context, paths []string) []Outcome {
	results := make([][]Outcome, len(paths))
	w.fanOut(len(paths), func(i int) {
		w.log.Debug("checking", "path", paths[i])
		results[i] = w.visit(paths[i])
	})
	return flatten(results)
}

// visit dispatches one path to the directory walk or to a single apply.
func (w *Walker) visit(path string) []Outcome {
	if !w.fs.IsDir(path) {
		return []Outcome{w.apply(path)}
	}
	return w.visitDir(path)
}

// visitDir renames dir itself, then its children. An enumeration failure
// yields a single Error outcome for dir and stops descent there without
// affecting siblings elsewhere in the tree.
func (w *Walker) visitDir(dir string) []Outcome {
	self := w.apply(dir)
	if self.Kind == KindChanged {
		dir = self.Modified
	}
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return []Outcome{self, TraversalError(dir, "reading directory: "+err.Error())}
	}
	results := make([][]Outcome, len(entries))
	w.fanOut(len(entries), func(i int) {
		child := filepath.Join(dir, entries[i].Name())
		if entries[i].IsDir() {
			results[i] = w.visitDir(child)
		} else {
			results[i] = []Outcome{w.apply(child)}
		}
	})
	return append([]Outcome{self}, flatten(results)...)
}

// fanOut runs fn(0..n-1), spawning a goroutine per index while worker slots
// are available and falling back to inline execution otherwise. The inline
// fallback keeps nested fan-outs deadlock-free under the bounded semaphore.
// Each index writes only its own result slot, so no lock is needed and the
// merged output keeps listing order even when execution is concurrent.
func (w *Walker) fanOut(n int, fn func(i int)) {
	if w.serial || w.sem == nil {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	for i := 0; i < n; i++ {
		if w.sem.TryAcquire(1) {
			i := i
			g.Go(func() error {
				defer w.sem.Release(1)
				fn(i)
				return nil
			})
		} else {
			fn(i)
		}
	}
	_ = g.Wait()
}

func flatten(results [][]Outcome) []Outcome {
	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]Outcome, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
