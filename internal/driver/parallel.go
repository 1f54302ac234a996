package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sable/internal/diag"
	"sable/internal/source"
)

// SourceExt is the file extension the driver picks up.
const SourceExt = ".sb"

// listSableFiles returns every *.sb file under dir, sorted for a
// deterministic result order.
func listSableFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ListFiles returns the sorted source files a directory run would
// visit, for callers that size progress displays up front.
func ListFiles(dir string) ([]string, error) {
	return listSableFiles(dir)
}

// CheckDir runs the full pipeline over every source file under dir in
// parallel. Each goroutine writes only its own result index, so no
// further synchronization is needed. Files that fail to load still get
// a result, carrying an I/O diagnostic instead of tokens.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	files, err := listSableFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	loaded := make(map[string]*source.File, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		file, err := source.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		loaded[path] = file
		fileSet.Add(file)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.maxDiagnostics())
				diag.ReportError(
					diag.BagReporter{Bag: bag, File: path},
					diag.IOLoadFile, source.Loc{},
					"failed to load file: "+loadErr.Error(),
				).Emit()
				results[i] = &Result{Path: path, Bag: bag}
				opts.emit(Event{Path: path, Stage: StageLex, Status: StatusFailed})
				return nil
			}

			file := loaded[path]
			if cached, ok := opts.replayCached(path, file); ok {
				results[i] = cached
				opts.emit(Event{Path: path, Stage: StageCheck, Status: StatusCached})
				return nil
			}

			res := &Result{Path: path, File: file, Bag: diag.NewBag(opts.maxDiagnostics())}
			opts.emit(Event{Path: path, Stage: StageLex, Status: StatusRunning})
			res.lex()
			opts.emit(Event{Path: path, Stage: StageParse, Status: StatusRunning})
			res.parse(opts)
			opts.emit(Event{Path: path, Stage: StageCheck, Status: StatusRunning})
			res.check()

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusFailed
			}
			opts.emit(Event{Path: path, Stage: StageCheck, Status: status})
			opts.storeCached(path, file, res)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func (o Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress(ev)
	}
}
