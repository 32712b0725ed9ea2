package fetcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"stepFetcher/pkg/config"
	"stepFetcher/pkg/logger"
)

const doneMessage = "All images downloaded!\n"

// Fetcher downloads a list of URLs one after another into a single folder.
// A failed step is reported and skipped, it never stops the run.
type Fetcher struct {
	tasks  []Task
	folder string
	prefix string
	ext    string

	userAgent   string
	timeout     time.Duration
	showBar     bool
	barOutput   io.Writer
	stagingRoot string

	store   *Store
	getter  getter
	printer printer
	log     *logger.Logger

	stats Statistics
}

type Option func(*Fetcher)

// WithNaming changes the "step-" prefix and "png" extension of saved files.
func WithNaming(prefix, ext string) Option {
	return func(f *Fetcher) {
		f.prefix = prefix
		f.ext = ext
	}
}

// WithTimeout bounds every single step. Zero means no limit.
func WithTimeout(d time.Duration) Option { return func(f *Fetcher) { f.timeout = d } }

func WithUserAgent(ua string) Option { return func(f *Fetcher) { f.userAgent = ua } }

// WithProgress draws a bar counting finished steps into w.
func WithProgress(enabled bool, w io.Writer) Option {
	return func(f *Fetcher) {
		f.showBar = enabled
		f.barOutput = w
	}
}

func WithLogger(log *logger.Logger) Option { return func(f *Fetcher) { f.log = log } }

func WithStore(s *Store) Option { return func(f *Fetcher) { f.store = s } }

func WithPrinter(p printer) Option { return func(f *Fetcher) { f.printer = p } }

func WithGetter(g getter) Option { return func(f *Fetcher) { f.getter = g } }

// WithStagingDir sets where downloads are kept until they are complete.
// Defaults to the system temp dir.
func WithStagingDir(dir string) Option { return func(f *Fetcher) { f.stagingRoot = dir } }

// New prepares a run and creates the destination folder.
func New(urls []string, folder string, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		folder:    folder,
		prefix:    config.DefaultPrefix,
		ext:       config.DefaultExtension,
		userAgent: config.DefaultUserAgent,
		barOutput: os.Stderr,
		printer:   stdPrinter{},
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.store == nil {
		f.store = NewStore(folder)
	}
	if f.getter == nil {
		f.getter = newGrabGetter(f.userAgent)
	}
	if err := f.store.Prepare(); err != nil {
		return nil, fmt.Errorf("create folder %s: %w", folder, err)
	}
	f.tasks = NewTasks(urls, folder, f.prefix, f.ext)
	return f, nil
}

// NewFromConfig is New with every knob taken from c.
func NewFromConfig(c config.Config, opts ...Option) (*Fetcher, error) {
	base := []Option{
		WithNaming(c.Prefix, c.Extension),
		WithTimeout(c.Timeout),
		WithUserAgent(c.UserAgent),
		WithProgress(c.Progress, os.Stderr),
	}
	return New(c.URLs, c.Folder, append(base, opts...)...)
}

func (f *Fetcher) Tasks() []Task { return f.tasks }

func (f *Fetcher) Stats() Statistics { return f.stats }

// Run processes every task in order and returns one result per task.
// The final message is printed once after the last task whatever happened.
func (f *Fetcher) Run(ctx context.Context) []Result {
	start := time.Now()
	f.stats = Statistics{}

	staging, stagingErr := os.MkdirTemp(f.stagingRoot, "stepfetch-")
	if stagingErr == nil {
		defer os.RemoveAll(staging)
	} else {
		f.log.Error().Err(stagingErr).Msg("no staging dir")
	}

	bar := newProgress(f.showBar, f.barOutput, len(f.tasks))
	results := make([]Result, 0, len(f.tasks))
	for _, task := range f.tasks {
		var res Result
		if stagingErr != nil {
			res = Result{Task: task, Err: fmt.Errorf("staging: %w", stagingErr)}
		} else {
			res = f.fetch(ctx, staging, task)
		}
		f.report(res)
		f.stats.add(res)
		results = append(results, res)
		bar.Increment()
	}
	bar.Complete()

	f.stats.TotalTime = time.Since(start)
	_, _ = f.printer.Printf(doneMessage)
	f.showStats()
	return results
}

// fetch downloads into the staging dir first so that a failed step leaves
// the destination file as it was.
func (f *Fetcher) fetch(ctx context.Context, staging string, task Task) (res Result) {
	start := time.Now()
	res.Task = task
	defer func() { res.Elapsed = time.Since(start) }()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	tmp := filepath.Join(staging, task.Name)
	defer os.Remove(tmp)

	if _, err := f.getter.Get(ctx, task.URL, tmp); err != nil {
		res.Err = err
		return res
	}

	src, err := os.Open(tmp)
	if err != nil {
		res.Err = err
		return res
	}
	defer src.Close()

	replaced := f.store.Exists(task.Name)
	n, err := f.store.Commit(task.Name, src)
	if err != nil {
		res.Err = fmt.Errorf("write %s: %w", task.Path, err)
		return res
	}
	res.Size = n
	f.log.Debug().Int("step", task.Index).Bool("replaced", replaced).Msg("committed")
	return res
}

func (f *Fetcher) report(res Result) {
	i := res.Task.Index
	if !res.OK() {
		_, _ = f.printer.Printf("Error downloading step %d: %v\n", i, res.Err)
		f.log.Debug().Int("step", i).Str("url", res.Task.URL).Err(res.Err).Msg("step failed")
		return
	}
	_, _ = f.printer.Printf("Downloaded step %d\n", i)
	f.log.Debug().
		Int("step", i).
		Str("url", res.Task.URL).
		Str("path", res.Task.Path).
		Str("size", humanize.Bytes(uint64(res.Size))).
		Dur("elapsed", res.Elapsed).
		Msg("step saved")
}

func (f *Fetcher) showStats() {
	f.log.Debug().
		Str("folder", f.folder).
		Int("downloaded", f.stats.Downloaded).
		Int("failed", f.stats.Failed).
		Str("size", humanize.Bytes(uint64(f.stats.TotalSize))).
		Str("time", durationHumanized(f.stats.TotalTime)).
		Msg("run finished")
}
