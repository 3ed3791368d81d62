// Package catalog lists the configured workout programs and loads their
// summaries for the selection screen.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/liftbook/internal/program"
	"github.com/five82/liftbook/internal/source"
)

// DefaultProgramIDs is the built-in program list used when configuration
// does not name any.
var DefaultProgramIDs = []string{"arturos-workout", "mohamed-ali-workout"}

const (
	defaultFetchTimeout = 10 * time.Second
	maxConcurrentFetch  = 8
)

// Options configure a Catalog.
type Options struct {
	IDs          []string      // empty uses DefaultProgramIDs
	FetchTimeout time.Duration // per program; zero uses the default
	Logger       *slog.Logger
}

// Catalog owns the fixed program list and the summary loader.
type Catalog struct {
	fetcher source.Fetcher
	ids     []string
	timeout time.Duration
	log     *slog.Logger
}

// New builds a Catalog over fetcher.
func New(fetcher source.Fetcher, opts Options) *Catalog {
	ids := opts.IDs
	if len(ids) == 0 {
		ids = DefaultProgramIDs
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{
		fetcher: fetcher,
		ids:     append([]string(nil), ids...),
		timeout: timeout,
		log:     log,
	}
}

// List returns the configured program identifiers.
func (c *Catalog) List() []string {
	return append([]string(nil), c.ids...)
}

// Single reports whether the catalog holds exactly one program, in which case
// the selection screen is skipped.
func (c *Catalog) Single() (string, bool) {
	if len(c.ids) == 1 {
		return c.ids[0], true
	}
	return "", false
}

// LoadSummaries fetches every program concurrently and returns the summaries
// of those that loaded, in input order. Failed programs are logged and
// dropped; they never abort the batch.
func (c *Catalog) LoadSummaries(ctx context.Context, ids []string) []program.Summary {
	slots := make([]*program.Summary, len(ids))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetch)
	for i, id := range ids {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			doc, err := c.fetcher.FetchProgram(fetchCtx, id)
			if err != nil {
				c.log.Warn("program unavailable", "program", id, "error", err)
				return nil
			}
			sum := doc.Summary(id)
			slots[i] = &sum
			return nil
		})
	}
	_ = g.Wait()

	out := make([]program.Summary, 0, len(ids))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	c.log.Debug("catalog loaded", "requested", len(ids), "loaded", len(out))
	return out
}
