package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/five82/liftbook/internal/catalog"
	"github.com/five82/liftbook/internal/config"
	"github.com/five82/liftbook/internal/logging"
	"github.com/five82/liftbook/internal/prefs"
	"github.com/five82/liftbook/internal/source"
	"github.com/five82/liftbook/internal/state"
	"github.com/five82/liftbook/internal/ui"
	"github.com/five82/liftbook/internal/web"
)

// Options configure a liftbook command.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/liftbook/prefs.toml

	// Program opens one program directly in the TUI.
	Program string

	// LogOutput receives logs for serve and list. Nil means stderr.
	LogOutput io.Writer
}

// env is everything a command needs after configuration is resolved.
type env struct {
	cfg     config.Config
	log     *slog.Logger
	fetcher source.Fetcher
	catalog *catalog.Catalog
}

func setup(opts Options) (env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return env{}, fmt.Errorf("load config: %w", err)
	}
	return newEnv(cfg, opts.logOutput())
}

func newEnv(cfg config.Config, logOut io.Writer) (env, error) {
	log, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		return env{}, fmt.Errorf("init logging: %w", err)
	}

	fetcher, err := newFetcher(cfg, log)
	if err != nil {
		return env{}, err
	}

	cat := catalog.New(fetcher, catalog.Options{
		IDs:          cfg.Programs,
		FetchTimeout: cfg.FetchTimeout,
		Logger:       log,
	})
	return env{cfg: cfg, log: log, fetcher: fetcher, catalog: cat}, nil
}

func newFetcher(cfg config.Config, log *slog.Logger) (source.Fetcher, error) {
	if cfg.UsesHTTP() {
		src, err := source.NewHTTP(cfg.DataURL, cfg.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("init http source: %w", err)
		}
		return src, nil
	}
	src, err := source.NewDir(cfg.DataDir)
	if errors.Is(err, fs.ErrNotExist) {
		// Every program then fails on its own and the catalog shows as empty.
		log.Warn("data dir missing", "data_dir", cfg.DataDir)
		return source.NewFS(os.DirFS(cfg.DataDir)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("init data dir: %w", err)
	}
	return src, nil
}

func (o Options) logOutput() io.Writer {
	if o.LogOutput != nil {
		return o.LogOutput
	}
	return os.Stderr
}

// Run boots the liftbook TUI until the user quits or ctx is cancelled.
// Logs go to the configured log file so they never draw over the screen.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	e, err := newEnv(cfg, logFile)
	if err != nil {
		return err
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	e.log.Info("starting tui", "programs", len(e.catalog.List()), "program", opts.Program)

	return ui.Run(ui.Options{
		Context:      ctx,
		Catalog:      e.catalog,
		Fetcher:      e.fetcher,
		Store:        &state.Store{},
		Logger:       e.log,
		Program:      opts.Program,
		FetchTimeout: e.cfg.FetchTimeout,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		LastProgram:  userPrefs.LastProgram,
		LogPath:      e.cfg.LogFile,
	})
}

// Serve runs the HTML server until ctx is cancelled. An empty addr uses the
// configured listen address.
func Serve(ctx context.Context, opts Options, addr string) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	if strings.TrimSpace(addr) == "" {
		addr = e.cfg.ListenAddr
	}

	store := &state.Store{}
	srv, err := web.New(e.catalog, e.fetcher, store, e.log, web.Options{
		CatalogTTL:   defaultRefreshInterval,
		FetchTimeout: e.cfg.FetchTimeout,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	StartRefresher(ctx, store, e.catalog, e.log, defaultRefreshInterval)
	return srv.ListenAndServe(ctx, addr)
}

// List loads the catalog once and writes it to w as a table.
func List(ctx context.Context, opts Options, w io.Writer) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}

	store := &state.Store{}
	refreshCatalog(ctx, store, e.catalog)
	snap := store.Snapshot()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGOAL")
	for _, sum := range snap.Summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", sum.ID, sum.Name, sum.Goals.Primary)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if n := snap.Failed(); n > 0 {
		fmt.Fprintf(w, "%d program(s) unavailable\n", n)
	}
	if len(snap.Summaries) == 0 {
		return fmt.Errorf("no programs could be loaded")
	}
	return nil
}
