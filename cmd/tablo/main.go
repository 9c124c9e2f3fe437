package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tablo"
	nt "tablo/entity"
	"tablo/store/arrowipc"
	"tablo/store/duck"
	"tablo/store/mem"
	"tablo/store/payload"
	"tablo/util"
)

// logHost logs the frame heights reported by the widget
type logHost struct {
	ctx    context.Context
	logger nt.Logger
}

func (host logHost) SetFrameHeight(height int) {
	host.logger.Info(host.ctx, "frame height reported", "height", height)
}

func main() {

	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	cfg := &tablo.Config{}
	var logPath string
	var isPayload, sample bool

	cmd := &cobra.Command{
		Use:   "tablo [flags] <file>",
		Short: "Page through a table in the terminal",
		Long: `Loads a csv, tsv, parquet, json or ndjson file into DuckDB, or decodes an
Arrow IPC stream or tagged JSON payload, and shows it as a paginated grid.`,
		Example: `  # Browse a csv
  tablo cities.csv

  # Right to left, 25 rows per page
  tablo --rtl --page-size 25 cities.parquet

  # Write a sample layout
  tablo --sample --layout layout.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			if sample {
				err := util.SampleConfig(tablo.SampleLayout, cfg.Layout, 0644)
				if err != nil {
					return err
				}
				cmd.Printf("sample layout in %s\n", cfg.Layout)
				return nil
			}

			if len(args) != 1 {
				return errors.New("a file to show is required")
			}
			return run(cmd.Context(), cfg, logPath, args[0], isPayload)
		},
	}

	cmd.Flags().StringVar(&cfg.Layout, "layout", "layout.yaml", "Layout file, optional")
	cmd.Flags().StringVar(&logPath, "log", "tablo.log", "Log file")
	cmd.Flags().IntVar(&cfg.PageSize, "page-size", 0, "Rows per page: 10, 25 or 100")
	cmd.Flags().BoolVar(&cfg.RTL, "rtl", false, "Lay out controls right to left")
	cmd.Flags().BoolVar(&isPayload, "payload", false, "Treat file as a tagged JSON payload")
	cmd.Flags().BoolVar(&sample, "sample", false, "Write a sample layout and exit")

	return cmd
}

func run(ctx context.Context, cfg *tablo.Config, logPath, path string, isPayload bool) (err error) {

	if ctx == nil {
		ctx = context.Background()
	}

	logFile := util.OpenLog(logPath, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile}
	ctx = lgr.WithFields(ctx, "run_id", uuid.NewString())
	lgr.Info(ctx, "starting", "path", path, "layout", cfg.Layout)

	store, closer, err := open(ctx, path, isPayload, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to open", err)
		return
	}
	defer closer()

	model, err := cfg.New(ctx, store, logHost{ctx: ctx, logger: lgr}, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to create model", err)
		return
	}

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "program failed", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	lgr.Info(ctx, "stopping")
	return
}

// open picks a store by file type
func open(ctx context.Context, path string, isPayload bool, lgr nt.Logger) (store tablo.Store, closer func(), err error) {

	closer = func() {}
	name := filepath.Base(path)

	if isPayload {
		var tbl *payload.Table
		tbl, err = payload.Load(path)
		if err != nil {
			return
		}
		store = mem.New(name, tbl, lgr)
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".arrow", ".arrows", ".ipc":
		var src nt.TableSource
		src, err = arrowipc.Load(path)
		if err != nil {
			return
		}
		store = mem.New(name, src, lgr)

	default:
		var dk *duck.Duck
		dk, err = duck.New(lgr)
		if err != nil {
			return
		}
		err = dk.Load(path)
		if err != nil {
			dk.Close()
			return
		}
		store = dk
		closer = dk.Close
	}

	lgr.Info(ctx, "opened", "name", name)
	return
}
