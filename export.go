package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ebichart/internal"
	"ebichart/internal/common"
	"ebichart/internal/export"
	"ebichart/internal/util"

	"github.com/spf13/cobra"
)

type exportOptions struct {
	coin   string
	metric string
	from   string
	to     string
	format string
	out    string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the chart for one view to an SVG or PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.coin, "coin", "", "Coin id (defaults to default_coin)")
	cmd.Flags().StringVar(&opts.metric, "metric", "", "price_usd, market_cap or 24h_vol (defaults to default_metric)")
	cmd.Flags().StringVar(&opts.from, "from", "", "Range start, dd/mm/yyyy (defaults to first record)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Range end, dd/mm/yyyy (defaults to last record)")
	cmd.Flags().StringVar(&opts.format, "format", "svg", "svg or png")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "Output file, - for stdout")
	return cmd
}

func runExport(ctx context.Context, opts *exportOptions, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := util.NewLogger()

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	ds, err := internal.NewLoader(cfg.GetFetchTimeout(), logger).Load(ctx, cfg.GetDataSource())
	if err != nil {
		logger.Error(err, common.ErrCodeDataLoadFailed, common.ErrMsgDataLoadFailed, "Could not load coin data", "source", cfg.GetDataSource())
		return err
	}

	coin, metric := opts.coin, opts.metric
	if coin == "" {
		coin = cfg.DefaultCoin
	}
	if metric == "" {
		metric = cfg.DefaultMetric
	}
	view, err := export.ParseView(ds, coin, metric, opts.from, opts.to)
	if err != nil {
		logger.Warn(common.ErrCodeInvalidView, common.ErrMsgInvalidView, err.Error())
		return err
	}

	var w io.Writer = stdout
	if opts.out != "-" {
		file, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	return export.Render(w, ds, view, cfg.GetYTicks(), format, logger)
}
