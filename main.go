package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ebichart/internal"
	"ebichart/internal/common"
	"ebichart/internal/config"
	"ebichart/internal/ui"
	"ebichart/internal/util"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/temidaradev/esset/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const baseFontSize = 12

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "ebichart",
		Short:         "Interactive coin price, market cap and volume chart",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", common.DefaultConfigPath, "Path to config file")
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("ebichart failed")
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies .env overrides and sets up logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		util.NewLogger().Error(err, common.ErrCodeConfigLoadFailed, common.ErrMsgConfigLoadFailed, "Failed to load config", "path", configPath)
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		util.NewLogger().Error(err, common.ErrCodeConfigLoadFailed, common.ErrMsgConfigLoadFailed, "Failed to load .env")
		return nil, err
	}

	// Logs go to stderr; export may write the chart to stdout.
	if err := util.Setup(cfg.LogLevel, os.Stderr); err != nil {
		util.NewLogger().Error(err, common.ErrCodeInvalidLogLevel, common.ErrMsgInvalidLogLevel, "Invalid log level in config", "log_level", cfg.LogLevel)
		return nil, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := util.NewLogger()

	fontFace, err := esset.GetFont(goregular.TTF, baseFontSize)
	if err != nil {
		logger.Error(err, common.ErrCodeFontLoadFailed, common.ErrMsgFontLoadFailed, "Font could not be loaded", "size", baseFontSize)
		return err
	}

	logger.Debug("Glyph caching...")
	ui.PreloadGlyphs(fontFace)
	logger.Debug("Glyph caching done.")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := internal.NewLoader(cfg.GetFetchTimeout(), logger)
	g := ui.NewGame(cfg, logger, loader, fontFace)
	g.Load(ctx, cfg.GetDataSource())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
		g.Wait()
		g.SaveState()
		os.Exit(0)
	}()

	width, height := cfg.GetWindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.GetWindowTitle())
	if err := ebiten.RunGame(g); err != nil {
		logger.Error(err, common.ErrCodeWindowFailed, common.ErrMsgWindowFailed, "Window closed with error")
		return err
	}

	g.SaveState()
	return nil
}
