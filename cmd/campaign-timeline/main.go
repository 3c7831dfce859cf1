// Command campaign-timeline lays out CRM campaigns on a year or month
// timeline and renders the result as SVG.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campaigntimeline/internal/calendar"
	"campaigntimeline/internal/campaign"
	"campaigntimeline/internal/config"
	"campaigntimeline/internal/logging"
	"campaigntimeline/internal/timeline"
)

var (
	// Global flags
	debug      bool
	configPath string

	// View flags shared by render, layout and markers
	dateFlag   string
	zoomFlag   string
	inputFile  string
	outputFile string
	bufferDays int

	logger *zap.Logger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "campaign-timeline",
	Short: "Lay out campaigns on a zoomable calendar timeline",
	Long: `campaign-timeline reads campaigns from a CSV or YAML file, packs them into
non-overlapping rows for a year or month view, and renders the result.

Example:
  campaign-timeline render --input campaigns.csv --date 2024-03-01 --zoom month
  campaign-timeline markers --date 2024-01-01 --zoom year`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(debug)
		if err != nil {
			return err
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		logger.Debug("Configuration loaded",
			zap.String("config", configPath),
			zap.String("locale", cfg.Timeline.Locale),
			zap.Int("buffer_days", cfg.Timeline.BufferDays))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (optional)")

	for _, cmd := range []*cobra.Command{renderCmd, layoutCmd, markersCmd} {
		cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date, YYYY-MM-DD (default today)")
		cmd.Flags().StringVar(&zoomFlag, "zoom", "year", "Zoom level: year or month")
	}
	for _, cmd := range []*cobra.Command{renderCmd, layoutCmd, listCmd} {
		cmd.Flags().StringVar(&inputFile, "input", "", "CSV or YAML file with campaigns (required)")
		_ = cmd.MarkFlagRequired("input")
	}
	for _, cmd := range []*cobra.Command{renderCmd, layoutCmd} {
		cmd.Flags().IntVar(&bufferDays, "buffer", -1, "Empty days kept between campaigns in a row (default from config)")
	}
	renderCmd.Flags().StringVar(&outputFile, "output", "", "Output SVG filename (default: input name with .svg)")
	layoutCmd.Flags().StringVar(&outputFile, "output", "", "Output YAML filename (default: stdout)")

	rootCmd.AddCommand(renderCmd, layoutCmd, markersCmd, listCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// viewFromFlags resolves --date and --zoom. An empty date means today.
func viewFromFlags() (time.Time, timeline.ZoomLevel, error) {
	zoom, err := timeline.ParseZoomLevel(zoomFlag)
	if err != nil {
		return time.Time{}, 0, err
	}
	if strings.TrimSpace(dateFlag) == "" {
		return calendar.Normalize(time.Now()), zoom, nil
	}
	ref, err := calendar.Parse(dateFlag)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid --date: %w", err)
	}
	return ref, zoom, nil
}

// layoutFromFlags loads --input and lays it out for the requested view.
func layoutFromFlags() (timeline.Layout, time.Time, timeline.ZoomLevel, error) {
	ref, zoom, err := viewFromFlags()
	if err != nil {
		return timeline.Layout{}, time.Time{}, 0, err
	}

	records, err := campaign.LoadFile(inputFile)
	if err != nil {
		return timeline.Layout{}, time.Time{}, 0, err
	}
	logger.Debug("Loaded campaigns", zap.Int("count", len(records)), zap.String("file", inputFile))

	buffer := cfg.Timeline.BufferDays
	if bufferDays >= 0 {
		buffer = bufferDays
	}
	layout := timeline.LayoutCampaigns(campaign.Campaigns(records, logger), ref, zoom,
		timeline.WithBufferDays(buffer))

	logger.Info("Campaigns laid out",
		zap.String("zoom", zoom.String()),
		zap.String("date", ref.Format("2006-01-02")),
		zap.Int("visible", len(layout.Flat)),
		zap.Int("hidden", len(layout.Hidden)),
		zap.Int("rows", layout.RowCount()))
	return layout, ref, zoom, nil
}

// getOutputFilename returns outputFile when set, otherwise the input file's
// base name with ext (e.g. "data.csv" becomes "data.svg").
func getOutputFilename(input, outputFile, ext string) string {
	if outputFile != "" {
		return outputFile
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
