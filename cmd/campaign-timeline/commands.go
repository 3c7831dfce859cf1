package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"campaigntimeline/internal/campaign"
	"campaigntimeline/internal/render"
	"campaigntimeline/internal/timeline"
)

// renderCmd writes the SVG timeline
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render campaigns as an SVG timeline",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

// layoutCmd prints the row assignment
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the row assignment of campaigns as YAML",
	Args:  cobra.NoArgs,
	RunE:  runLayout,
}

// markersCmd prints the axis markers
var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Print the axis markers of a view",
	Long: `Prints one line per axis marker: months and ISO weeks in year zoom,
days in month zoom.

Example:
  campaign-timeline markers --date 2024-02-01 --zoom month`,
	Args: cobra.NoArgs,
	RunE: runMarkers,
}

func runRender(cmd *cobra.Command, args []string) error {
	layout, ref, zoom, err := layoutFromFlags()
	if err != nil {
		return err
	}

	svg := render.SVG(render.Input{
		Layout:  layout,
		Markers: timeline.GenerateAxisMarkers(ref, zoom),
		Ref:     ref,
		Zoom:    zoom,
	}, cfg)
	if svg == "" {
		return fmt.Errorf("failed to generate SVG content")
	}

	outputPath := getOutputFilename(inputFile, outputFile, ".svg")
	if err := os.WriteFile(outputPath, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("error writing SVG file: %w", err)
	}
	logger.Info("Timeline SVG generated", zap.String("output", outputPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Timeline SVG generated successfully: %s\n", outputPath)
	return nil
}

type layoutEntry struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name,omitempty"`
	Start    string  `yaml:"start"`
	End      string  `yaml:"end"`
	Left     float64 `yaml:"left"`
	Width    float64 `yaml:"width"`
	RowIndex int     `yaml:"row"`
	// Resources is the worst quota level of the campaign.
	Resources string `yaml:"resources,omitempty"`
}

type layoutDoc struct {
	Zoom   string          `yaml:"zoom"`
	Date   string          `yaml:"date"`
	Rows   [][]layoutEntry `yaml:"rows"`
	Hidden []layoutEntry   `yaml:"hidden,omitempty"`
}

func toEntry(pc timeline.PositionedCampaign) layoutEntry {
	e := layoutEntry{
		ID:        pc.ID,
		Name:      pc.Fields[campaign.FieldName],
		Start:     pc.Fields[campaign.FieldStartDate],
		End:       pc.Fields[campaign.FieldEndDate],
		Left:      pc.LeftFraction,
		Width:     pc.WidthFraction,
		RowIndex:  pc.RowIndex,
		Resources: pc.Fields[campaign.FieldResources],
	}
	if !pc.Start.IsZero() {
		e.Start = pc.Start.Format("2006-01-02")
	}
	if !pc.End.IsZero() {
		e.End = pc.End.Format("2006-01-02")
	}
	return e
}

func runLayout(cmd *cobra.Command, args []string) error {
	layout, ref, zoom, err := layoutFromFlags()
	if err != nil {
		return err
	}

	doc := layoutDoc{
		Zoom: zoom.String(),
		Date: ref.Format("2006-01-02"),
		Rows: make([][]layoutEntry, 0, layout.RowCount()),
	}
	for _, row := range layout.Rows {
		entries := make([]layoutEntry, 0, len(row))
		for _, pc := range row {
			entries = append(entries, toEntry(pc))
		}
		doc.Rows = append(doc.Rows, entries)
	}
	for _, pc := range layout.Hidden {
		doc.Hidden = append(doc.Hidden, toEntry(pc))
	}

	if outputFile == "" {
		return writeYAML(cmd.OutOrStdout(), doc)
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating layout file: %w", err)
	}
	if err := writeYAML(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing layout file: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return enc.Close()
}

func runMarkers(cmd *cobra.Command, args []string) error {
	ref, zoom, err := viewFromFlags()
	if err != nil {
		return err
	}
	markers := timeline.GenerateMarkers(ref, zoom)
	loc := render.NewLocale(cfg.Timeline.Locale)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, loc.Title(ref, zoom))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tLABEL\tMONTH\tWEEK")
	for _, m := range markers {
		label := m.Label
		if m.IsMonthBoundary {
			label = loc.ShortMonthName(m.Month)
		}
		month, week := "", ""
		if m.IsMonthBoundary {
			month = "yes"
		}
		if m.IsWeekStart {
			week = loc.WeekLabel(m.WeekNumber)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Date.Format("2006-01-02"), label, month, week)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	logger.Debug("Markers generated", zap.Int("count", len(markers)), zap.String("zoom", zoom.String()))
	return nil
}
