package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"campaigntimeline/internal/campaign"
	"campaigntimeline/internal/config"
)

const testCSV = `id,name,start_date,end_date,status,location
1,Bayern Kampagne,2024-01-10,2024-02-15,active,München
2,Hessen Kampagne,2024-02-01,2024-02-20,planned,Frankfurt
3,Sachsen Kampagne,2024-02-18,2024-03-01,preparation,Dresden
4,Kaputt,irgendwann,2024-03-01,planned,Berlin
`

// setup resets the command globals and returns a command capturing output.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	dateFlag, zoomFlag, inputFile, outputFile = "2024-01-01", "year", "", ""
	bufferDays = -1
	genYear, genCount, genSeed = 2024, 10, 1

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaigns.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return path
}

func TestRunLayout(t *testing.T) {
	cmd, buf := setup(t)
	inputFile = writeInput(t)

	require.NoError(t, runLayout(cmd, nil))

	var doc layoutDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "year", doc.Zoom)
	assert.Equal(t, "2024-01-01", doc.Date)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []int{1, 3}, entryIDs(doc.Rows[0]))
	assert.Equal(t, []int{2}, entryIDs(doc.Rows[1]))
	assert.Equal(t, "full", doc.Rows[1][0].Resources)
	require.Len(t, doc.Hidden, 1)
	assert.Equal(t, 4, doc.Hidden[0].ID)
	assert.Equal(t, "irgendwann", doc.Hidden[0].Start)
	assert.Equal(t, -1, doc.Hidden[0].RowIndex)
}

func TestRunLayoutBufferFlag(t *testing.T) {
	cmd, buf := setup(t)
	inputFile = writeInput(t)
	bufferDays = 3

	require.NoError(t, runLayout(cmd, nil))

	var doc layoutDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Rows, 3)
}

func TestRunRender(t *testing.T) {
	cmd, buf := setup(t)
	inputFile = writeInput(t)
	outputFile = filepath.Join(t.TempDir(), "out.svg")
	zoomFlag = "month"
	dateFlag = "2024-02-01"

	require.NoError(t, runRender(cmd, nil))
	assert.Contains(t, buf.String(), "Timeline SVG generated successfully")

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	svg := string(data)
	assert.Contains(t, svg, `data-zoom="month"`)
	assert.Equal(t, 3, strings.Count(svg, "<g data-campaign-id="))
}

func TestRunRenderErrors(t *testing.T) {
	cmd, _ := setup(t)
	inputFile = writeInput(t)
	zoomFlag = "decade"
	assert.ErrorContains(t, runRender(cmd, nil), "unknown zoom level")

	cmd, _ = setup(t)
	inputFile = writeInput(t)
	dateFlag = "yesterday-ish"
	assert.ErrorContains(t, runRender(cmd, nil), "invalid --date")

	cmd, _ = setup(t)
	inputFile = filepath.Join(t.TempDir(), "missing.csv")
	assert.ErrorContains(t, runRender(cmd, nil), "error opening campaign file")
}

func TestRunMarkers(t *testing.T) {
	cmd, buf := setup(t)
	zoomFlag = "month"
	dateFlag = "2024-01-15"
	cfg.Timeline.Locale = "de"

	require.NoError(t, runMarkers(cmd, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+31)
	assert.Equal(t, "Januar 2024", lines[0])
	assert.Contains(t, lines[1], "DATE")
	assert.Contains(t, lines[2], "2024-01-01")
	assert.Contains(t, lines[2], "KW1")
}

func TestRunGenerate(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runGenerate(cmd, nil))

	records, err := campaign.LoadYAML(buf)
	require.NoError(t, err)
	assert.NotEmpty(t, records)
	assert.LessOrEqual(t, len(records), 10)

	cmd, _ = setup(t)
	outputFile = filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, runGenerate(cmd, nil))
	fromFile, err := campaign.LoadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, len(records), len(fromFile))

	cmd, _ = setup(t)
	genCount = 0
	assert.Error(t, runGenerate(cmd, nil))
}

func TestGetOutputFilename(t *testing.T) {
	assert.Equal(t, "custom.svg", getOutputFilename("data.csv", "custom.svg", ".svg"))
	assert.Equal(t, "data.svg", getOutputFilename("/tmp/in/data.csv", "", ".svg"))
	assert.Equal(t, "campaigns.svg", getOutputFilename("campaigns.yaml", "", ".svg"))
}

func entryIDs(entries []layoutEntry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func TestRunLayoutToFile(t *testing.T) {
	cmd, buf := setup(t)
	inputFile = writeInput(t)
	outputFile = filepath.Join(t.TempDir(), "layout.yaml")

	require.NoError(t, runLayout(cmd, nil))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var doc layoutDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, string(campaign.LevelFull), doc.Rows[0][0].Resources)

	cmd, _ = setup(t)
	inputFile = writeInput(t)
	outputFile = filepath.Join(t.TempDir(), "missing-dir", "layout.yaml")
	assert.ErrorContains(t, runLayout(cmd, nil), "error creating layout file")
}

func TestRunList(t *testing.T) {
	cmd, buf := setup(t)
	path := filepath.Join(t.TempDir(), "campaigns.csv")
	require.NoError(t, os.WriteFile(path, []byte(`id,name,start_date,end_date,status,team_confirmed,team_required,vehicles_confirmed,vehicles_required
1,Bayern,2024-01-10,2024-02-15,active,15,15,2,2
2,Hessen,2024-02-01,2024-02-20,planned,12,15,1,2
`), 0o644))
	inputFile = path

	require.NoError(t, runList(cmd, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "RESOURCES")
	assert.Contains(t, lines[1], "15/15 full")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[1]), "full"))
	assert.Contains(t, lines[2], "12/15 warning")
	assert.Contains(t, lines[2], "1/2 critical")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "critical"))

	cmd, _ = setup(t)
	inputFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.ErrorContains(t, runList(cmd, nil), "error opening campaign file")
}
