package campaign

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingColumn is returned when a required CSV column is absent.
var ErrMissingColumn = errors.New("missing column")

// File is the YAML document layout: a top-level campaigns list.
type File struct {
	Campaigns []Record `yaml:"campaigns"`
}

// columnAliases maps accepted CSV header spellings to Record fields.
var columnAliases = map[string]string{
	"id":                      "id",
	"name":                    "name",
	"start_date":              "start_date",
	"startdate":               "start_date",
	"start":                   "start_date",
	"end_date":                "end_date",
	"enddate":                 "end_date",
	"end":                     "end_date",
	"status":                  "status",
	"location":                "location",
	"team_confirmed":          "team_confirmed",
	"team_required":           "team_required",
	"accommodation_confirmed": "accommodation_confirmed",
	"accommodation_required":  "accommodation_required",
	"vehicles_confirmed":      "vehicles_confirmed",
	"vehicles_required":       "vehicles_required",
	"equipment_confirmed":     "equipment_confirmed",
	"equipment_required":      "equipment_required",
}

var requiredColumns = []string{"id", "start_date", "end_date"}

// LoadFile reads records from path, choosing the format by extension.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening campaign file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	}
	return nil, fmt.Errorf("unsupported campaign file extension %q (want .csv, .yaml or .yml)", filepath.Ext(path))
}

// LoadYAML decodes a File document.
func LoadYAML(r io.Reader) ([]Record, error) {
	var doc File
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing campaign YAML: %w", err)
	}
	return doc.Campaigns, nil
}

// WriteYAML encodes records as a File document.
func WriteYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Campaigns: records}); err != nil {
		return fmt.Errorf("error encoding campaign YAML: %w", err)
	}
	return enc.Close()
}

// LoadCSV reads records from CSV with a header row. Header names are matched
// case-insensitively; columns that are not campaign fields end up in
// Record.Extra. Rows are returned in file order.
func LoadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columnMap := make(map[string]int)
	extra := make(map[string]int)
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if field, ok := columnAliases[name]; ok {
			columnMap[field] = i
		} else if name != "" {
			extra[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := columnMap[col]; !ok {
			return nil, fmt.Errorf("%w %q in CSV. Available columns: %v", ErrMissingColumn, col, header)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rec, err := parseCSVRow(row, columnMap, extra)
		if err != nil {
			return nil, fmt.Errorf("error parsing CSV row %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseCSVRow(row []string, columnMap, extra map[string]int) (Record, error) {
	get := func(field string) string {
		i, ok := columnMap[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var errs []error
	getInt := func(field string) int {
		v := get(field)
		if v == "" {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return n
	}

	rec := Record{
		ID:        getInt("id"),
		Name:      get("name"),
		StartDate: get("start_date"),
		EndDate:   get("end_date"),
		Status:    strings.ToLower(get("status")),
		Location:  get("location"),
		Team:      Quota{Confirmed: getInt("team_confirmed"), Required: getInt("team_required")},
		Accommodation: Quota{
			Confirmed: getInt("accommodation_confirmed"),
			Required:  getInt("accommodation_required"),
		},
		Vehicles:  Quota{Confirmed: getInt("vehicles_confirmed"), Required: getInt("vehicles_required")},
		Equipment: Quota{Confirmed: getInt("equipment_confirmed"), Required: getInt("equipment_required")},
	}
	if err := errors.Join(errs...); err != nil {
		return Record{}, err
	}

	if len(extra) > 0 {
		rec.Extra = make(map[string]string, len(extra))
		for name, i := range extra {
			if i < len(row) {
				rec.Extra[name] = strings.TrimSpace(row[i])
			}
		}
	}
	return rec, nil
}
