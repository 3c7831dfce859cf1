// Package campaign reads CRM campaign records from CSV and YAML files and
// converts them into timeline campaigns.
package campaign

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"campaigntimeline/internal/calendar"
	"campaigntimeline/internal/timeline"
)

// Campaign statuses used by the CRM.
const (
	StatusPlanned     = "planned"
	StatusPreparation = "preparation"
	StatusActive      = "active"
	StatusCompleted   = "completed"
)

// Quota is a confirmed/required resource count.
type Quota struct {
	Confirmed int `yaml:"confirmed"`
	Required  int `yaml:"required"`
}

func (q Quota) String() string {
	return strconv.Itoa(q.Confirmed) + "/" + strconv.Itoa(q.Required)
}

// Record is one campaign as exported from the CRM. Dates are kept as the
// raw strings of the source file and parsed by ToTimeline.
type Record struct {
	ID            int               `yaml:"id"`
	Name          string            `yaml:"name"`
	StartDate     string            `yaml:"start_date"`
	EndDate       string            `yaml:"end_date"`
	Status        string            `yaml:"status"`
	Location      string            `yaml:"location"`
	Team          Quota             `yaml:"team"`
	Accommodation Quota             `yaml:"accommodation"`
	Vehicles      Quota             `yaml:"vehicles"`
	Equipment     Quota             `yaml:"equipment"`
	Extra         map[string]string `yaml:"extra,omitempty"`
}

// Field keys set by ToTimeline on timeline.Campaign.Fields.
const (
	FieldName          = "name"
	FieldStatus        = "status"
	FieldLocation      = "location"
	FieldTeam          = "team"
	FieldAccommodation = "accommodation"
	FieldVehicles      = "vehicles"
	FieldEquipment     = "equipment"
	FieldResources     = "resources"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
)

// ToTimeline converts r for layout. A date that fails to parse is left zero,
// which the layout treats as not visible, and reported in the returned error
// alongside the otherwise complete campaign.
func (r Record) ToTimeline() (timeline.Campaign, error) {
	fields := make(map[string]string, len(r.Extra)+10)
	for k, v := range r.Extra {
		fields[k] = v
	}
	fields[FieldName] = r.Name
	fields[FieldStatus] = r.Status
	fields[FieldLocation] = r.Location
	fields[FieldTeam] = r.Team.String()
	fields[FieldAccommodation] = r.Accommodation.String()
	fields[FieldVehicles] = r.Vehicles.String()
	fields[FieldEquipment] = r.Equipment.String()
	fields[FieldResources] = string(r.Worst())
	fields[FieldStartDate] = r.StartDate
	fields[FieldEndDate] = r.EndDate

	c := timeline.Campaign{ID: r.ID, Fields: fields}

	var errs []error
	start, err := calendar.Parse(r.StartDate)
	if err != nil {
		errs = append(errs, fmt.Errorf("start date: %w", err))
	}
	end, err := calendar.Parse(r.EndDate)
	if err != nil {
		errs = append(errs, fmt.Errorf("end date: %w", err))
	}
	c.Start, c.End = start, end

	if err := errors.Join(errs...); err != nil {
		return c, fmt.Errorf("campaign %d: %w", r.ID, err)
	}
	return c, nil
}

// Campaigns converts records for layout. Records with malformed dates are
// kept, so they show up as hidden campaigns, and logged as warnings.
func Campaigns(records []Record, logger *zap.Logger) []timeline.Campaign {
	out := make([]timeline.Campaign, 0, len(records))
	for _, r := range records {
		c, err := r.ToTimeline()
		if err != nil {
			logger.Warn("Campaign has malformed dates",
				zap.Int("id", r.ID),
				zap.String("name", r.Name),
				zap.Error(err))
		}
		if !c.Start.IsZero() && !c.End.IsZero() && c.End.Before(c.Start) {
			logger.Debug("Campaign ends before it starts",
				zap.Int("id", r.ID),
				zap.String("start", r.StartDate),
				zap.String("end", r.EndDate))
		}
		out = append(out, c)
	}
	return out
}
