package campaign

// Level grades how well a resource quota is covered.
type Level string

const (
	LevelFull     Level = "full"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// ResourceStatus is the coverage of a quota.
type ResourceStatus struct {
	Percentage float64
	Level      Level
}

// Status grades q: full at 100%, warning from 80%, critical below. A quota
// that requires nothing is full.
func (q Quota) Status() ResourceStatus {
	if q.Required <= 0 {
		return ResourceStatus{Percentage: 100, Level: LevelFull}
	}
	pct := float64(q.Confirmed) / float64(q.Required) * 100
	switch {
	case pct >= 100:
		return ResourceStatus{Percentage: pct, Level: LevelFull}
	case pct >= 80:
		return ResourceStatus{Percentage: pct, Level: LevelWarning}
	default:
		return ResourceStatus{Percentage: pct, Level: LevelCritical}
	}
}

// Worst returns the lowest level among the record's quotas.
func (r Record) Worst() Level {
	worst := LevelFull
	for _, q := range []Quota{r.Team, r.Accommodation, r.Vehicles, r.Equipment} {
		switch q.Status().Level {
		case LevelCritical:
			return LevelCritical
		case LevelWarning:
			worst = LevelWarning
		}
	}
	return worst
}
