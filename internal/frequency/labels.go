package frequency

import "github.com/heartmarshall/phonics-backend/internal/domain"

// labelThresholds is evaluated top to bottom against weighted percentage.
// The first threshold the value reaches wins.
var labelThresholds = []struct {
	min   float64
	label domain.UsageLabel
}{
	{min: 50, label: domain.UsagePrimary},
	{min: 10, label: domain.UsageSecondary},
	{min: 1, label: domain.UsageRare},
}

// LabelFor returns the usage tier for a weighted percentage.
func LabelFor(weighted float64) domain.UsageLabel {
	for _, t := range labelThresholds {
		if weighted >= t.min {
			return t.label
		}
	}
	return domain.UsageException
}
