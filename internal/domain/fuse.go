package domain

// FusedSeries is the hour-indexed merge of the two model series. All slices
// are parallel to Hours; Source records which model contributed each hour.
type FusedSeries struct {
	Hours         []string
	Source        []string // model name per hour
	Wind          []string
	Gust          []string
	Direction     []string
	Temperature   []string
	CloudHigh     []string
	CloudMid      []string
	CloudLow      []string
	Precipitation []string

	UpdateTimePrimary   string
	UpdateTimeSecondary string
}

// Len returns the number of fused hours.
func (f FusedSeries) Len() int {
	return len(f.Hours)
}

// FuseBundle fuses a bundle's primary and secondary model series.
func FuseBundle(bundle SiteBundle) FusedSeries {
	return FuseSeries(bundle.SeriesFor(ModelPrimary), bundle.SeriesFor(ModelSecondary))
}

// FuseSeries merges two model series into one. The fused hour list is the
// primary model's hours in order, followed by secondary hours not already
// present. Every metric for an hour comes from the model that contributed
// it; when both models know an hour, the primary wins. Metric slices shorter
// than the hour list yield empty strings, never a value from the other model.
func FuseSeries(primary, secondary RawModelSeries) FusedSeries {
	primaryHours := make(map[string]int, len(primary.Hours))
	for i, h := range primary.Hours {
		if _, seen := primaryHours[h]; !seen {
			primaryHours[h] = i
		}
	}
	secondaryHours := make(map[string]int, len(secondary.Hours))
	for i, h := range secondary.Hours {
		if _, seen := secondaryHours[h]; !seen {
			secondaryHours[h] = i
		}
	}

	hours := make([]string, 0, len(primary.Hours)+len(secondary.Hours))
	source := make([]string, 0, cap(hours))
	hours = append(hours, primary.Hours...)
	for range primary.Hours {
		source = append(source, primary.Model)
	}
	for _, h := range secondary.Hours {
		if _, seen := primaryHours[h]; seen {
			continue
		}
		hours = append(hours, h)
		source = append(source, secondary.Model)
	}

	pick := func(primaryVals, secondaryVals []string) []string {
		res := make([]string, len(hours))
		for i, h := range hours {
			if idx, ok := primaryHours[h]; ok {
				res[i] = valueAt(primaryVals, idx)
				continue
			}
			if idx, ok := secondaryHours[h]; ok {
				res[i] = valueAt(secondaryVals, idx)
			}
		}
		return res
	}

	return FusedSeries{
		Hours:         hours,
		Source:        source,
		Wind:          pick(primary.Wind, secondary.Wind),
		Gust:          pick(primary.Gust, secondary.Gust),
		Direction:     pick(primary.Direction, secondary.Direction),
		Temperature:   pick(primary.Temperature, secondary.Temperature),
		CloudHigh:     pick(primary.CloudHigh, secondary.CloudHigh),
		CloudMid:      pick(primary.CloudMid, secondary.CloudMid),
		CloudLow:      pick(primary.CloudLow, secondary.CloudLow),
		Precipitation: pick(primary.Precipitation, secondary.Precipitation),

		UpdateTimePrimary:   primary.UpdateTime,
		UpdateTimeSecondary: secondary.UpdateTime,
	}
}

// valueAt returns vals[idx] or "" when the metric row is shorter than the
// hour row, which happens when the scrape truncates a table mid-row.
func valueAt(vals []string, idx int) string {
	if idx < 0 || idx >= len(vals) {
		return ""
	}
	return vals[idx]
}
