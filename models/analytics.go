package models

// CategoryStat is the per-category public-issue count.
type CategoryStat struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// HostelStat is the per-hostel public-issue count, grouped by the
// creator's current hostel.
type HostelStat struct {
	Hostel string `bson:"hostel" json:"hostel"`
	Count  int64  `bson:"count" json:"count"`
}

// StatusStat is the per-status public-issue count.
type StatusStat struct {
	Status string `bson:"status" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// AvgTimes holds average response and resolution durations in
// milliseconds. Both fields are absent when no issue qualifies, so the
// payload distinguishes "no data" from a zero duration.
type AvgTimes struct {
	AvgResponseTime   *float64 `json:"avgResponseTime,omitempty"`
	AvgResolutionTime *float64 `json:"avgResolutionTime,omitempty"`
}

// ComputeAvgTimes averages response time (inProgress minus reported) and
// resolution time (resolved minus reported) across the issues that carry
// both timestamps. Issues missing either stamp are skipped.
func ComputeAvgTimes(issues []Issue) AvgTimes {
	var responseSum, resolutionSum float64
	var count int

	for _, issue := range issues {
		ts := issue.StatusTimestamps
		if ts.InProgress == nil || ts.Resolved == nil {
			continue
		}
		responseSum += float64(ts.InProgress.Sub(ts.Reported).Milliseconds())
		resolutionSum += float64(ts.Resolved.Sub(ts.Reported).Milliseconds())
		count++
	}

	if count == 0 {
		return AvgTimes{}
	}

	avgResponse := responseSum / float64(count)
	avgResolution := resolutionSum / float64(count)
	return AvgTimes{
		AvgResponseTime:   &avgResponse,
		AvgResolutionTime: &avgResolution,
	}
}
