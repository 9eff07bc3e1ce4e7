package moderation

import (
	"time"

	"github.com/resonate-app/resonate-backend/internal/models"
)

// ReportStats is a read-only rollup over a report collection.
type ReportStats struct {
	Total             int                            `json:"total"`
	ByCategory        map[models.ReportCategory]int  `json:"by_category"`
	ByPriority        map[models.ReportPriority]int  `json:"by_priority"`
	ByStatus          map[models.ReportStatus]int    `json:"by_status"`
	ByModerator       map[string]int                 `json:"by_moderator"`
	ResolvedShare     float64                        `json:"resolved_share"`
	AvgResolutionTime time.Duration                  `json:"avg_resolution_time"`
	WeightedTotal     float64                        `json:"weighted_total"`
}

// ComputeReportStats aggregates counts, shares and resolution latency.
// Pure function of its input; no store access.
func ComputeReportStats(reports []models.Report) ReportStats {
	stats := ReportStats{
		Total:       len(reports),
		ByCategory:  make(map[models.ReportCategory]int),
		ByPriority:  make(map[models.ReportPriority]int),
		ByStatus:    make(map[models.ReportStatus]int),
		ByModerator: make(map[string]int),
	}

	resolved := 0
	var totalResolution time.Duration
	for i := range reports {
		r := &reports[i]
		stats.ByCategory[r.Category]++
		stats.ByPriority[r.Priority]++
		stats.ByStatus[r.Status]++
		stats.WeightedTotal += r.ReputationWeight

		if !r.Resolved() {
			continue
		}
		resolved++
		if r.Resolution.ModeratorID != nil {
			stats.ByModerator[r.Resolution.ModeratorID.String()]++
		}
		if r.Resolution.Timestamp != nil {
			totalResolution += r.Resolution.Timestamp.Sub(r.CreatedAt)
		}
	}

	if stats.Total > 0 {
		stats.ResolvedShare = float64(resolved) / float64(stats.Total)
	}
	if resolved > 0 {
		stats.AvgResolutionTime = totalResolution / time.Duration(resolved)
	}
	return stats
}

// SuspensionStats is a read-only rollup over a suspension collection.
type SuspensionStats struct {
	Total            int                            `json:"total"`
	Active           int                            `json:"active"`
	ByType           map[models.SuspensionType]int  `json:"by_type"`
	AppealableActive int                            `json:"appealable_active"`
	AvgDuration      time.Duration                  `json:"avg_duration"`
}

// ComputeSuspensionStats aggregates counts and the average duration of
// duration-bearing (temporary) suspensions.
func ComputeSuspensionStats(suspensions []models.Suspension) SuspensionStats {
	stats := SuspensionStats{
		Total:  len(suspensions),
		ByType: make(map[models.SuspensionType]int),
	}

	now := time.Now().UTC()
	withDuration := 0
	var totalDuration time.Duration
	for i := range suspensions {
		s := &suspensions[i]
		stats.ByType[s.Type]++
		if s.InEffect(now) {
			stats.Active++
			if s.Appealable {
				stats.AppealableActive++
			}
		}
		if s.Duration != nil {
			withDuration++
			totalDuration += *s.Duration
		}
	}

	if withDuration > 0 {
		stats.AvgDuration = totalDuration / time.Duration(withDuration)
	}
	return stats
}
