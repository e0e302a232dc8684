package services

import (
	"context"
	"sort"

	"filmroom/internal/domain"
	"filmroom/internal/ports"
)

// CategoryStats summarizes one category's tagged footprint in a game.
type CategoryStats struct {
	Category        string
	Count           int
	OpenCount       int
	TotalDurationMs int64
	ByQuarter       map[int]int
}

// StatsService computes per-category tagging statistics. Quarter
// attribution uses the same fixed-length-period estimate as playlist
// filtering.
type StatsService struct {
	store           ports.IntervalStore
	periodLengthMin int
	periodCount     int
}

// NewStatsService creates a new StatsService.
func NewStatsService(store ports.IntervalStore, periodLengthMin, periodCount int) *StatsService {
	return &StatsService{store: store, periodLengthMin: periodLengthMin, periodCount: periodCount}
}

// ForGame returns per-category stats ordered by category name.
func (s *StatsService) ForGame(ctx context.Context, gameID string) ([]CategoryStats, error) {
	moments, err := s.store.ListMoments(ctx, gameID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*CategoryStats)
	for _, m := range moments {
		st, ok := byCategory[m.Category]
		if !ok {
			st = &CategoryStats{Category: m.Category, ByQuarter: make(map[int]int)}
			byCategory[m.Category] = st
		}
		st.Count++
		if m.IsOpen() {
			st.OpenCount++
		} else {
			st.TotalDurationMs += m.DurationMs()
		}
		st.ByQuarter[domain.QuarterAt(m.StartMs, s.periodLengthMin, s.periodCount)]++
	}

	stats := make([]CategoryStats, 0, len(byCategory))
	for _, st := range byCategory {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}
