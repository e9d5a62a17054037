package milestone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatvaops/internal/domain"
)

func TestGenerate_ReferenceSchedule(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	ms, err := Generate(GenerationInput{
		ProjectID: 1,
		StartDate: start,
		TotalDays: 84,
		Count:     12,
		TotalCost: 427498,
	})
	require.NoError(t, err)
	require.Len(t, ms, 12)

	// 84 days split into 12 phases of 7 days each.
	for i, m := range ms {
		assert.Equal(t, 7, m.DurationDays(), "milestone %d duration", i+1)
		assert.Equal(t, i+1, m.Number)
		assert.Equal(t, i+1, m.Position)
	}

	// 427498 does not divide by 12; the last phase absorbs the remainder.
	for _, m := range ms[:11] {
		assert.Equal(t, int64(35624), m.Amount)
	}
	assert.Equal(t, int64(35634), ms[11].Amount)

	assert.Equal(t, start, ms[0].StartDate)
	assert.Equal(t, start.AddDate(0, 0, 83), ms[11].EndDate)

	assert.Equal(t, "Project Initiation & Planning", ms[0].Title)
	assert.Equal(t, "Inspection & Handover", ms[11].Title)

	assert.Equal(t, domain.MilestoneInProgress, ms[0].Status)
	for _, m := range ms[1:] {
		assert.Equal(t, domain.MilestonePending, m.Status)
	}
}

func TestGenerate_SumsAndContiguity(t *testing.T) {
	cases := []struct {
		name      string
		totalDays int
		count     int
		totalCost int64
	}{
		{"even split", 84, 12, 427498},
		{"day remainder", 100, 12, 500000},
		{"one milestone", 30, 1, 99999},
		{"more phases than catalog", 45, 15, 123457},
		{"zero cost", 20, 4, 0},
	}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ms, err := Generate(GenerationInput{
				ProjectID: 5,
				StartDate: start,
				TotalDays: tc.totalDays,
				Count:     tc.count,
				TotalCost: tc.totalCost,
			})
			require.NoError(t, err)
			require.Len(t, ms, tc.count)

			var costSum int64
			daySum := 0
			for i, m := range ms {
				costSum += m.Amount
				daySum += m.DurationDays()
				assert.GreaterOrEqual(t, m.DurationDays(), 1)
				assert.False(t, m.EndDate.Before(m.StartDate))
				if i > 0 {
					next := ms[i-1].EndDate.AddDate(0, 0, 1)
					assert.Equal(t, next, m.StartDate, "milestone %d must start the day after its predecessor ends", i+1)
				}
			}

			assert.Equal(t, tc.totalCost, costSum)
			assert.Equal(t, tc.totalDays, daySum)
			assert.Equal(t, start.AddDate(0, 0, tc.totalDays-1), ms[len(ms)-1].EndDate)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	in := GenerationInput{
		ProjectID: 2,
		StartDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		TotalDays: 60,
		Count:     8,
		TotalCost: 314159,
	}

	first, err := Generate(in)
	require.NoError(t, err)
	second, err := Generate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_TruncatesStartToMidnight(t *testing.T) {
	ms, err := Generate(GenerationInput{
		ProjectID: 3,
		StartDate: time.Date(2026, 1, 15, 17, 42, 3, 0, time.UTC),
		TotalDays: 14,
		Count:     2,
		TotalCost: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), ms[0].StartDate)
}

func TestGenerate_InvalidInput(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   GenerationInput
	}{
		{"zero count", GenerationInput{StartDate: start, TotalDays: 30, Count: 0, TotalCost: 100}},
		{"negative cost", GenerationInput{StartDate: start, TotalDays: 30, Count: 3, TotalCost: -1}},
		{"zero start", GenerationInput{TotalDays: 30, Count: 3, TotalCost: 100}},
		{"fewer days than milestones", GenerationInput{StartDate: start, TotalDays: 5, Count: 6, TotalCost: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
