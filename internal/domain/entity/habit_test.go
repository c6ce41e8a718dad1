package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStreakAsOf(t *testing.T) {
	// 2026-08-28 is a Friday.
	today := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		habit Habit
		want  int
	}{
		{
			name: "daily streak ending today",
			habit: Habit{
				Frequency: FrequencyDaily,
				StartDate: day(2026, time.August, 1),
				CompletedDates: []time.Time{
					day(2026, time.August, 26),
					day(2026, time.August, 27),
					day(2026, time.August, 28),
				},
			},
			want: 3,
		},
		{
			name: "today not completed yet keeps the streak",
			habit: Habit{
				Frequency: FrequencyDaily,
				StartDate: day(2026, time.August, 1),
				CompletedDates: []time.Time{
					day(2026, time.August, 26),
					day(2026, time.August, 27),
				},
			},
			want: 2,
		},
		{
			name: "missed yesterday breaks the streak",
			habit: Habit{
				Frequency: FrequencyDaily,
				StartDate: day(2026, time.August, 1),
				CompletedDates: []time.Time{
					day(2026, time.August, 25),
					day(2026, time.August, 26),
					day(2026, time.August, 28),
				},
			},
			want: 1,
		},
		{
			name: "custom schedule skips unscheduled days",
			habit: Habit{
				Frequency:  FrequencyCustom,
				CustomDays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
				StartDate:  day(2026, time.August, 1),
				CompletedDates: []time.Time{
					day(2026, time.August, 24), // Monday
					day(2026, time.August, 26), // Wednesday
					day(2026, time.August, 28), // Friday
				},
			},
			want: 3,
		},
		{
			name: "custom schedule broken by a missed scheduled day",
			habit: Habit{
				Frequency:  FrequencyCustom,
				CustomDays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
				StartDate:  day(2026, time.August, 1),
				CompletedDates: []time.Time{
					day(2026, time.August, 24), // Monday completed
					// Wednesday the 26th missed
					day(2026, time.August, 28), // Friday completed
				},
			},
			want: 1,
		},
		{
			name: "walk stops at the start date",
			habit: Habit{
				Frequency: FrequencyDaily,
				StartDate: day(2026, time.August, 27),
				CompletedDates: []time.Time{
					day(2026, time.August, 25),
					day(2026, time.August, 26),
					day(2026, time.August, 27),
					day(2026, time.August, 28),
				},
			},
			want: 2,
		},
		{
			name: "start date in the future",
			habit: Habit{
				Frequency:      FrequencyDaily,
				StartDate:      day(2026, time.September, 1),
				CompletedDates: []time.Time{day(2026, time.August, 28)},
			},
			want: 0,
		},
		{
			name: "no completions at all",
			habit: Habit{
				Frequency: FrequencyDaily,
				StartDate: day(2026, time.August, 1),
			},
			want: 0,
		},
		{
			name: "completion timestamps count by calendar day",
			habit: Habit{
				Frequency: FrequencyDaily,
				StartDate: day(2026, time.August, 1),
				CompletedDates: []time.Time{
					time.Date(2026, time.August, 27, 23, 59, 0, 0, time.UTC),
					time.Date(2026, time.August, 28, 0, 1, 0, 0, time.UTC),
				},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.habit.StreakAsOf(today))
		})
	}
}

func TestIsScheduledOn(t *testing.T) {
	friday := day(2026, time.August, 28)
	saturday := day(2026, time.August, 29)

	daily := Habit{Frequency: FrequencyDaily}
	assert.True(t, daily.IsScheduledOn(friday))
	assert.True(t, daily.IsScheduledOn(saturday))

	weekdaysOnly := Habit{
		Frequency:  FrequencyCustom,
		CustomDays: []time.Weekday{time.Friday},
	}
	assert.True(t, weekdaysOnly.IsScheduledOn(friday))
	assert.False(t, weekdaysOnly.IsScheduledOn(saturday))
}
