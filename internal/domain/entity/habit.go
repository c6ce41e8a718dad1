package entity

import "time"

// Habit frequency values.
const (
	FrequencyDaily  = "Daily"
	FrequencyCustom = "Custom"
)

// Habit is a recurring activity tracked on the owner's dashboard.
// Completion is recorded per calendar day in CompletedDates; the streak
// is always derived from that list, never stored.
type Habit struct {
	ID             int            `json:"id"`
	UserID         int            `json:"userId"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Frequency      string         `json:"frequency"`
	CustomDays     []time.Weekday `json:"customDays"`
	StartDate      time.Time      `json:"startDate"`
	CreatedAt      time.Time      `json:"createdAt"`
	CompletedDates []time.Time    `json:"completedDates"`
}

// IsCompletedOn reports whether the habit was completed on the calendar
// day of the given time.
func (h *Habit) IsCompletedOn(day time.Time) bool {
	for _, d := range h.CompletedDates {
		if sameDay(d, day) {
			return true
		}
	}

	return false
}

// IsScheduledOn reports whether the habit is scheduled for the weekday of
// the given time. Daily habits are scheduled every day; custom habits
// only on their configured weekdays.
func (h *Habit) IsScheduledOn(day time.Time) bool {
	if h.Frequency != FrequencyCustom {
		return true
	}
	for _, wd := range h.CustomDays {
		if wd == day.Weekday() {
			return true
		}
	}

	return false
}

// StreakAsOf derives the current streak by walking backward day by day
// from the given "today". Each scheduled, completed day extends the
// streak. A scheduled day with no completion ends the walk, with one
// exception: today itself not being completed yet never breaks the
// streak. Unscheduled days are skipped without effect. The walk stops
// once it passes the habit's start date.
func (h *Habit) StreakAsOf(today time.Time) int {
	today = truncateDay(today)
	start := truncateDay(h.StartDate)
	if start.After(today) {
		return 0
	}

	streak := 0
	for day := today; !day.Before(start); day = day.AddDate(0, 0, -1) {
		if !h.IsScheduledOn(day) {
			continue
		}
		if h.IsCompletedOn(day) {
			streak++
			continue
		}
		if !day.Equal(today) {
			break
		}
	}

	return streak
}

// CurrentStreak is StreakAsOf evaluated at the current local day.
func (h *Habit) CurrentStreak() int {
	return h.StreakAsOf(time.Now())
}

// IsCompletedToday reports whether the habit has been completed on the
// current local day.
func (h *Habit) IsCompletedToday() bool {
	return h.IsCompletedOn(time.Now())
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
