package dashboard

import (
	"time"

	"github.com/samber/lo"
)

// compactCells is the number of grid cells shown: the first two weeks.
const compactCells = 14

var weekdayLabels = []string{"L", "M", "M", "J", "V", "S", "D"}

// Day is one calendar cell. Leading blanks have Day == 0.
type Day struct {
	Day     int  `json:"day"`
	Today   bool `json:"today"`
	Reading bool `json:"reading"`
}

type Calendar struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Weekdays []string `json:"weekdays"`
	Days     []Day    `json:"days"`
}

// BuildCalendar lays out the month containing now on a Monday-first grid and
// flags today and every reading day. Only the first two weeks are kept.
func BuildCalendar(now time.Time, readingDays []time.Time) Calendar {
	year, month, today := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := (int(first.Weekday()) + 6) % 7

	reading := lo.SliceToMap(
		lo.Filter(readingDays, func(t time.Time, _ int) bool {
			t = t.In(now.Location())
			return t.Year() == year && t.Month() == month
		}),
		func(t time.Time) (int, bool) { return t.In(now.Location()).Day(), true },
	)

	cells := make([]Day, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, Day{})
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, Day{Day: d, Today: d == today, Reading: reading[d]})
	}

	return Calendar{
		Year:     year,
		Month:    int(month),
		Weekdays: weekdayLabels,
		Days:     lo.Slice(cells, 0, compactCells),
	}
}
