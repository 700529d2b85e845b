package calendar

import "time"

// Cell is one slot of the grid. A cell with Valid == false is padding
// and never holds a day of an adjacent month.
type Cell struct {
	Date  Date `json:"date"`
	Valid bool `json:"valid"`
}

func (c Cell) IsPlaceholder() bool {
	return !c.Valid
}

// Week runs Sunday through Saturday.
type Week [7]Cell

// Grid covers exactly one month in whole weeks.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks []Week     `json:"weeks"`
}

// EnumerateDays returns every day of the month in order.
func EnumerateDays(year int, month time.Month) ([]Date, error) {
	if err := checkMonth(month); err != nil {
		return nil, err
	}

	n := DaysIn(year, month)
	days := make([]Date, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, Date{Year: year, Month: month, Day: d})
	}
	return days, nil
}

// BuildGrid lays the month out in Sunday-first weeks. The first week is
// padded up to the weekday of day 1 and the last week is padded to 7.
func BuildGrid(year int, month time.Month) (Grid, error) {
	days, err := EnumerateDays(year, month)
	if err != nil {
		return Grid{}, err
	}

	grid := Grid{Year: year, Month: month}

	var week Week
	pos := int(days[0].Weekday())
	for _, day := range days {
		week[pos] = Cell{Date: day, Valid: true}
		pos++
		if pos == len(week) {
			grid.Weeks = append(grid.Weeks, week)
			week = Week{}
			pos = 0
		}
	}
	if pos > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid, nil
}

// Days counts the non-placeholder cells.
func (g Grid) Days() int {
	n := 0
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Valid {
				n++
			}
		}
	}
	return n
}

// Contains reports whether d is a selectable cell of the grid.
func (g Grid) Contains(d Date) bool {
	if d.Year != g.Year || d.Month != g.Month {
		return false
	}
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Valid && c.Date == d {
				return true
			}
		}
	}
	return false
}

// LeadingPlaceholders is the number of padding cells before day 1.
func (g Grid) LeadingPlaceholders() int {
	if len(g.Weeks) == 0 {
		return 0
	}
	n := 0
	for _, c := range g.Weeks[0] {
		if c.Valid {
			break
		}
		n++
	}
	return n
}
