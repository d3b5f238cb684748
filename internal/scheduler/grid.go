package scheduler

import "sort"

// Entry is a stored shift row tagged with its employee and date.
type Entry struct {
	UserID uint
	Date   string
	Row
}

// Grid maps employee -> date -> consolidated cell.
type Grid map[uint]map[string]DayView

func BuildGrid(entries []Entry) Grid {
	cells := make(map[uint]map[string][]Row)
	for _, e := range entries {
		if cells[e.UserID] == nil {
			cells[e.UserID] = make(map[string][]Row)
		}
		cells[e.UserID][e.Date] = append(cells[e.UserID][e.Date], e.Row)
	}

	grid := make(Grid, len(cells))
	for userID, byDate := range cells {
		grid[userID] = make(map[string]DayView, len(byDate))
		for date, rows := range byDate {
			grid[userID][date] = ConsolidateDay(rows)
		}
	}
	return grid
}

// WorkMinutes is the resolved work time of one employee across the grid.
func (g Grid) WorkMinutes(userID uint) int {
	total := 0
	for _, v := range g[userID] {
		total += v.WorkMinutes
	}
	return total
}

// AbsenceDays counts the days on which the employee carries the given flag.
func (g Grid) AbsenceDays(userID uint, t ShiftType) int {
	n := 0
	for _, v := range g[userID] {
		for _, f := range v.Flags {
			if f == t {
				n++
				break
			}
		}
	}
	return n
}

func (g Grid) Dates(userID uint) []string {
	dates := make([]string, 0, len(g[userID]))
	for d := range g[userID] {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
