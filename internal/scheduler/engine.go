package scheduler

import "time"

const (
	fullBlockMinutes = 8 * 60
	halfBlockMinutes = 4 * 60
)

type Settings struct {
	MinHoursPerEmployee    int  `json:"min_hours_per_employee"`
	MaxHoursPerEmployee    int  `json:"max_hours_per_employee"`
	StartHour              int  `json:"start_hour"`
	EndHour                int  `json:"end_hour"`
	DistributeEvenly       bool `json:"distribute_evenly"`
	RespectTimeOffRequests bool `json:"respect_time_off_requests"`
}

// Normalize swaps inverted hour bounds. Callers run it before Generate; the
// engine itself trusts its input.
func (s Settings) Normalize() Settings {
	if s.MinHoursPerEmployee > s.MaxHoursPerEmployee {
		s.MinHoursPerEmployee, s.MaxHoursPerEmployee = s.MaxHoursPerEmployee, s.MinHoursPerEmployee
	}
	return s
}

// Employee is one roster entry. Non-zero MinHours/MaxHours override the
// request-wide settings for that person.
type Employee struct {
	ID       uint
	MinHours int
	MaxHours int
}

// Absence is an approved time-off period. Only full-day absences remove a day
// from work placement.
type Absence struct {
	UserID  uint
	Start   time.Time
	End     time.Time
	FullDay bool
}

type Input struct {
	Start      time.Time
	End        time.Time
	Employees  []Employee
	Settings   Settings
	Absences   []Absence
	ClosedDays map[string]bool
}

type Assignment struct {
	UserID    uint      `json:"user_id"`
	Date      string    `json:"date"`
	Day       string    `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Type      ShiftType `json:"type"`
}

type Status string

const (
	StatusAssigned          Status = "assigned"
	StatusPartiallyAssigned Status = "partially_assigned"
)

// Unmet describes an employee whose placement fell short, either below the
// minimum hours or below target because the daily window ran out.
type Unmet struct {
	UserID          uint `json:"user_id"`
	MinimumMinutes  int  `json:"minimum_minutes"`
	TargetMinutes   int  `json:"target_minutes"`
	AssignedMinutes int  `json:"assigned_minutes"`
	SkippedDays     int  `json:"skipped_days"`
}

type Result struct {
	Status Status       `json:"status"`
	Shifts []Assignment `json:"shifts"`
	Unmet  []Unmet      `json:"unmet"`
}

type plan struct {
	employee  Employee
	minimum   int
	target    int
	remaining int
	assigned  int
	skipped   int
	absent    map[string]bool
}

// Generate places contiguous work blocks for every employee over the date
// range. It never fails: infeasible placements are reported through Unmet.
func Generate(in Input) Result {
	res := Result{Status: StatusAssigned, Shifts: []Assignment{}, Unmet: []Unmet{}}

	var days []time.Time
	for _, d := range Days(in.Start, in.End) {
		if in.ClosedDays[FormatDate(d)] {
			continue
		}
		days = append(days, d)
	}

	absent := absentDays(in)

	plans := make([]*plan, 0, len(in.Employees))
	for _, e := range in.Employees {
		minH, maxH := bounds(e, in.Settings)
		p := &plan{employee: e, minimum: minH * 60, absent: absent[e.ID]}

		available := 0
		for _, d := range days {
			if !p.absent[FormatDate(d)] {
				available++
			}
		}

		if in.Settings.DistributeEvenly {
			p.target = max(minH*60, min(maxH*60, available*fullBlockMinutes))
		} else {
			p.target = maxH * 60
		}
		p.remaining = p.target
		plans = append(plans, p)
	}

	windowStart := in.Settings.StartHour * 60
	windowEnd := in.Settings.EndHour * 60

	for di, day := range days {
		key := FormatDate(day)
		cursor := windowStart

		for k := range plans {
			idx := k
			if in.Settings.DistributeEvenly {
				idx = (k + di) % len(plans)
			}
			p := plans[idx]

			if p.absent[key] || p.remaining <= 0 {
				continue
			}
			block := blockLength(p.remaining)
			if block <= 0 {
				continue
			}
			if cursor+block > windowEnd {
				p.skipped++
				continue
			}

			res.Shifts = append(res.Shifts, Assignment{
				UserID:    p.employee.ID,
				Date:      key,
				Day:       day.Weekday().String(),
				StartTime: FormatClock(cursor),
				EndTime:   FormatClock(cursor + block),
				Type:      TypeWork,
			})
			cursor += block
			p.remaining -= block
			p.assigned += block
		}
	}

	for _, p := range plans {
		short := p.assigned < p.minimum || (p.skipped > 0 && p.assigned < p.target)
		if !short {
			continue
		}
		res.Unmet = append(res.Unmet, Unmet{
			UserID:          p.employee.ID,
			MinimumMinutes:  p.minimum,
			TargetMinutes:   p.target,
			AssignedMinutes: p.assigned,
			SkippedDays:     p.skipped,
		})
	}
	if len(res.Unmet) > 0 {
		res.Status = StatusPartiallyAssigned
	}
	return res
}

// TotalMinutes sums the assigned work minutes per employee.
func (r Result) TotalMinutes() map[uint]int {
	totals := make(map[uint]int)
	for _, s := range r.Shifts {
		start, _ := ParseClock(s.StartTime)
		end, _ := ParseClock(s.EndTime)
		totals[s.UserID] += end - start
	}
	return totals
}

func absentDays(in Input) map[uint]map[string]bool {
	absent := make(map[uint]map[string]bool)
	if !in.Settings.RespectTimeOffRequests {
		return absent
	}
	for _, a := range in.Absences {
		if !a.FullDay {
			continue
		}
		start, end, ok := Overlap(truncateDay(a.Start), truncateDay(a.End), truncateDay(in.Start), truncateDay(in.End))
		if !ok {
			continue
		}
		if absent[a.UserID] == nil {
			absent[a.UserID] = make(map[string]bool)
		}
		for _, d := range Days(start, end) {
			absent[a.UserID][FormatDate(d)] = true
		}
	}
	return absent
}

func bounds(e Employee, s Settings) (int, int) {
	minH, maxH := s.MinHoursPerEmployee, s.MaxHoursPerEmployee
	if e.MinHours > 0 {
		minH = e.MinHours
	}
	if e.MaxHours > 0 {
		maxH = e.MaxHours
	}
	if minH > maxH {
		minH, maxH = maxH, minH
	}
	return minH, maxH
}

// blockLength is 8h, 4h once less than 8h remain, and the slot-aligned
// remainder below 4h so the maximum is never exceeded.
func blockLength(remaining int) int {
	switch {
	case remaining >= fullBlockMinutes:
		return fullBlockMinutes
	case remaining >= halfBlockMinutes:
		return halfBlockMinutes
	default:
		return remaining - remaining%SlotMinutes
	}
}
