package scheduler

import "sort"

// Row is one stored shift for a single employee on a single day.
type Row struct {
	StartTime string
	EndTime   string
	Type      ShiftType
	FullDay   bool
}

type Block struct {
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Type      ShiftType `json:"type"`
}

// DayView is the display form of one employee/day cell: merged work blocks
// plus absence flags, highest priority first.
type DayView struct {
	Blocks      []Block     `json:"blocks"`
	Flags       []ShiftType `json:"flags"`
	WorkMinutes int         `json:"work_minutes"`
}

// ConsolidateDay resolves every 30-minute slot to the highest priority type
// claiming it and merges adjacent work slots into blocks. Absence kinds are
// reported as flags and never merged by time.
func ConsolidateDay(rows []Row) DayView {
	var slots [SlotsPerDay]ShiftType

	claim := func(slot int, t ShiftType) {
		if t.Priority() > slots[slot].Priority() {
			slots[slot] = t
		}
	}

	for _, r := range rows {
		if !r.Type.Valid() {
			continue
		}
		if r.FullDay && r.Type.IsAbsence() {
			for i := range slots {
				claim(i, r.Type)
			}
			continue
		}
		start, err := ParseClock(r.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(r.EndTime)
		if err != nil || end <= start {
			continue
		}
		first := start / SlotMinutes
		last := (end + SlotMinutes - 1) / SlotMinutes
		for i := first; i < last && i < SlotsPerDay; i++ {
			claim(i, r.Type)
		}
	}

	view := DayView{Blocks: []Block{}, Flags: []ShiftType{}}
	seen := make(map[ShiftType]bool)
	open := -1
	for i := 0; i <= SlotsPerDay; i++ {
		var t ShiftType
		if i < SlotsPerDay {
			t = slots[i]
		}
		if t.IsAbsence() && !seen[t] {
			seen[t] = true
			view.Flags = append(view.Flags, t)
		}
		switch {
		case t == TypeWork && open < 0:
			open = i
		case t != TypeWork && open >= 0:
			view.Blocks = append(view.Blocks, Block{
				StartTime: FormatClock(open * SlotMinutes),
				EndTime:   FormatClock(i * SlotMinutes),
				Type:      TypeWork,
			})
			view.WorkMinutes += (i - open) * SlotMinutes
			open = -1
		}
	}

	sort.SliceStable(view.Flags, func(i, j int) bool {
		return view.Flags[i].Priority() > view.Flags[j].Priority()
	})
	return view
}

// Rows converts the merged work blocks back into rows. Flags carry no times
// and are left out, so ConsolidateDay(v.Rows()) reproduces the blocks and
// work minutes of v but not its flags.
func (v DayView) Rows() []Row {
	rows := make([]Row, 0, len(v.Blocks))
	for _, b := range v.Blocks {
		rows = append(rows, Row{StartTime: b.StartTime, EndTime: b.EndTime, Type: b.Type})
	}
	return rows
}

// Primary is the type the cell displays as: the top absence flag if any,
// otherwise work when there are blocks.
func (v DayView) Primary() ShiftType {
	if len(v.Flags) > 0 {
		return v.Flags[0]
	}
	if len(v.Blocks) > 0 {
		return TypeWork
	}
	return ""
}
