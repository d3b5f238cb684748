package usecase

import (
	"fmt"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/scheduler"
)

// absenceRows builds the absence layer of one approved request inside one
// schedule: a placeholder row per day of the clamped overlap. Work rows are
// left alone and lose to these at read time.
func absenceRows(req *model.TimeOffRequest, sched *model.Schedule) ([]model.Shift, error) {
	reqStart, err := scheduler.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	reqEnd, err := scheduler.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	schedStart, err := scheduler.ParseDate(sched.StartDate)
	if err != nil {
		return nil, err
	}
	schedEnd, err := scheduler.ParseDate(sched.EndDate)
	if err != nil {
		return nil, err
	}

	start, end, ok := scheduler.Overlap(reqStart, reqEnd, schedStart, schedEnd)
	if !ok {
		return nil, nil
	}

	from, to := req.AbsenceWindow()
	reqID := req.ID
	var rows []model.Shift
	for _, d := range scheduler.Days(start, end) {
		rows = append(rows, model.Shift{
			ScheduleID:       sched.ID,
			UserID:           req.UserID,
			Date:             scheduler.FormatDate(d),
			Day:              d.Weekday().String(),
			StartTime:        from,
			EndTime:          to,
			Type:             req.AbsenceShiftType(),
			Notes:            fmt.Sprintf("time off #%d", req.ID),
			TimeOffRequestID: &reqID,
			FullDay:          req.IsFullDay(),
		})
	}
	return rows, nil
}

// toAbsences converts approved requests into engine input.
func toAbsences(reqs []model.TimeOffRequest) []scheduler.Absence {
	out := make([]scheduler.Absence, 0, len(reqs))
	for _, r := range reqs {
		start, err := scheduler.ParseDate(r.StartDate)
		if err != nil {
			continue
		}
		end, err := scheduler.ParseDate(r.EndDate)
		if err != nil {
			continue
		}
		out = append(out, scheduler.Absence{UserID: r.UserID, Start: start, End: end, FullDay: r.IsFullDay()})
	}
	return out
}

func toEntries(shifts []model.Shift) []scheduler.Entry {
	entries := make([]scheduler.Entry, 0, len(shifts))
	for _, s := range shifts {
		entries = append(entries, scheduler.Entry{
			UserID: s.UserID,
			Date:   s.Date,
			Row: scheduler.Row{
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Type:      scheduler.ShiftType(s.Type),
				FullDay:   s.FullDay,
			},
		})
	}
	return entries
}

// dateRange parses and orders a YYYY-MM-DD pair.
func dateRange(start, end string) (string, string, error) {
	s, err := scheduler.ParseDate(start)
	if err != nil {
		return "", "", invalid("start date %q", start)
	}
	e, err := scheduler.ParseDate(end)
	if err != nil {
		return "", "", invalid("end date %q", end)
	}
	if e.Before(s) {
		return "", "", invalid("end date is before start date")
	}
	return scheduler.FormatDate(s), scheduler.FormatDate(e), nil
}
