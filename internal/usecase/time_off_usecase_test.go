package usecase

import (
	"context"
	"testing"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveVacationLayersOverExistingWork(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	boss := e.user(t, "Boss", model.RoleAdmin)
	sched := e.makeSchedule(t, "2024-06-01", "2024-06-07")

	for _, date := range []string{"2024-06-03", "2024-06-04", "2024-06-06"} {
		_, err := e.shift.Create(ShiftInput{ScheduleID: sched.ID, UserID: alice.ID, Date: date, StartTime: "08:00", EndTime: "16:00"})
		require.NoError(t, err)
	}

	req, err := e.timeOffs.Submit(alice.ID, TimeOffInput{Type: model.TimeOffVacation, StartDate: "2024-06-03", EndDate: "2024-06-05"})
	require.NoError(t, err)
	assert.Equal(t, 1, e.pusher.For(boss.ID), "admins hear about new requests")

	out, err := e.timeOffs.Review(context.Background(), req.ID, boss.ID, true, "enjoy")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, out.Request.Status)
	require.Len(t, out.Shifts, 3)

	rows, err := e.shifts.GetByTimeOffRequest(req.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, date := range []string{"2024-06-03", "2024-06-04", "2024-06-05"} {
		assert.Equal(t, date, rows[i].Date)
		assert.Equal(t, model.ShiftTypeVacation, rows[i].Type)
		assert.Equal(t, "09:00", rows[i].StartTime)
		assert.Equal(t, "18:00", rows[i].EndTime)
		assert.Equal(t, alice.ID, rows[i].UserID)
	}

	// Work rows are kept for audit but no longer render on the absent days.
	all, err := e.shifts.GetBySchedule(sched.ID)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	detail, err := e.schedule.Get(sched.ID, Viewer{Role: model.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, detail.Rows, 1)
	days := detail.Rows[0].Days
	for _, date := range []string{"2024-06-03", "2024-06-04", "2024-06-05"} {
		assert.Equal(t, scheduler.TypeVacation, days[date].Primary(), date)
		assert.Empty(t, days[date].Blocks, date)
	}
	assert.Equal(t, scheduler.TypeWork, days["2024-06-06"].Primary())
	assert.Equal(t, 8*60, detail.Rows[0].WorkMinutes)

	assert.Equal(t, 1, e.pusher.For(alice.ID))
	require.Len(t, e.mail.Sent(), 1)
	assert.Contains(t, e.mail.Sent()[0].Subject, "approved")
}

func TestApprovalCoversEveryOverlappingSchedule(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	boss := e.user(t, "Boss", model.RoleAdmin)
	e.makeSchedule(t, "2024-06-01", "2024-06-07")
	e.makeSchedule(t, "2024-06-08", "2024-06-14")
	e.makeSchedule(t, "2024-07-01", "2024-07-07")

	req, err := e.timeOffs.Submit(alice.ID, TimeOffInput{Type: model.TimeOffPersonal, StartDate: "2024-06-06", EndDate: "2024-06-09"})
	require.NoError(t, err)
	out, err := e.timeOffs.Review(context.Background(), req.ID, boss.ID, true, "")
	require.NoError(t, err)

	require.Len(t, out.Shifts, 4)
	for _, s := range out.Shifts {
		assert.Equal(t, model.ShiftTypeLeave, s.Type)
		assert.True(t, s.FullDay)
	}
}

func TestHalfDayApprovalKeepsOtherHalf(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	boss := e.user(t, "Boss", model.RoleAdmin)
	sched := e.makeSchedule(t, "2024-06-01", "2024-06-07")

	_, err := e.shift.Create(ShiftInput{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)

	req, err := e.timeOffs.Submit(alice.ID, TimeOffInput{Type: model.TimeOffSick, StartDate: "2024-06-03", EndDate: "2024-06-03", Duration: model.DurationHalfAM})
	require.NoError(t, err)
	_, err = e.timeOffs.Review(context.Background(), req.ID, boss.ID, true, "")
	require.NoError(t, err)

	detail, err := e.schedule.Get(sched.ID, Viewer{Role: model.RoleAdmin})
	require.NoError(t, err)
	day := detail.Rows[0].Days["2024-06-03"]
	require.Len(t, day.Blocks, 1)
	assert.Equal(t, "13:00", day.Blocks[0].StartTime)
	assert.Equal(t, "17:00", day.Blocks[0].EndTime)
	assert.Equal(t, []scheduler.ShiftType{scheduler.TypeSick}, day.Flags)
}

func TestReviewIsTerminal(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	boss := e.user(t, "Boss", model.RoleAdmin)
	e.makeSchedule(t, "2024-06-01", "2024-06-07")

	req, err := e.timeOffs.Submit(alice.ID, TimeOffInput{Type: model.TimeOffVacation, StartDate: "2024-06-03", EndDate: "2024-06-03"})
	require.NoError(t, err)

	out, err := e.timeOffs.Review(context.Background(), req.ID, boss.ID, false, "busy week")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, out.Request.Status)
	assert.Empty(t, out.Shifts)

	_, err = e.timeOffs.Review(context.Background(), req.ID, boss.ID, true, "")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	rows, err := e.shifts.GetByTimeOffRequest(req.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = e.timeOffs.Cancel(alice.ID, req.ID)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCancelOnlyByOwnerWhilePending(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	bob := e.user(t, "Bob", model.RoleEmployee)

	req, err := e.timeOffs.Submit(alice.ID, TimeOffInput{Type: model.TimeOffVacation, StartDate: "2024-06-03", EndDate: "2024-06-04"})
	require.NoError(t, err)

	_, err = e.timeOffs.Cancel(bob.ID, req.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	cancelled, err := e.timeOffs.Cancel(alice.ID, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = e.timeOffs.Review(context.Background(), req.ID, bob.ID, true, "")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestSubmitValidation(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)

	cases := map[string]TimeOffInput{
		"unknown type":        {Type: "sabbatical", StartDate: "2024-06-03", EndDate: "2024-06-03"},
		"reversed":            {Type: model.TimeOffSick, StartDate: "2024-06-05", EndDate: "2024-06-03"},
		"half day over range": {Type: model.TimeOffSick, StartDate: "2024-06-03", EndDate: "2024-06-04", Duration: model.DurationHalfPM},
		"bad duration":        {Type: model.TimeOffSick, StartDate: "2024-06-03", EndDate: "2024-06-03", Duration: "quarter"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.timeOffs.Submit(alice.ID, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
