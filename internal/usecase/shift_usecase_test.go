package usecase

import (
	"context"
	"testing"

	"staff-scheduler/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualShiftValidation(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	sched := e.makeSchedule(t, "2024-06-01", "2024-06-07")

	created, err := e.shift.Create(ShiftInput{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "13:00", Area: "Front"})
	require.NoError(t, err)
	assert.Equal(t, "Monday", created.Day)
	assert.Equal(t, model.ShiftTypeWork, created.Type)

	_, err = e.shift.Create(ShiftInput{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "12:30", EndTime: "15:00"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = e.shift.Create(ShiftInput{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "13:00", EndTime: "15:00"})
	assert.NoError(t, err, "touching blocks do not overlap")

	bad := map[string]ShiftInput{
		"unaligned":      {ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-04", StartTime: "09:15", EndTime: "12:00"},
		"inverted":       {ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-04", StartTime: "12:00", EndTime: "09:00"},
		"outside":        {ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-09", StartTime: "09:00", EndTime: "12:00"},
		"unknown type":   {ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-04", StartTime: "09:00", EndTime: "12:00", Type: "overtime"},
		"malformed date": {ScheduleID: sched.ID, UserID: alice.ID, Date: "04/06/2024", StartTime: "09:00", EndTime: "12:00"},
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := e.shift.Create(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err = e.shift.Create(ShiftInput{ScheduleID: 404, UserID: alice.ID, Date: "2024-06-04", StartTime: "09:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateShiftIgnoresItselfForOverlap(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	sched := e.makeSchedule(t, "2024-06-01", "2024-06-07")

	created, err := e.shift.Create(ShiftInput{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "13:00"})
	require.NoError(t, err)

	updated, err := e.shift.Update(created.ID, ShiftInput{Date: "2024-06-03", StartTime: "10:00", EndTime: "14:00", Notes: "late start"})
	require.NoError(t, err)
	assert.Equal(t, "10:00", updated.StartTime)
	assert.Equal(t, "late start", updated.Notes)

	require.NoError(t, e.shift.Delete(created.ID))
	_, err = e.shift.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAbsenceRowsAreNotEditableAsShifts(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	boss := e.user(t, "Boss", model.RoleAdmin)
	e.makeSchedule(t, "2024-06-01", "2024-06-07")

	req, err := e.timeOffs.Submit(alice.ID, TimeOffInput{Type: model.TimeOffSick, StartDate: "2024-06-04", EndDate: "2024-06-04"})
	require.NoError(t, err)
	out, err := e.timeOffs.Review(context.Background(), req.ID, boss.ID, true, "")
	require.NoError(t, err)
	require.Len(t, out.Shifts, 1)
	absence := out.Shifts[0]

	_, err = e.shift.Update(absence.ID, ShiftInput{Date: "2024-06-04", StartTime: "09:00", EndTime: "12:00", Type: model.ShiftTypeWork})
	assert.ErrorIs(t, err, ErrConflict)

	err = e.shift.Delete(absence.ID)
	assert.ErrorIs(t, err, ErrConflict)

	rows, err := e.shifts.GetByTimeOffRequest(req.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "the approved request keeps its absence row")
}

func TestMineOnlyShowsPublished(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "Alice", model.RoleEmployee)
	draft := e.makeSchedule(t, "2024-06-01", "2024-06-07")
	live := e.makeSchedule(t, "2024-06-08", "2024-06-14")

	_, err := e.shift.Create(ShiftInput{ScheduleID: draft.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)
	for _, r := range [][2]string{{"09:00", "12:00"}, {"12:00", "17:00"}} {
		_, err := e.shift.Create(ShiftInput{ScheduleID: live.ID, UserID: alice.ID, Date: "2024-06-10", StartTime: r[0], EndTime: r[1]})
		require.NoError(t, err)
	}
	_, err = e.schedule.Publish(live.ID)
	require.NoError(t, err)

	days, err := e.shift.Mine(alice.ID, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-06-10", days[0].Date)
	require.Len(t, days[0].Blocks, 1)
	assert.Equal(t, "09:00", days[0].Blocks[0].StartTime)
	assert.Equal(t, "17:00", days[0].Blocks[0].EndTime)
}
