package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidateMergesOnlyAdjacentSlots(t *testing.T) {
	view := ConsolidateDay([]Row{
		{StartTime: "11:00", EndTime: "11:30", Type: TypeWork},
		{StartTime: "09:30", EndTime: "10:00", Type: TypeWork},
		{StartTime: "09:00", EndTime: "09:30", Type: TypeWork},
	})

	require.Len(t, view.Blocks, 2)
	assert.Equal(t, Block{StartTime: "09:00", EndTime: "10:00", Type: TypeWork}, view.Blocks[0])
	assert.Equal(t, Block{StartTime: "11:00", EndTime: "11:30", Type: TypeWork}, view.Blocks[1])
	assert.Empty(t, view.Flags)
	assert.Equal(t, 90, view.WorkMinutes)
}

func TestConsolidateIsIdempotent(t *testing.T) {
	first := ConsolidateDay([]Row{
		{StartTime: "08:00", EndTime: "08:30", Type: TypeWork},
		{StartTime: "08:30", EndTime: "12:00", Type: TypeWork},
		{StartTime: "13:00", EndTime: "17:00", Type: TypeWork},
		{StartTime: "16:00", EndTime: "18:00", Type: TypeWork},
	})
	second := ConsolidateDay(first.Rows())

	assert.Equal(t, first, second)
	assert.Equal(t, []Block{
		{StartTime: "08:00", EndTime: "12:00", Type: TypeWork},
		{StartTime: "13:00", EndTime: "18:00", Type: TypeWork},
	}, first.Blocks)
}

func TestRowsRoundTripKeepsBlocksOnly(t *testing.T) {
	view := ConsolidateDay([]Row{
		{StartTime: "09:00", EndTime: "17:00", Type: TypeWork},
		{StartTime: "09:00", EndTime: "13:00", Type: TypeVacation},
	})
	again := ConsolidateDay(view.Rows())

	assert.Equal(t, view.Blocks, again.Blocks)
	assert.Equal(t, view.WorkMinutes, again.WorkMinutes)
	assert.Equal(t, []ShiftType{TypeVacation}, view.Flags)
	assert.Empty(t, again.Flags)
}

func TestConsolidateSickOutranksWork(t *testing.T) {
	view := ConsolidateDay([]Row{
		{StartTime: "09:00", EndTime: "10:00", Type: TypeWork},
		{StartTime: "09:00", EndTime: "10:00", Type: TypeSick},
	})

	assert.Empty(t, view.Blocks)
	assert.Equal(t, []ShiftType{TypeSick}, view.Flags)
	assert.Equal(t, TypeSick, view.Primary())
}

func TestConsolidateWorkShownOutsideAbsence(t *testing.T) {
	view := ConsolidateDay([]Row{
		{StartTime: "09:00", EndTime: "17:00", Type: TypeWork},
		{StartTime: "09:00", EndTime: "13:00", Type: TypeVacation},
	})

	require.Len(t, view.Blocks, 1)
	assert.Equal(t, "13:00", view.Blocks[0].StartTime)
	assert.Equal(t, "17:00", view.Blocks[0].EndTime)
	assert.Equal(t, []ShiftType{TypeVacation}, view.Flags)
}

func TestConsolidateFullDayAbsenceHidesAllWork(t *testing.T) {
	view := ConsolidateDay([]Row{
		{StartTime: "06:00", EndTime: "09:00", Type: TypeWork},
		{StartTime: "09:00", EndTime: "18:00", Type: TypeVacation, FullDay: true},
		{StartTime: "09:00", EndTime: "18:00", Type: TypeLeave},
	})

	assert.Empty(t, view.Blocks)
	assert.Equal(t, []ShiftType{TypeLeave, TypeVacation}, view.Flags)
	assert.Equal(t, 0, view.WorkMinutes)
}

func TestConsolidateIgnoresMalformedRows(t *testing.T) {
	view := ConsolidateDay([]Row{
		{StartTime: "bogus", EndTime: "10:00", Type: TypeWork},
		{StartTime: "10:00", EndTime: "09:00", Type: TypeWork},
		{StartTime: "10:00", EndTime: "11:00", Type: "overtime"},
	})

	assert.Empty(t, view.Blocks)
	assert.Empty(t, view.Flags)
	assert.Equal(t, ShiftType(""), view.Primary())
}

func TestBuildGridGroupsByEmployeeAndDate(t *testing.T) {
	grid := BuildGrid([]Entry{
		{UserID: 1, Date: "2024-06-03", Row: Row{StartTime: "09:00", EndTime: "13:00", Type: TypeWork}},
		{UserID: 1, Date: "2024-06-03", Row: Row{StartTime: "13:00", EndTime: "17:00", Type: TypeWork}},
		{UserID: 1, Date: "2024-06-04", Row: Row{StartTime: "09:00", EndTime: "18:00", Type: TypeSick, FullDay: true}},
		{UserID: 2, Date: "2024-06-03", Row: Row{StartTime: "10:00", EndTime: "12:00", Type: TypeWork}},
	})

	assert.Equal(t, 8*60, grid.WorkMinutes(1))
	assert.Equal(t, 2*60, grid.WorkMinutes(2))
	assert.Equal(t, 1, grid.AbsenceDays(1, TypeSick))
	assert.Equal(t, []string{"2024-06-03", "2024-06-04"}, grid.Dates(1))
	require.Len(t, grid[1]["2024-06-03"].Blocks, 1)
}

func TestSlotHelpers(t *testing.T) {
	assert.True(t, IsSlotAligned("09:30"))
	assert.False(t, IsSlotAligned("09:15"))
	assert.False(t, IsSlotAligned("9am"))
	assert.True(t, IsSlotAligned("24:00"))
	assert.Equal(t, "07:30", FormatClock(450))
	assert.Len(t, Days(mustDate(t, "2024-06-01"), mustDate(t, "2024-06-07")), 7)

	start, end, ok := Overlap(mustDate(t, "2024-06-03"), mustDate(t, "2024-06-10"), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-07"))
	require.True(t, ok)
	assert.Equal(t, "2024-06-03", FormatDate(start))
	assert.Equal(t, "2024-06-07", FormatDate(end))

	_, _, ok = Overlap(mustDate(t, "2024-06-10"), mustDate(t, "2024-06-12"), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-07"))
	assert.False(t, ok)
}
