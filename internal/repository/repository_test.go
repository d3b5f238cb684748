package repository

import (
	"testing"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleOverlap(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewScheduleRepository(db)

	require.NoError(t, repo.Create(&model.Schedule{Title: "June W1", StartDate: "2024-06-01", EndDate: "2024-06-07"}))
	require.NoError(t, repo.Create(&model.Schedule{Title: "June W2", StartDate: "2024-06-08", EndDate: "2024-06-14"}))

	got, err := repo.GetOverlapping("2024-06-03", "2024-06-10")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.GetOverlapping("2024-06-15", "2024-06-20")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.GetOverlapping("2024-06-07", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "June W1", got[0].Title)
}

func TestShiftBatchAndWorkCount(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	schedules := NewScheduleRepository(db)
	shifts := NewShiftRepository(db)

	sched := &model.Schedule{StartDate: "2024-06-01", EndDate: "2024-06-07"}
	require.NoError(t, schedules.Create(sched))

	reqID := uint(9)
	require.NoError(t, shifts.CreateMany([]model.Shift{
		{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "08:00", EndTime: "16:00", Type: model.ShiftTypeWork},
		{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-04", StartTime: "08:00", EndTime: "16:00", Type: model.ShiftTypeWork},
		{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-05", StartTime: "09:00", EndTime: "18:00", Type: model.ShiftTypeVacation, FullDay: true, TimeOffRequestID: &reqID},
	}))

	count, err := schedules.CountWorkShifts(sched.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "absence rows do not count as work")

	byReq, err := shifts.GetByTimeOffRequest(reqID)
	require.NoError(t, err)
	require.Len(t, byReq, 1)
	assert.True(t, byReq[0].FullDay)

	all, err := shifts.GetBySchedule(sched.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alice", all[0].User.Name)

	deleted, err := shifts.DeleteBySchedule(sched.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)
}

func TestShiftCreateManyInsideRolledBackTx(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	shifts := NewShiftRepository(db)
	sched := &model.Schedule{StartDate: "2024-06-01", EndDate: "2024-06-07"}
	require.NoError(t, NewScheduleRepository(db).Create(sched))

	tx := db.Begin()
	require.NoError(t, shifts.WithTx(tx).CreateMany([]model.Shift{
		{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "08:00", EndTime: "16:00", Type: model.ShiftTypeWork},
	}))
	require.NoError(t, tx.Rollback().Error)

	rows, err := shifts.GetByUserAndDate(alice.ID, "2024-06-03")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTimeOffApprovedInRange(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	repo := NewTimeOffRepository(db)

	require.NoError(t, repo.Create(&model.TimeOffRequest{UserID: alice.ID, Type: model.TimeOffVacation, StartDate: "2024-06-03", EndDate: "2024-06-05", Status: model.StatusApproved}))
	require.NoError(t, repo.Create(&model.TimeOffRequest{UserID: alice.ID, Type: model.TimeOffSick, StartDate: "2024-06-04", EndDate: "2024-06-04", Status: model.StatusPending}))
	require.NoError(t, repo.Create(&model.TimeOffRequest{UserID: alice.ID, Type: model.TimeOffVacation, StartDate: "2024-07-01", EndDate: "2024-07-02", Status: model.StatusApproved}))

	list, err := repo.GetApprovedInRange("2024-06-01", "2024-06-07")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-06-03", list[0].StartDate)

	pending, err := repo.CountPending()
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	locked, err := repo.GetForUpdate(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, locked.Status)
}

func TestClosedDayLookup(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewClosedDayRepository(db)

	day := &model.ClosedDay{Date: "2024-06-06", Description: "Inventory"}
	require.NoError(t, repo.Create(day))

	closed, err := repo.IsClosed("2024-06-06")
	require.NoError(t, err)
	assert.True(t, closed)

	inRange, err := repo.GetInRange("2024-06-01", "2024-06-07")
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	require.NoError(t, repo.Delete(day.ID))
	require.NoError(t, repo.Create(&model.ClosedDay{Date: "2024-06-06"}))
}

func TestNotificationsAreScopedToOwner(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	bob := testutil.CreateUser(t, db, "Bob", model.RoleEmployee)
	repo := NewNotificationRepository(db)

	n := &model.Notification{UserID: alice.ID, Kind: model.NotifySchedulePublished, Title: "Published"}
	require.NoError(t, repo.Create(n))
	require.NoError(t, repo.Create(&model.Notification{UserID: alice.ID, Title: "Second"}))

	affected, err := repo.MarkRead(n.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.MarkRead(n.ID, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	unread, err := repo.CountUnread(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	affected, err = repo.MarkAllRead(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	list, err := repo.GetByUser(alice.ID, true)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMessageBoxes(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	boss := testutil.CreateUser(t, db, "Boss", model.RoleAdmin)
	repo := NewMessageRepository(db)

	msg := &model.Message{SenderID: boss.ID, RecipientID: alice.ID, Subject: "Hi", Body: "Welcome"}
	require.NoError(t, repo.Create(msg))

	inbox, err := repo.GetInbox(alice.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Boss", inbox[0].Sender.Name)

	require.NoError(t, repo.MarkRead(msg.ID))
	unread, err := repo.CountUnread(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, repo.HideForRecipient(msg.ID))
	inbox, err = repo.GetInbox(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	sent, err := repo.GetSent(boss.ID)
	require.NoError(t, err)
	assert.Len(t, sent, 1)
}

func TestDashboardStats(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	bob := testutil.CreateUser(t, db, "Bob", model.RoleEmployee)
	testutil.CreateUser(t, db, "Boss", model.RoleAdmin)

	require.NoError(t, db.Create(&model.Schedule{StartDate: "2024-06-01", EndDate: "2024-06-07", IsPublished: true}).Error)
	require.NoError(t, db.Create(&model.Shift{ScheduleID: 1, UserID: alice.ID, Date: "2024-06-03", StartTime: "08:00", EndTime: "16:00", Type: model.ShiftTypeWork}).Error)
	require.NoError(t, db.Create(&model.Shift{ScheduleID: 1, UserID: bob.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "18:00", Type: model.ShiftTypeSick, FullDay: true}).Error)
	require.NoError(t, db.Create(&model.TimeOffRequest{UserID: alice.ID, Type: model.TimeOffVacation, StartDate: "2024-06-10", EndDate: "2024-06-10", Status: model.StatusPending}).Error)

	stats, err := NewDashboardRepository(db).GetDashboardStats("2024-06-03")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.ActiveEmployees)
	assert.EqualValues(t, 1, stats.PendingTimeOff)
	assert.EqualValues(t, 1, stats.PublishedSchedules)
	assert.EqualValues(t, 1, stats.ShiftsToday)
	assert.EqualValues(t, 1, stats.AbsencesByTypeToday[model.ShiftTypeSick])
}

func TestDashboardSkipsWorkOutrankedByFullDayAbsence(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleEmployee)
	bob := testutil.CreateUser(t, db, "Bob", model.RoleEmployee)
	sched := &model.Schedule{StartDate: "2024-06-01", EndDate: "2024-06-07"}
	require.NoError(t, db.Create(sched).Error)

	require.NoError(t, NewShiftRepository(db).CreateMany([]model.Shift{
		{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "08:00", EndTime: "16:00", Type: model.ShiftTypeWork},
		{ScheduleID: sched.ID, UserID: alice.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "18:00", Type: model.ShiftTypeSick, FullDay: true},
		// A half day leaves the rest of the shift standing
		{ScheduleID: sched.ID, UserID: bob.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "17:00", Type: model.ShiftTypeWork},
		{ScheduleID: sched.ID, UserID: bob.ID, Date: "2024-06-03", StartTime: "09:00", EndTime: "13:00", Type: model.ShiftTypeVacation},
		// Other days do not interfere
		{ScheduleID: sched.ID, UserID: bob.ID, Date: "2024-06-04", StartTime: "09:00", EndTime: "18:00", Type: model.ShiftTypeLeave, FullDay: true},
	}))

	stats, err := NewDashboardRepository(db).GetDashboardStats("2024-06-03")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.ShiftsToday)
	assert.EqualValues(t, 1, stats.AbsencesByTypeToday[model.ShiftTypeSick])
	assert.EqualValues(t, 1, stats.AbsencesByTypeToday[model.ShiftTypeVacation])
	assert.EqualValues(t, 0, stats.AbsencesByTypeToday[model.ShiftTypeLeave])
}
