package usecase

import (
	"sync"
	"testing"

	"staff-scheduler/internal/logging"
	"staff-scheduler/internal/mailer"
	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"
	"staff-scheduler/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pushed struct {
	UserID uint
	Type   string
}

type fakePusher struct {
	mu     sync.Mutex
	events []pushed
}

func (p *fakePusher) SendToUser(userID uint, eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, pushed{UserID: userID, Type: eventType})
}

func (p *fakePusher) For(userID uint) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.UserID == userID {
			n++
		}
	}
	return n
}

type env struct {
	db     *gorm.DB
	pusher *fakePusher
	mail   *mailer.Recorder

	users      repository.UserRepository
	schedules  repository.ScheduleRepository
	shifts     repository.ShiftRepository
	timeOff    repository.TimeOffRepository
	closedDays repository.ClosedDayRepository

	notifications *NotificationUsecase
	schedule      *ScheduleUsecase
	timeOffs     *TimeOffUsecase
	shift         *ShiftUsecase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	log := logging.Discard()

	e := &env{
		db:         db,
		pusher:     &fakePusher{},
		mail:       &mailer.Recorder{},
		users:      repository.NewUserRepository(db),
		schedules:  repository.NewScheduleRepository(db),
		shifts:     repository.NewShiftRepository(db),
		timeOff:    repository.NewTimeOffRepository(db),
		closedDays: repository.NewClosedDayRepository(db),
	}
	e.notifications = NewNotificationUsecase(repository.NewNotificationRepository(db), e.users, e.pusher, e.mail, log)
	e.schedule = NewScheduleUsecase(db, e.schedules, e.shifts, e.users, e.timeOff, e.closedDays, e.notifications, log)
	e.timeOffs = NewTimeOffUsecase(db, e.timeOff, e.schedules, e.shifts, e.users, e.notifications, log)
	e.shift = NewShiftUsecase(e.shifts, e.schedules, e.users, log)
	return e
}

func (e *env) user(t *testing.T, name, role string) *model.User {
	return testutil.CreateUser(t, e.db, name, role)
}

func (e *env) makeSchedule(t *testing.T, start, end string) *model.Schedule {
	t.Helper()
	s := &model.Schedule{Title: start, StartDate: start, EndDate: end}
	require.NoError(t, e.schedules.Create(s))
	return s
}
