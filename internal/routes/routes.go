package routes

import (
	"staff-scheduler/config"
	"staff-scheduler/internal/auth"
	"staff-scheduler/internal/mailer"
	"staff-scheduler/internal/middleware"
	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"
	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Services is everything the route groups need, built once per process.
type Services struct {
	Config *config.Config
	Log    *logrus.Logger
	Tokens *auth.TokenService

	Users      repository.UserRepository
	ClosedDays repository.ClosedDayRepository
	Dashboard  repository.DashboardRepository

	Auth          *usecase.AuthUsecase
	UserAdmin     *usecase.UserUsecase
	Notifications *usecase.NotificationUsecase
	Schedules     *usecase.ScheduleUsecase
	Shifts        *usecase.ShiftUsecase
	TimeOff       *usecase.TimeOffUsecase
	Documents     *usecase.DocumentUsecase
	Messages      *usecase.MessageUsecase
}

func NewServices(db *gorm.DB, cfg *config.Config, log *logrus.Logger, pusher usecase.Pusher, mail mailer.Mailer) *Services {
	users := repository.NewUserRepository(db)
	schedules := repository.NewScheduleRepository(db)
	shifts := repository.NewShiftRepository(db)
	timeOff := repository.NewTimeOffRepository(db)
	closedDays := repository.NewClosedDayRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	notifications := usecase.NewNotificationUsecase(repository.NewNotificationRepository(db), users, pusher, mail, log)

	return &Services{
		Config:     cfg,
		Log:        log,
		Tokens:     tokens,
		Users:      users,
		ClosedDays: closedDays,
		Dashboard:  repository.NewDashboardRepository(db),

		Auth:          usecase.NewAuthUsecase(users, tokens, log),
		UserAdmin:     usecase.NewUserUsecase(users, log),
		Notifications: notifications,
		Schedules:     usecase.NewScheduleUsecase(db, schedules, shifts, users, timeOff, closedDays, notifications, log),
		Shifts:        usecase.NewShiftUsecase(shifts, schedules, users, log),
		TimeOff:       usecase.NewTimeOffUsecase(db, timeOff, schedules, shifts, users, notifications, log),
		Documents:     usecase.NewDocumentUsecase(repository.NewDocumentRepository(db), users, notifications, cfg.UploadDir, log),
		Messages:      usecase.NewMessageUsecase(repository.NewMessageRepository(db), users, notifications, log),
	}
}

func (s *Services) authRequired() fiber.Handler {
	return middleware.Auth(s.Tokens, s.Config.SessionCookie)
}

func adminOnly() fiber.Handler {
	return middleware.Role(model.RoleAdmin)
}

// Setup registers every route group on the app.
func Setup(app *fiber.App, s *Services) {
	SetupAuthRoutes(app, s)
	SetupUserRoutes(app, s)
	SetupScheduleRoutes(app, s)
	SetupShiftRoutes(app, s)
	SetupTimeOffRoutes(app, s)
	SetupClosedDayRoutes(app, s)
	SetupDocumentRoutes(app, s)
	SetupNotificationRoutes(app, s)
	SetupMessageRoutes(app, s)
	SetupDashboardRoutes(app, s)
	SetupReportRoutes(app, s)
}
