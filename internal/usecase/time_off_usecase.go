package usecase

import (
	"context"
	"fmt"
	"time"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TimeOffUsecase struct {
	db        *gorm.DB
	requests  repository.TimeOffRepository
	schedules repository.ScheduleRepository
	shifts    repository.ShiftRepository
	users     repository.UserRepository
	notifier  *NotificationUsecase
	log       *logrus.Logger
}

func NewTimeOffUsecase(
	db *gorm.DB,
	requests repository.TimeOffRepository,
	schedules repository.ScheduleRepository,
	shifts repository.ShiftRepository,
	users repository.UserRepository,
	notifier *NotificationUsecase,
	log *logrus.Logger,
) *TimeOffUsecase {
	return &TimeOffUsecase{
		db:        db,
		requests:  requests,
		schedules: schedules,
		shifts:    shifts,
		users:     users,
		notifier:  notifier,
		log:       log,
	}
}

type TimeOffInput struct {
	Type      string
	StartDate string
	EndDate   string
	Duration  string
	Reason    string
}

type ReviewOutcome struct {
	Request *model.TimeOffRequest `json:"request"`
	// Absence rows written into overlapping schedules on approval
	Shifts []model.Shift `json:"shifts"`
}

func (u *TimeOffUsecase) Submit(userID uint, in TimeOffInput) (*model.TimeOffRequest, error) {
	switch in.Type {
	case model.TimeOffVacation, model.TimeOffPersonal, model.TimeOffSick:
	default:
		return nil, invalid("time off type %q", in.Type)
	}
	if in.Duration == "" {
		in.Duration = model.DurationFull
	}
	switch in.Duration {
	case model.DurationFull, model.DurationHalfAM, model.DurationHalfPM:
	default:
		return nil, invalid("duration %q", in.Duration)
	}

	start, end, err := dateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if in.Duration != model.DurationFull && start != end {
		return nil, invalid("half day requests must cover a single day")
	}

	req := &model.TimeOffRequest{
		UserID:    userID,
		Type:      in.Type,
		StartDate: start,
		EndDate:   end,
		Duration:  in.Duration,
		Reason:    in.Reason,
		Status:    model.StatusPending,
	}
	if err := u.requests.Create(req); err != nil {
		return nil, err
	}

	admins, err := u.users.GetAdmins()
	if err != nil {
		u.log.WithError(err).Error("Failed to load admins")
	}
	ids := make([]uint, 0, len(admins))
	for _, a := range admins {
		ids = append(ids, a.ID)
	}
	u.notifier.Notify(ids, Notice{
		Kind:    model.NotifyTimeOffSubmitted,
		Title:   "New time off request",
		Body:    fmt.Sprintf("A %s request for %s to %s is waiting for review.", req.Type, req.StartDate, req.EndDate),
		Payload: map[string]interface{}{"time_off_request_id": req.ID},
	})

	u.log.WithFields(logrus.Fields{"request_id": req.ID, "user_id": userID}).Info("Time off submitted")
	return req, nil
}

func (u *TimeOffUsecase) Mine(userID uint) ([]model.TimeOffRequest, error) {
	return u.requests.GetByUser(userID)
}

func (u *TimeOffUsecase) List(status string) ([]model.TimeOffRequest, error) {
	return u.requests.GetAll(status)
}

func (u *TimeOffUsecase) Get(id uint, viewer Viewer) (*model.TimeOffRequest, error) {
	req, err := u.requests.GetByID(id)
	if err != nil {
		return nil, notFound(err, "time off request")
	}
	if !viewer.IsAdmin() && req.UserID != viewer.UserID {
		return nil, fmt.Errorf("time off request %d: %w", id, ErrNotFound)
	}
	return req, nil
}

// Cancel lets the owner withdraw a request that nobody reviewed yet.
func (u *TimeOffUsecase) Cancel(userID, id uint) (*model.TimeOffRequest, error) {
	req, err := u.requests.GetByID(id)
	if err != nil {
		return nil, notFound(err, "time off request")
	}
	if req.UserID != userID {
		return nil, ErrForbidden
	}
	if req.Status != model.StatusPending {
		return nil, ErrAlreadyReviewed
	}
	req.Status = model.StatusCancelled
	if err := u.requests.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Review approves or rejects a pending request. Approval writes the absence
// layer into every overlapping schedule in the same transaction as the status
// change; the requester is notified after commit.
func (u *TimeOffUsecase) Review(ctx context.Context, id, reviewerID uint, approve bool, note string) (*ReviewOutcome, error) {
	out := &ReviewOutcome{Shifts: []model.Shift{}}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		requests := u.requests.WithTx(tx)
		req, err := requests.GetForUpdate(id)
		if err != nil {
			return notFound(err, "time off request")
		}
		if req.Status != model.StatusPending {
			return ErrAlreadyReviewed
		}

		now := time.Now()
		req.ReviewerID = &reviewerID
		req.ReviewedAt = &now
		req.ReviewNote = note
		req.Status = model.StatusRejected
		if approve {
			req.Status = model.StatusApproved
		}
		if err := requests.Update(req); err != nil {
			return err
		}
		out.Request = req

		if !approve {
			return nil
		}

		overlapping, err := u.schedules.WithTx(tx).GetOverlapping(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		for i := range overlapping {
			rows, err := absenceRows(req, &overlapping[i])
			if err != nil {
				return err
			}
			out.Shifts = append(out.Shifts, rows...)
		}
		return u.shifts.WithTx(tx).CreateMany(out.Shifts)
	})
	if err != nil {
		return nil, err
	}

	req := out.Request
	u.log.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"status":      req.Status,
		"reviewer_id": reviewerID,
		"absences":    len(out.Shifts),
	}).Info("Time off reviewed")

	u.notifier.Notify([]uint{req.UserID}, Notice{
		Kind:    model.NotifyTimeOffReviewed,
		Title:   "Time off request " + req.Status,
		Body:    fmt.Sprintf("Your %s request for %s to %s was %s.", req.Type, req.StartDate, req.EndDate, req.Status),
		Payload: map[string]interface{}{"time_off_request_id": req.ID, "status": req.Status},
		Email:   true,
	})
	return out, nil
}
