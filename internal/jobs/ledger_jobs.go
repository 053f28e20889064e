package jobs

import (
	"context"
	"time"

	"dormhub-backend/internal/logger"
	"dormhub-backend/internal/utils"
)

// ReconcileRoomAvailability rewrites each room's availability flag from the
// presence of an active or pending assignment. Manual edits and crashed
// transactions can leave the flag stale; this job is the nightly repair.
func (jr *JobRunner) ReconcileRoomAvailability() {
	jr.runWithRecovery("ReconcileRoomAvailability", func() {
		ctx := context.Background()

		corrected, err := jr.store.RoomRepository.ReconcileAvailability(ctx)
		if err != nil {
			logger.Error("Failed to reconcile room availability", "error", err)
			return
		}
		logger.Info("Reconciled room availability", "rooms_corrected", corrected)
	})
}

// SendUpcomingDueReminders emails students whose active assignment ends
// within the configured reminder window.
func (jr *JobRunner) SendUpcomingDueReminders() {
	jr.runWithRecovery("SendUpcomingDueReminders", func() {
		ctx := context.Background()

		days := jr.config.Scheduler.DueReminderDays
		from := utils.FormatDate(time.Now().UTC())
		to := utils.FormatDate(time.Now().UTC().AddDate(0, 0, days))

		assignments, err := jr.store.AssignmentRepository.ListEndingBetween(ctx, from, to)
		if err != nil {
			logger.Error("Failed to list assignments ending soon", "error", err)
			return
		}

		sent := 0
		for _, a := range assignments {
			if a.EndDate == nil {
				continue
			}
			user, err := jr.store.UserRepository.GetByID(ctx, a.UserID)
			if err != nil {
				logger.Error("Failed to load user for due reminder",
					"assignment_id", a.ID, "user_id", a.UserID, "error", err)
				continue
			}
			if err := jr.services.Email.SendDueDateReminder(ctx, user.Email, user.FullName(), *a.EndDate); err != nil {
				logger.Error("Failed to send due date reminder",
					"assignment_id", a.ID, "user_id", a.UserID, "error", err)
				continue
			}
			sent++
			logger.Debug("Sent due date reminder",
				"assignment_id", a.ID, "user_id", a.UserID, "end_date", *a.EndDate)
		}

		logger.Info("Sent upcoming due reminders", "count", sent, "window_days", days)
	})
}
