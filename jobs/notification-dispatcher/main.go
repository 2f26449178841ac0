package main

import (
	"log/slog"
	"time"

	notificationsending "github.com/recuerda-health/recall-backend/pkg/messaging/notification-sending"
	messagingTypes "github.com/recuerda-health/recall-backend/pkg/messaging/types"
)

const (
	LAST_SEND_ATTEMPT_LOCK_DURATION = 60 * time.Minute

	OUTGOING_NOTIFICATIONS_BATCH_SIZE = 10

	MAX_FAILED_ATTEMPTS_BEFORE_STOP = 100
)

func main() {
	slog.Info("Starting notification dispatcher job")
	start := time.Now()

	handleOutgoingNotifications()

	slog.Info("Notification dispatcher job completed", slog.String("duration", time.Since(start).String()))
}

func checkIfNotificationShouldBeSent(notification messagingTypes.OutgoingNotification) bool {
	if notification.UserID == "" {
		slog.Error("no recipient found", slog.String("type", notification.Type))
		return false
	}

	if notification.ExpiresAt > 0 && notification.ExpiresAt < time.Now().Unix() {
		slog.Error("notification expired", slog.String("type", notification.Type), slog.String("userID", notification.UserID))
		return false
	}

	return true
}

func handleOutgoingNotifications() {
	slog.Info("Start handling outgoing notifications")

	for _, instanceID := range conf.InstanceIDs {
		slog.Debug("Start handling outgoing notifications for instance", slog.String("instanceID", instanceID))
		counters := InitDispatchCounter()
		for {
			if counters.Failed > MAX_FAILED_ATTEMPTS_BEFORE_STOP {
				slog.Error("Too many failed attempts, stopping outgoing notifications for instance", slog.String("instanceID", instanceID))
				break
			}
			notifications, err := messagingDBService.GetOutgoingNotificationsForSending(
				instanceID,
				time.Now().Add(-conf.Intervals.LastSendAttemptLockDuration).Unix(),
				OUTGOING_NOTIFICATIONS_BATCH_SIZE,
			)
			if err != nil {
				slog.Error("Failed to get outgoing notifications for sending", slog.String("error", err.Error()))
				break
			}

			if len(notifications) == 0 {
				break
			}

			lastFetch := time.Now()

			for _, notification := range notifications {
				batchDuration := time.Since(lastFetch)
				if batchDuration >= conf.Intervals.LastSendAttemptLockDuration {
					slog.Warn("Last batch took too long, breaking", slog.String("duration", batchDuration.String()), slog.String("instanceID", instanceID))
					counters.IncreaseCounter(false)

					err = messagingDBService.ResetLastSendAttemptForOutgoingNotification(instanceID, notification.ID.Hex())
					if err != nil {
						slog.Error("Failed to reset last send attempt for outgoing notification", slog.String("error", err.Error()))
					}
					continue
				}

				// detect notifications that should not be sent - remove from db if so
				if !checkIfNotificationShouldBeSent(notification) {
					counters.IncreaseCounter(false)
					err = messagingDBService.DeleteOutgoingNotification(instanceID, notification.ID.Hex())
					if err != nil {
						slog.Error("Failed to delete outgoing notification", slog.String("type", notification.Type), slog.String("error", err.Error()))
					}
					continue
				}

				err := notificationsending.SendOutgoingNotification(&notification)
				if err != nil {
					counters.IncreaseCounter(false)
					slog.Error("Failed to send notification", slog.String("instanceID", instanceID), slog.String("type", notification.Type), slog.String("error", err.Error()))

					err = messagingDBService.IncrementFailedAttemptsForOutgoingNotification(instanceID, notification.ID.Hex())
					if err != nil {
						slog.Error("Failed to increment failed attempts for outgoing notification", slog.String("type", notification.Type), slog.String("error", err.Error()))
					}
					err = messagingDBService.ResetLastSendAttemptForOutgoingNotification(instanceID, notification.ID.Hex())
					if err != nil {
						slog.Error("Failed to reset last send attempt for outgoing notification", slog.String("type", notification.Type), slog.String("error", err.Error()))
					}
					continue
				}

				err = messagingDBService.AddToSentNotifications(instanceID, notification)
				if err != nil {
					counters.IncreaseCounter(false)
					slog.Error("Failed to save sent notification", slog.String("error", err.Error()))
					continue
				}
				err = messagingDBService.DeleteOutgoingNotification(instanceID, notification.ID.Hex())
				if err != nil {
					slog.Error("Failed to delete outgoing notification", slog.String("type", notification.Type), slog.String("error", err.Error()))
				}
				counters.IncreaseCounter(true)
			}
		}

		counters.Stop()
		slog.Info("Finished handling outgoing notifications for instance", slog.String("instanceID", instanceID), slog.Int64("duration", counters.Duration), slog.Int("success", counters.Success), slog.Int("failed", counters.Failed))
	}
}
