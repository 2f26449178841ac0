package notificationsending

import (
	"errors"
	"log/slog"

	messagingDB "github.com/recuerda-health/recall-backend/pkg/db/messaging"
	messagingTypes "github.com/recuerda-health/recall-backend/pkg/messaging/types"
)

// QueueNotification adds a push notification to the outgoing queue, to
// be picked up by the dispatcher job.
func QueueNotification(
	messageDB *messagingDB.MessagingDBService,
	instanceID string,
	userID string,
	notificationType string,
	title string,
	body string,
	payload map[string]string,
) error {
	if messageDB == nil {
		return errors.New("messaging DB not initialized")
	}

	_, err := messageDB.AddToOutgoingNotifications(instanceID, messagingTypes.OutgoingNotification{
		Type:    notificationType,
		UserID:  userID,
		Title:   title,
		Body:    body,
		Payload: payload,
	})
	if err != nil {
		slog.Error("failed to save outgoing notification", slog.String("error", err.Error()))
		return err
	}
	return nil
}
