package notificationsending

import (
	"errors"

	messagingDB "github.com/recuerda-health/recall-backend/pkg/db/messaging"
	httpclient "github.com/recuerda-health/recall-backend/pkg/http-client"
	messagingTypes "github.com/recuerda-health/recall-backend/pkg/messaging/types"
)

var (
	pushGatewayClient  *httpclient.ClientConfig
	messagingDBService *messagingDB.MessagingDBService
)

func InitNotificationSendingVariables(
	clientConfig *httpclient.ClientConfig,
	messagingDB *messagingDB.MessagingDBService,
) {
	pushGatewayClient = clientConfig
	messagingDBService = messagingDB
}

// SendOutgoingNotification delivers one queued notification through the
// push gateway.
func SendOutgoingNotification(notification *messagingTypes.OutgoingNotification) error {
	if pushGatewayClient == nil || pushGatewayClient.RootURL == "" {
		return errors.New("connection to push gateway not initialized")
	}

	response, err := pushGatewayClient.RunHTTPcall("/v1/push", map[string]interface{}{
		"userID":  notification.UserID,
		"type":    notification.Type,
		"title":   notification.Title,
		"body":    notification.Body,
		"payload": notification.Payload,
	})
	if err != nil {
		return err
	}

	if errMsg, hasError := response["error"]; hasError {
		value, ok := errMsg.(string)
		if !ok {
			return errors.New("push gateway returned error")
		}
		return errors.New(value)
	}
	return nil
}
