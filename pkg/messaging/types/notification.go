package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// notification types emitted by the assessment core
const (
	NOTIFICATION_TYPE_QUIZ_CREATED     = "quiz-created"
	NOTIFICATION_TYPE_CONSULT_REMINDER = "consult-reminder"
	NOTIFICATION_TYPE_REPORT_AVAILABLE = "report-available"
)

// OutgoingNotification is a queued push notification, drained by the
// notification dispatcher job.
type OutgoingNotification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type            string             `bson:"type" json:"type"`
	UserID          string             `bson:"userID" json:"userID"`
	Title           string             `bson:"title" json:"title"`
	Body            string             `bson:"body" json:"body"`
	Payload         map[string]string  `bson:"payload,omitempty" json:"payload,omitempty"`
	AddedAt         int64              `bson:"addedAt" json:"addedAt"`
	ExpiresAt       int64              `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	FailedAttempts  int                `bson:"failedAttempts" json:"failedAttempts"`
	LastSendAttempt int64              `bson:"lastSendAttempt" json:"lastSendAttempt"`
	SentAt          time.Time          `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
}

type PushGatewayConfig struct {
	URL    string `json:"url" yaml:"url"`
	APIKey string `json:"api_key" yaml:"api_key"`
	// RequestTimeout is a duration string, e.g. "30s"
	RequestTimeout string `json:"request_timeout" yaml:"request_timeout"`
}

type MessagingConfigs struct {
	PushGatewayConfig PushGatewayConfig `json:"push_gateway_config" yaml:"push_gateway_config"`
}
