package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CONSULT_QUESTION_TYPE_WHO   = "who"
	CONSULT_QUESTION_TYPE_WHERE = "where"
	CONSULT_QUESTION_TYPE_FREE  = "free"
)

type ConsultSession struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID  string             `bson:"patientID" json:"patientID"`
	StartedAt  time.Time          `bson:"startedAt" json:"startedAt"`
	EndedAt    *time.Time         `bson:"endedAt" json:"endedAt"`
	Total      int                `bson:"total" json:"total"`
	Correct    int                `bson:"correct" json:"correct"`
	ScorePct   int                `bson:"scorePct" json:"scorePct"`
	TrendDelta int                `bson:"trendDelta" json:"trendDelta"`
}

// ConsultQuestion carries its normalized expected answers in Expected;
// they are private to the scoring path and never serialized to clients.
type ConsultQuestion struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionID" json:"sessionID"`
	PhotoID   string    `bson:"photoID" json:"photoID"`
	Type      string    `bson:"type" json:"type"`
	Prompt    string    `bson:"prompt" json:"prompt"`
	Order     int       `bson:"order" json:"order"`
	Expected  []string  `bson:"expected" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type ConsultAnswer struct {
	ID         string    `bson:"id" json:"id"`
	SessionID  string    `bson:"sessionID" json:"sessionID"`
	QuestionID string    `bson:"questionID" json:"questionID"`
	Text       string    `bson:"text" json:"text"`
	Correct    bool      `bson:"correct" json:"correct"`
	AnsweredAt time.Time `bson:"answeredAt" json:"answeredAt"`
}
