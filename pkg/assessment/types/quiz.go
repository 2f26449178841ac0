package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QUIZ_ITEM_TYPE_MULTIPLE_CHOICE = "multiple-choice"
	QUIZ_ITEM_TYPE_YES_NO          = "yes-no"
)

const (
	QUIZ_STATUS_OPEN      = "open"
	QUIZ_STATUS_COMPLETED = "completed"
)

// fixed yes/no ground truth fields
const (
	GT_FIELD_HAS_EVENTS   = "hasEvents"
	GT_FIELD_HAS_PEOPLE   = "hasPeople"
	GT_FIELD_HAS_PLACES   = "hasPlaces"
	GT_FIELD_HAS_EMOTIONS = "hasEmotions"
	GT_FIELD_HAS_DETAILS  = "hasDetails"
)

// QuizItem is immutable once generated. CorrectIndex and Field are the
// answer key, they are stored but never serialized towards clients.
type QuizItem struct {
	ID           string   `bson:"id" json:"id"`
	Type         string   `bson:"type" json:"type"`
	Prompt       string   `bson:"prompt" json:"prompt"`
	Options      []string `bson:"options,omitempty" json:"options,omitempty"`
	CorrectIndex int      `bson:"correctIndex" json:"-"`
	Field        string   `bson:"field,omitempty" json:"-"`
	Weight       float64  `bson:"weight" json:"weight"`
}

// QuizAnswer references a quiz item by ID with either a selected option
// index (multiple-choice) or a boolean (yes/no).
type QuizAnswer struct {
	ItemID      string `bson:"itemId" json:"itemId"`
	OptionIndex *int   `bson:"optionIndex,omitempty" json:"optionIndex,omitempty"`
	YN          *bool  `bson:"yn,omitempty" json:"yn,omitempty"`
}

type Quiz struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID      string             `bson:"patientID" json:"patientID"`
	PhotoID        string             `bson:"photoID,omitempty" json:"photoID,omitempty"`
	Items          []QuizItem         `bson:"items" json:"items"`
	Status         string             `bson:"status" json:"status"`
	Answers        []QuizAnswer       `bson:"answers,omitempty" json:"answers,omitempty"`
	Score          float64            `bson:"score" json:"score"`
	ScorePct       int                `bson:"scorePct" json:"scorePct"`
	Classification string             `bson:"classification,omitempty" json:"classification,omitempty"`
	CreatedBy      string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	CompletedAt    time.Time          `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
