package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a caregiver supplied category:value annotation on a photo,
// e.g. persona:Maria or lugar:Cartagena.
type Tag struct {
	Category string `bson:"category" json:"category"`
	Value    string `bson:"value" json:"value"`
}

const (
	TAG_CATEGORY_PERSON = "persona"
	TAG_CATEGORY_PLACE  = "lugar"
)

// CaregiverAnswer is the yes/no ground truth for one of the fixed
// quiz fields (hasEvents, hasPeople, hasPlaces, hasEmotions, hasDetails).
type CaregiverAnswer struct {
	ItemID string `bson:"itemId" json:"itemId"`
	YN     bool   `bson:"yn" json:"yn"`
}

type Photo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID   string             `bson:"patientID" json:"patientID"`
	UploadedBy  string             `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	StorageRef  string             `bson:"storageRef,omitempty" json:"storageRef,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Tags        []Tag              `bson:"tags,omitempty" json:"tags,omitempty"`
	// Data holds the categorical ground truth pools (people, places,
	// events, emotions). Values may arrive as a single string or a list,
	// the quiz builder normalizes the shape before use.
	Data             map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	CaregiverAnswers []CaregiverAnswer      `bson:"caregiverAnswers,omitempty" json:"caregiverAnswers,omitempty"`
	CreatedAt        time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time              `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Description is a free-text note a caregiver recorded about a patient's
// photo or history. Quiz generation in fallback mode requires at least
// one of these to exist.
type Description struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID string             `bson:"patientID" json:"patientID"`
	PhotoID   string             `bson:"photoID,omitempty" json:"photoID,omitempty"`
	AuthorID  string             `bson:"authorID,omitempty" json:"authorID,omitempty"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
