package assessment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

// AddPhoto stores a new photo record for a patient.
func AddPhoto(instanceID string, patientID string, uploadedBy string, photo types.Photo) (types.Photo, error) {
	photo.ID = primitive.NilObjectID
	photo.PatientID = patientID
	photo.UploadedBy = uploadedBy
	photo.CreatedAt = time.Now()
	photo.UpdatedAt = time.Time{}
	return assessmentDBService.SavePhoto(instanceID, photo)
}

// GetPhoto fetches one photo and verifies it belongs to the patient.
func GetPhoto(instanceID string, patientID string, photoID string) (types.Photo, error) {
	photo, err := assessmentDBService.GetPhotoByID(instanceID, photoID)
	if err != nil {
		return types.Photo{}, ErrPhotoNotFound
	}
	if photo.PatientID != patientID {
		return types.Photo{}, ErrForbidden
	}
	return photo, nil
}

// GetRecentPhotos lists a patient's photos, newest first.
func GetRecentPhotos(instanceID string, patientID string, limit int64) ([]types.Photo, error) {
	if limit < 1 {
		limit = configs.RecentPhotosLimit
	}
	return assessmentDBService.GetRecentPhotosForPatient(instanceID, patientID, limit)
}

// AnnotatePhoto replaces a photo's caregiver supplied annotations, the
// description, tags, option pools and yes/no ground truth.
func AnnotatePhoto(instanceID string, patientID string, photo types.Photo) (types.Photo, error) {
	stored, err := assessmentDBService.GetPhotoByID(instanceID, photo.ID.Hex())
	if err != nil {
		return types.Photo{}, ErrPhotoNotFound
	}
	if stored.PatientID != patientID {
		return types.Photo{}, ErrForbidden
	}

	stored.Description = photo.Description
	stored.Tags = photo.Tags
	stored.Data = photo.Data
	stored.CaregiverAnswers = photo.CaregiverAnswers
	stored.UpdatedAt = time.Now()

	if err := assessmentDBService.UpdatePhotoAnnotations(instanceID, stored); err != nil {
		return types.Photo{}, err
	}
	return stored, nil
}

// AddDescription records a free text note about a patient's photo or
// history, the source for fallback quizzes.
func AddDescription(instanceID string, patientID string, photoID string, authorID string, text string) (types.Description, error) {
	if text == "" {
		return types.Description{}, ErrInvalidInput
	}
	description := types.Description{
		PatientID: patientID,
		PhotoID:   photoID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	return assessmentDBService.AddDescription(instanceID, description)
}

// GetDescriptions lists a patient's stored descriptions.
func GetDescriptions(instanceID string, patientID string, limit int64) ([]types.Description, error) {
	if limit < 1 {
		limit = 50
	}
	return assessmentDBService.GetDescriptionsForPatient(instanceID, patientID, limit)
}
