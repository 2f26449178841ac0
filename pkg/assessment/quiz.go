package assessment

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/recuerda-health/recall-backend/pkg/assessment/engine"
	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
	notificationsending "github.com/recuerda-health/recall-backend/pkg/messaging/notification-sending"
	messagingTypes "github.com/recuerda-health/recall-backend/pkg/messaging/types"
)

// CreateQuiz generates a new quiz for a patient. With a photoID, items
// are derived from that photo's caregiver supplied ground truth; without
// one, a single generic recall item is generated, which requires at
// least one stored description record for the patient.
func CreateQuiz(instanceID string, patientID string, photoID string, createdBy string) (types.Quiz, error) {
	var items []types.QuizItem

	if photoID != "" {
		photo, err := assessmentDBService.GetPhotoByID(instanceID, photoID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return types.Quiz{}, ErrPhotoNotFound
			}
			return types.Quiz{}, err
		}
		if photo.PatientID != patientID {
			return types.Quiz{}, ErrPhotoPatientMismatch
		}
		items = engine.BuildQuizItems(photo, configs.MaxQuizItems, sampler)
	}

	if len(items) == 0 {
		count, err := assessmentDBService.CountDescriptionsForPatient(instanceID, patientID)
		if err != nil {
			return types.Quiz{}, err
		}
		if count < 1 {
			return types.Quiz{}, ErrNoDescriptions
		}
		items = []types.QuizItem{engine.BuildFallbackItem()}
	}

	quiz := types.Quiz{
		PatientID: patientID,
		PhotoID:   photoID,
		Items:     items,
		Status:    types.QUIZ_STATUS_OPEN,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}

	quiz, err := assessmentDBService.SaveQuiz(instanceID, quiz)
	if err != nil {
		return quiz, err
	}

	// best effort, a failed notification never fails the creation
	if err := notificationsending.QueueNotification(
		messagingDBService,
		instanceID,
		patientID,
		messagingTypes.NOTIFICATION_TYPE_QUIZ_CREATED,
		"New memory quiz",
		"A new quiz about your photos is ready for you.",
		map[string]string{"quizID": quiz.ID.Hex()},
	); err != nil {
		slog.Error("failed to queue quiz notification", slog.String("instanceID", instanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
	}

	return quiz, nil
}

// SubmitQuiz scores the submitted answers against the stored items,
// performs the one-shot open to completed transition and folds the
// resulting score into the patient's report aggregate.
func SubmitQuiz(instanceID string, patientID string, quizID string, answers []types.QuizAnswer) (types.Quiz, error) {
	if len(answers) == 0 {
		return types.Quiz{}, ErrInvalidInput
	}

	quiz, err := assessmentDBService.GetQuizByID(instanceID, quizID)
	if err != nil {
		return types.Quiz{}, ErrQuizNotFound
	}
	if quiz.PatientID != patientID {
		return types.Quiz{}, ErrForbidden
	}
	if quiz.Status != types.QUIZ_STATUS_OPEN {
		return types.Quiz{}, ErrAlreadyCompleted
	}

	groundTruth := map[string]bool{}
	if quiz.PhotoID != "" {
		photo, err := assessmentDBService.GetPhotoByID(instanceID, quiz.PhotoID)
		if err == nil {
			groundTruth = engine.GroundTruthLookup(photo.CaregiverAnswers)
		}
	}

	score, _ := engine.ScoreQuiz(quiz.Items, answers, groundTruth)
	scorePct := engine.ScoreToPct(score)
	classification := engine.Classify(scorePct)

	completed, err := assessmentDBService.CompleteQuiz(instanceID, quizID, answers, score, scorePct, classification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// lost the race against a parallel submission
			return types.Quiz{}, ErrAlreadyCompleted
		}
		return types.Quiz{}, err
	}

	// the quiz is completed at this point; a failed aggregate update is
	// logged but does not fail the submission
	if _, err := assessmentDBService.UpdateReportWithScore(instanceID, patientID, quiz.PhotoID, scorePct); err != nil {
		slog.Error("failed to update report aggregate", slog.String("instanceID", instanceID), slog.String("patientID", patientID), slog.String("quizID", quizID), slog.String("error", err.Error()))
	}

	return completed, nil
}

// GetQuizzesForPatient lists a patient's quizzes, optionally filtered
// by status.
func GetQuizzesForPatient(instanceID string, patientID string, status string, limit int64) ([]types.Quiz, error) {
	if limit < 1 {
		limit = 20
	}
	return assessmentDBService.GetQuizzesForPatient(instanceID, patientID, status, limit)
}

// GetQuiz fetches one quiz and verifies it belongs to the patient.
func GetQuiz(instanceID string, patientID string, quizID string) (types.Quiz, error) {
	quiz, err := assessmentDBService.GetQuizByID(instanceID, quizID)
	if err != nil {
		return types.Quiz{}, ErrQuizNotFound
	}
	if quiz.PatientID != patientID {
		return types.Quiz{}, ErrForbidden
	}
	return quiz, nil
}
