package assessment

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/google/uuid"

	"github.com/recuerda-health/recall-backend/pkg/assessment/engine"
	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

// StartConsultSession samples recent photos of the patient and opens a
// new session with one free recall question per sampled photo.
func StartConsultSession(instanceID string, patientID string) (types.ConsultSession, []types.ConsultQuestion, error) {
	photos, err := assessmentDBService.GetRecentPhotosForPatient(instanceID, patientID, configs.RecentPhotosLimit)
	if err != nil {
		return types.ConsultSession{}, nil, err
	}
	if len(photos) < 1 {
		return types.ConsultSession{}, nil, ErrNoPhotos
	}

	questions := engine.BuildConsultQuestions(photos, configs.ConsultQuestionCount, configs.ConsultQuestionTypes, sampler)

	session := types.ConsultSession{
		PatientID: patientID,
		StartedAt: time.Now(),
		Total:     len(questions),
	}
	session, err = assessmentDBService.CreateConsultSession(instanceID, session)
	if err != nil {
		return session, nil, err
	}

	for i := range questions {
		questions[i].SessionID = session.ID.Hex()
	}
	if err := assessmentDBService.SaveConsultQuestions(instanceID, questions); err != nil {
		return session, nil, err
	}

	return session, questions, nil
}

// AnswerConsultQuestion evaluates a free text answer against the
// question's expected answer set and, when correct, atomically
// increments the session's running counter. Each question takes one
// answer; the unique index on the answers collection rejects repeats,
// so the counter cannot be driven past the question total by retried
// requests.
func AnswerConsultQuestion(instanceID string, patientID string, sessionID string, questionID string, answerText string) (types.ConsultAnswer, error) {
	session, err := assessmentDBService.GetConsultSessionByID(instanceID, sessionID)
	if err != nil {
		return types.ConsultAnswer{}, ErrSessionNotFound
	}
	if session.PatientID != patientID {
		return types.ConsultAnswer{}, ErrForbidden
	}
	if session.EndedAt != nil {
		return types.ConsultAnswer{}, ErrSessionAlreadyEnded
	}

	question, err := assessmentDBService.GetConsultQuestion(instanceID, sessionID, questionID)
	if err != nil {
		return types.ConsultAnswer{}, ErrQuestionNotFound
	}

	answer := types.ConsultAnswer{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		QuestionID: question.ID,
		Text:       answerText,
		Correct:    engine.EvaluateConsultAnswer(question.Expected, answerText),
		AnsweredAt: time.Now(),
	}

	// the answer document is the dedup guard, so it has to exist before
	// the counter moves
	if err := assessmentDBService.AddConsultAnswer(instanceID, answer); err != nil {
		return types.ConsultAnswer{}, answerInsertError(err)
	}

	if answer.Correct {
		if err := assessmentDBService.IncrementSessionCorrect(instanceID, sessionID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return types.ConsultAnswer{}, ErrSessionAlreadyEnded
			}
			return types.ConsultAnswer{}, err
		}
	}
	return answer, nil
}

// answerInsertError maps storage errors from recording an answer onto
// the service error taxonomy.
func answerInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyAnswered
	}
	return err
}

// FinishConsultSession performs the one-shot close of an active
// session, computes its score percentage and the trend delta against
// the previously finished session of the patient.
func FinishConsultSession(instanceID string, patientID string, sessionID string) (types.ConsultSession, error) {
	session, err := assessmentDBService.GetConsultSessionByID(instanceID, sessionID)
	if err != nil {
		return types.ConsultSession{}, ErrSessionNotFound
	}
	if session.PatientID != patientID {
		return types.ConsultSession{}, ErrForbidden
	}
	if session.EndedAt != nil {
		return types.ConsultSession{}, ErrSessionAlreadyEnded
	}

	scorePct := SessionScorePct(session.Correct, session.Total)

	// the trend compares against the most recently finished session,
	// fetched before this one is closed
	previous, err := assessmentDBService.GetRecentFinishedSessions(instanceID, patientID, 1)
	if err != nil {
		return types.ConsultSession{}, err
	}
	trendDelta := ComputeTrendDelta(scorePct, previous)

	finished, err := assessmentDBService.FinishConsultSession(instanceID, sessionID, scorePct, trendDelta)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.ConsultSession{}, ErrSessionAlreadyEnded
		}
		return types.ConsultSession{}, err
	}

	// the session is closed at this point; a failed aggregate update is
	// logged but does not fail the finish
	if _, err := assessmentDBService.UpdateReportWithScore(instanceID, patientID, "", scorePct); err != nil {
		slog.Error("failed to update report aggregate", slog.String("instanceID", instanceID), slog.String("patientID", patientID), slog.String("sessionID", sessionID), slog.String("error", err.Error()))
	}
	return finished, nil
}

// GetConsultSession fetches a session with its questions and answers.
func GetConsultSession(instanceID string, patientID string, sessionID string) (types.ConsultSession, []types.ConsultQuestion, []types.ConsultAnswer, error) {
	session, err := assessmentDBService.GetConsultSessionByID(instanceID, sessionID)
	if err != nil {
		return types.ConsultSession{}, nil, nil, ErrSessionNotFound
	}
	if session.PatientID != patientID {
		return types.ConsultSession{}, nil, nil, ErrForbidden
	}

	questions, err := assessmentDBService.GetConsultQuestionsForSession(instanceID, sessionID)
	if err != nil {
		return session, nil, nil, err
	}
	answers, err := assessmentDBService.GetConsultAnswersForSession(instanceID, sessionID)
	if err != nil {
		return session, questions, nil, err
	}
	return session, questions, answers, nil
}

// SessionScorePct computes the rounded percentage of correct answers.
// Sessions without questions score zero.
func SessionScorePct(correct int, total int) int {
	if total < 1 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// ComputeTrendDelta is the difference between the current score and the
// most recently finished session's score. Without history it is zero.
func ComputeTrendDelta(currentScorePct int, previous []types.ConsultSession) int {
	if len(previous) < 1 {
		return 0
	}
	return currentScorePct - previous[0].ScorePct
}
