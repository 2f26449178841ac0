package apihandlers

import (
	"errors"
	"net/http"

	"github.com/recuerda-health/recall-backend/pkg/assessment"
)

// statusCodeForError translates the assessment core's error taxonomy
// into HTTP status codes.
func statusCodeForError(err error) int {
	switch {
	case errors.Is(err, assessment.ErrPhotoNotFound),
		errors.Is(err, assessment.ErrQuizNotFound),
		errors.Is(err, assessment.ErrSessionNotFound),
		errors.Is(err, assessment.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, assessment.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, assessment.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, assessment.ErrNoPhotos),
		errors.Is(err, assessment.ErrNoDescriptions):
		return http.StatusUnprocessableEntity
	case errors.Is(err, assessment.ErrAlreadyCompleted),
		errors.Is(err, assessment.ErrSessionAlreadyEnded),
		errors.Is(err, assessment.ErrAlreadyAnswered),
		errors.Is(err, assessment.ErrPhotoPatientMismatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
