package assessment

import "errors"

// error taxonomy of the assessment core, translated to HTTP statuses by
// the route handlers
var (
	ErrPhotoNotFound        = errors.New("photo not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrForbidden            = errors.New("not authorized for this patient")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoPhotos             = errors.New("patient has no photos")
	ErrNoDescriptions       = errors.New("patient has no descriptions")
	ErrAlreadyCompleted     = errors.New("quiz already completed")
	ErrSessionAlreadyEnded  = errors.New("session already ended")
	ErrAlreadyAnswered      = errors.New("question already answered")
	ErrPhotoPatientMismatch = errors.New("photo does not belong to patient")
)
