package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/recuerda-health/recall-backend/pkg/apihelpers/middlewares"
	"github.com/recuerda-health/recall-backend/pkg/assessment"
	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
	jwthandling "github.com/recuerda-health/recall-backend/pkg/jwt-handling"
	permissionchecker "github.com/recuerda-health/recall-backend/pkg/permission-checker"
)

func (h *HttpEndpoints) AddAssessmentAPI(rg *gin.RouterGroup) {
	assessmentGroup := rg.Group("/assessment")
	assessmentGroup.Use(mw.GetAndValidatePatientUserJWT(h.tokenSignKey))
	assessmentGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))

	patientGroup := assessmentGroup.Group("/patients/:patientID")
	{
		patientGroup.GET("/photos", h.getPhotos)

		patientGroup.POST("/quizzes", h.createQuiz)
		patientGroup.GET("/quizzes", h.getQuizzes) // ?status=open&limit=20
		patientGroup.GET("/quizzes/:quizID", h.getQuiz)
		patientGroup.POST("/quizzes/:quizID/submit", mw.RequirePayload(), h.submitQuiz)

		patientGroup.POST("/consult-sessions", h.startConsultSession)
		patientGroup.GET("/consult-sessions/:sessionID", h.getConsultSession)
		patientGroup.POST("/consult-sessions/:sessionID/answers", mw.RequirePayload(), h.answerConsultQuestion)
		patientGroup.POST("/consult-sessions/:sessionID/finish", h.finishConsultSession)

		patientGroup.GET("/report", h.getReport)
		patientGroup.GET("/session-scores", h.getSessionScores) // ?limit=10
	}
}

// requirePatientAccess resolves the patientID path param and checks the
// token holder may act on that patient. Aborts the request otherwise.
func (h *HttpEndpoints) requirePatientAccess(c *gin.Context) (token *jwthandling.PatientUserClaims, patientID string, ok bool) {
	token = c.MustGet("validatedToken").(*jwthandling.PatientUserClaims)
	patientID = c.Param("patientID")

	if !permissionchecker.HasPatientAccess(token, patientID) {
		slog.Warn("patient access denied", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("patientID", patientID))
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized for this patient"})
		return token, patientID, false
	}
	return token, patientID, true
}

func (h *HttpEndpoints) getPhotos(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	photos, err := assessment.GetRecentPhotos(token.InstanceID, patientID, limit)
	if err != nil {
		slog.Error("failed to fetch photos", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": "failed to fetch photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (h *HttpEndpoints) createQuiz(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	var req struct {
		PhotoID string `json:"photoID"`
	}
	// body is optional, without a photoID the fallback quiz is generated
	_ = c.ShouldBindJSON(&req)

	quiz, err := assessment.CreateQuiz(token.InstanceID, patientID, req.PhotoID, token.Subject)
	if err != nil {
		slog.Error("failed to create quiz", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}

	slog.Info("quiz created", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("quizID", quiz.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

func (h *HttpEndpoints) getQuizzes(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	status := c.DefaultQuery("status", "")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	quizzes, err := assessment.GetQuizzesForPatient(token.InstanceID, patientID, status, limit)
	if err != nil {
		slog.Error("failed to fetch quizzes", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": "failed to fetch quizzes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

func (h *HttpEndpoints) getQuiz(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	quiz, err := assessment.GetQuiz(token.InstanceID, patientID, c.Param("quizID"))
	if err != nil {
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

func (h *HttpEndpoints) submitQuiz(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	var req struct {
		Answers []types.QuizAnswer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := assessment.SubmitQuiz(token.InstanceID, patientID, c.Param("quizID"), req.Answers)
	if err != nil {
		slog.Error("failed to submit quiz", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("quizID", c.Param("quizID")), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}

	slog.Info("quiz submitted", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("quizID", quiz.ID.Hex()), slog.Int("scorePct", quiz.ScorePct))
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

func (h *HttpEndpoints) startConsultSession(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	session, questions, err := assessment.StartConsultSession(token.InstanceID, patientID)
	if err != nil {
		slog.Error("failed to start consult session", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}

	slog.Info("consult session started", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("sessionID", session.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"questions": questions,
	})
}

func (h *HttpEndpoints) getConsultSession(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	session, questions, answers, err := assessment.GetConsultSession(token.InstanceID, patientID, c.Param("sessionID"))
	if err != nil {
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"questions": questions,
		"answers":   answers,
	})
}

func (h *HttpEndpoints) answerConsultQuestion(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	var req struct {
		QuestionID string `json:"questionID"`
		Text       string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.QuestionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionID is required"})
		return
	}

	answer, err := assessment.AnswerConsultQuestion(token.InstanceID, patientID, c.Param("sessionID"), req.QuestionID, req.Text)
	if err != nil {
		slog.Error("failed to record consult answer", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("sessionID", c.Param("sessionID")), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (h *HttpEndpoints) finishConsultSession(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	session, err := assessment.FinishConsultSession(token.InstanceID, patientID, c.Param("sessionID"))
	if err != nil {
		slog.Error("failed to finish consult session", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("sessionID", c.Param("sessionID")), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}

	slog.Info("consult session finished", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("sessionID", session.ID.Hex()), slog.Int("scorePct", session.ScorePct))
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *HttpEndpoints) getReport(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	report, err := assessment.GetPatientReport(token.InstanceID, patientID)
	if err != nil {
		slog.Error("failed to fetch report", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": "failed to fetch report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

func (h *HttpEndpoints) getSessionScores(c *gin.Context) {
	token, patientID, ok := h.requirePatientAccess(c)
	if !ok {
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	sessions, err := assessment.GetRecentSessionScores(token.InstanceID, patientID, limit)
	if err != nil {
		slog.Error("failed to fetch session scores", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": "failed to fetch session scores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
