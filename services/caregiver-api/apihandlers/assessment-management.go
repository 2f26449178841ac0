package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/recuerda-health/recall-backend/pkg/apihelpers/middlewares"
	"github.com/recuerda-health/recall-backend/pkg/assessment"
)

func (h *HttpEndpoints) AddAssessmentManagementAPI(rg *gin.RouterGroup) {
	managementGroup := rg.Group("/assessment-management")
	managementGroup.Use(mw.GetAndValidatePatientUserJWT(h.tokenSignKey))
	managementGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))

	patientGroup := managementGroup.Group("/patients/:patientID")
	{
		patientGroup.POST("/quizzes", h.createQuizForPatient)
		patientGroup.GET("/quizzes", h.getQuizzesForPatient) // ?status=completed&limit=20

		patientGroup.GET("/report", h.getPatientReport)
		patientGroup.GET("/session-scores", h.getPatientSessionScores) // ?limit=10
	}
}

func (h *HttpEndpoints) createQuizForPatient(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
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

	slog.Info("quiz created for patient", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("quizID", quiz.ID.Hex()), slog.String("createdBy", token.Subject))
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

func (h *HttpEndpoints) getQuizzesForPatient(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
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

func (h *HttpEndpoints) getPatientReport(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
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

func (h *HttpEndpoints) getPatientSessionScores(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
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
