package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mw "github.com/recuerda-health/recall-backend/pkg/apihelpers/middlewares"
	"github.com/recuerda-health/recall-backend/pkg/assessment"
	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (h *HttpEndpoints) AddPhotoManagementAPI(rg *gin.RouterGroup) {
	photosGroup := rg.Group("/photo-management")
	photosGroup.Use(mw.GetAndValidatePatientUserJWT(h.tokenSignKey))
	photosGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))

	patientGroup := photosGroup.Group("/patients/:patientID")
	{
		patientGroup.POST("/photos", mw.RequirePayload(), h.addPhoto)
		patientGroup.GET("/photos", h.getPhotos) // ?limit=50
		patientGroup.GET("/photos/:photoID", h.getPhoto)
		patientGroup.PUT("/photos/:photoID/annotations", mw.RequirePayload(), h.annotatePhoto)

		patientGroup.POST("/descriptions", mw.RequirePayload(), h.addDescription)
		patientGroup.GET("/descriptions", h.getDescriptions) // ?limit=50
	}
}

func (h *HttpEndpoints) addPhoto(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
	if !ok {
		return
	}

	var req struct {
		StorageRef       string                  `json:"storageRef"`
		Description      string                  `json:"description"`
		Tags             []types.Tag             `json:"tags"`
		Data             map[string]interface{}  `json:"data"`
		CaregiverAnswers []types.CaregiverAnswer `json:"caregiverAnswers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, err := assessment.AddPhoto(token.InstanceID, patientID, token.Subject, types.Photo{
		StorageRef:       req.StorageRef,
		Description:      req.Description,
		Tags:             req.Tags,
		Data:             req.Data,
		CaregiverAnswers: req.CaregiverAnswers,
	})
	if err != nil {
		slog.Error("failed to save photo", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": "failed to save photo"})
		return
	}

	slog.Info("photo added", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("photoID", photo.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

func (h *HttpEndpoints) getPhotos(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
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

func (h *HttpEndpoints) getPhoto(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
	if !ok {
		return
	}

	photo, err := assessment.GetPhoto(token.InstanceID, patientID, c.Param("photoID"))
	if err != nil {
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

func (h *HttpEndpoints) annotatePhoto(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
	if !ok {
		return
	}

	photoID, err := primitive.ObjectIDFromHex(c.Param("photoID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photoID"})
		return
	}

	var req struct {
		Description      string                  `json:"description"`
		Tags             []types.Tag             `json:"tags"`
		Data             map[string]interface{}  `json:"data"`
		CaregiverAnswers []types.CaregiverAnswer `json:"caregiverAnswers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, err := assessment.AnnotatePhoto(token.InstanceID, patientID, types.Photo{
		ID:               photoID,
		Description:      req.Description,
		Tags:             req.Tags,
		Data:             req.Data,
		CaregiverAnswers: req.CaregiverAnswers,
	})
	if err != nil {
		slog.Error("failed to annotate photo", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("photoID", photoID.Hex()), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

func (h *HttpEndpoints) addDescription(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
	if !ok {
		return
	}

	var req struct {
		PhotoID string `json:"photoID"`
		Text    string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, err := assessment.AddDescription(token.InstanceID, patientID, req.PhotoID, token.Subject, req.Text)
	if err != nil {
		slog.Error("failed to save description", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": description})
}

func (h *HttpEndpoints) getDescriptions(c *gin.Context) {
	token, patientID, ok := h.requireLinkedPatient(c)
	if !ok {
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	descriptions, err := assessment.GetDescriptions(token.InstanceID, patientID, limit)
	if err != nil {
		slog.Error("failed to fetch descriptions", slog.String("instanceID", token.InstanceID), slog.String("patientID", patientID), slog.String("error", err.Error()))
		c.JSON(statusCodeForError(err), gin.H{"error": "failed to fetch descriptions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"descriptions": descriptions})
}
