package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/recuerda-health/recall-backend/pkg/jwt-handling"
	permissionchecker "github.com/recuerda-health/recall-backend/pkg/permission-checker"

	assessmentDB "github.com/recuerda-health/recall-backend/pkg/db/assessment"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	tokenSignKey       string
	assessmentDBConn   *assessmentDB.AssessmentDBService
	allowedInstanceIDs []string
}

func NewHTTPHandler(
	tokenSignKey string,
	assessmentDBConn *assessmentDB.AssessmentDBService,
	allowedInstanceIDs []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:       tokenSignKey,
		assessmentDBConn:   assessmentDBConn,
		allowedInstanceIDs: allowedInstanceIDs,
	}
}

// requireLinkedPatient resolves the patientID path param and checks the
// caregiver or doctor token is linked to that patient. Patients cannot
// use the caregiver endpoints on themselves.
func (h *HttpEndpoints) requireLinkedPatient(c *gin.Context) (token *jwthandling.PatientUserClaims, patientID string, ok bool) {
	token = c.MustGet("validatedToken").(*jwthandling.PatientUserClaims)
	patientID = c.Param("patientID")

	if token.Role == jwthandling.ROLE_PATIENT || !permissionchecker.HasPatientAccess(token, patientID) {
		slog.Warn("patient access denied", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("patientID", patientID))
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized for this patient"})
		return token, patientID, false
	}
	return token, patientID, true
}
