package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

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
