package assessment

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

// GetPatientReport returns the report aggregate of a patient. Patients
// without any scored activity get an empty aggregate instead of an
// error.
func GetPatientReport(instanceID string, patientID string) (types.Report, error) {
	report, err := assessmentDBService.GetReportForPatient(instanceID, patientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Report{PatientID: patientID}, nil
		}
		return types.Report{}, err
	}
	return report, nil
}

// GetRecentSessionScores returns the finished sessions of a patient,
// most recent first, for trend display.
func GetRecentSessionScores(instanceID string, patientID string, limit int64) ([]types.ConsultSession, error) {
	if limit < 1 {
		limit = 10
	}
	return assessmentDBService.GetRecentFinishedSessions(instanceID, patientID, limit)
}
