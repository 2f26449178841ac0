package assessment

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForReportsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionReports(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientID", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *AssessmentDBService) GetReportForPatient(instanceID string, patientID string) (report types.Report, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	err = dbService.collectionReports(instanceID).FindOne(ctx, bson.M{"patientID": patientID}).Decode(&report)
	return report, err
}

// UpdateReportWithScore folds a new score percentage into the patient's
// report aggregate as an atomic read-modify-write. It runs inside a
// store transaction, conflicting concurrent submissions are retried by
// the driver, and only the aggregate fields are written back so other
// fields of the report document survive the merge.
func (dbService *AssessmentDBService) UpdateReportWithScore(instanceID string, patientID string, photoID string, scorePct int) (report types.Report, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	session, err := dbService.DBClient.StartSession()
	if err != nil {
		return report, err
	}
	defer session.EndSession(ctx)

	collection := dbService.collectionReports(instanceID)

	result, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		current := types.Report{PatientID: patientID}
		err := collection.FindOne(sessCtx, bson.M{"patientID": patientID}).Decode(&current)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		current.ApplyScore(photoID, int64(scorePct))
		current.UpdatedAt = time.Now()

		setFields := bson.M{
			"patientID": patientID,
			"count":     current.Count,
			"sum":       current.Sum,
			"avgRecall": current.AvgRecall,
			"updatedAt": current.UpdatedAt,
		}
		if photoID != "" {
			setFields["photos."+photoID] = current.Photos[photoID]
		}

		_, err = collection.UpdateOne(
			sessCtx,
			bson.M{"patientID": patientID},
			bson.M{"$set": setFields},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, err
		}
		return current, nil
	})
	if err != nil {
		return report, err
	}

	return result.(types.Report), nil
}
