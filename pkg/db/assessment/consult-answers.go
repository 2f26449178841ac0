package assessment

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) AddConsultAnswer(instanceID string, answer types.ConsultAnswer) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionConsultAnswers(instanceID).InsertOne(ctx, answer)
	return err
}

func (dbService *AssessmentDBService) GetConsultAnswersForSession(instanceID string, sessionID string) (answers []types.ConsultAnswer, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "answeredAt", Value: 1}})

	cursor, err := dbService.collectionConsultAnswers(instanceID).Find(ctx, bson.M{"sessionID": sessionID}, opts)
	if err != nil {
		return answers, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &answers)
	return answers, err
}
