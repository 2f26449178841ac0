package assessment

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) SaveConsultQuestions(instanceID string, questions []types.ConsultQuestion) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	docs := make([]interface{}, len(questions))
	for i, question := range questions {
		docs[i] = question
	}

	_, err := dbService.collectionConsultQuestions(instanceID).InsertMany(ctx, docs)
	return err
}

func (dbService *AssessmentDBService) GetConsultQuestion(instanceID string, sessionID string, questionID string) (question types.ConsultQuestion, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"sessionID": sessionID,
		"id":        questionID,
	}
	err = dbService.collectionConsultQuestions(instanceID).FindOne(ctx, filter).Decode(&question)
	return question, err
}

func (dbService *AssessmentDBService) GetConsultQuestionsForSession(instanceID string, sessionID string) (questions []types.ConsultQuestion, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := dbService.collectionConsultQuestions(instanceID).Find(ctx, bson.M{"sessionID": sessionID}, opts)
	if err != nil {
		return questions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &questions)
	return questions, err
}
