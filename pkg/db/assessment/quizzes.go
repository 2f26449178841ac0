package assessment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForQuizzesCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionQuizzes(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientID", Value: 1},
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *AssessmentDBService) SaveQuiz(instanceID string, quiz types.Quiz) (types.Quiz, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionQuizzes(instanceID).InsertOne(ctx, quiz)
	if err != nil {
		return quiz, err
	}
	quiz.ID = res.InsertedID.(primitive.ObjectID)
	return quiz, nil
}

func (dbService *AssessmentDBService) GetQuizByID(instanceID string, quizID string) (quiz types.Quiz, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return quiz, err
	}

	err = dbService.collectionQuizzes(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&quiz)
	return quiz, err
}

func (dbService *AssessmentDBService) GetQuizzesForPatient(instanceID string, patientID string, status string, limit int64) (quizzes []types.Quiz, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"patientID": patientID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := dbService.collectionQuizzes(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return quizzes, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &quizzes)
	return quizzes, err
}

// CompleteQuiz performs the one-shot open to completed transition: the
// conditional filter on the open status guarantees that a quiz can only
// be completed once, a second attempt matches no document and returns
// mongo.ErrNoDocuments.
func (dbService *AssessmentDBService) CompleteQuiz(
	instanceID string,
	quizID string,
	answers []types.QuizAnswer,
	score float64,
	scorePct int,
	classification string,
) (quiz types.Quiz, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return quiz, err
	}

	filter := bson.M{
		"_id":    _id,
		"status": types.QUIZ_STATUS_OPEN,
	}
	update := bson.M{"$set": bson.M{
		"status":         types.QUIZ_STATUS_COMPLETED,
		"answers":        answers,
		"score":          score,
		"scorePct":       scorePct,
		"classification": classification,
		"completedAt":    time.Now(),
	}}

	err = dbService.collectionQuizzes(instanceID).FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&quiz)
	return quiz, err
}
