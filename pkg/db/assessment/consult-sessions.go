package assessment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForConsultCollections(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionConsultSessions(instanceID).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientID", Value: 1},
				{Key: "endedAt", Value: -1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = dbService.collectionConsultQuestions(instanceID).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "sessionID", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	// the unique index makes repeated submissions for the same question
	// fail on insert, keeping the session's correct counter <= total
	_, err = dbService.collectionConsultAnswers(instanceID).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "sessionID", Value: 1},
				{Key: "questionID", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "sessionID", Value: 1},
				{Key: "answeredAt", Value: 1},
			},
		},
	})
	return err
}

func (dbService *AssessmentDBService) CreateConsultSession(instanceID string, session types.ConsultSession) (types.ConsultSession, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionConsultSessions(instanceID).InsertOne(ctx, session)
	if err != nil {
		return session, err
	}
	session.ID = res.InsertedID.(primitive.ObjectID)
	return session, nil
}

func (dbService *AssessmentDBService) GetConsultSessionByID(instanceID string, sessionID string) (session types.ConsultSession, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return session, err
	}

	err = dbService.collectionConsultSessions(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&session)
	return session, err
}

// IncrementSessionCorrect atomically increments the running correct
// counter of an active session.
func (dbService *AssessmentDBService) IncrementSessionCorrect(instanceID string, sessionID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionConsultSessions(instanceID).UpdateOne(
		ctx,
		bson.M{"_id": _id, "endedAt": nil},
		bson.M{"$inc": bson.M{"correct": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FinishConsultSession performs the one-shot active to finished
// transition, a second attempt matches no document and returns
// mongo.ErrNoDocuments.
func (dbService *AssessmentDBService) FinishConsultSession(instanceID string, sessionID string, scorePct int, trendDelta int) (session types.ConsultSession, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return session, err
	}

	update := bson.M{"$set": bson.M{
		"endedAt":    time.Now(),
		"scorePct":   scorePct,
		"trendDelta": trendDelta,
	}}

	err = dbService.collectionConsultSessions(instanceID).FindOneAndUpdate(
		ctx,
		bson.M{"_id": _id, "endedAt": nil},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&session)
	return session, err
}

// GetRecentFinishedSessions returns finished sessions of a patient,
// most recently ended first.
func (dbService *AssessmentDBService) GetRecentFinishedSessions(instanceID string, patientID string, limit int64) (sessions []types.ConsultSession, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"patientID": patientID,
		"endedAt":   bson.M{"$ne": nil},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "endedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := dbService.collectionConsultSessions(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return sessions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &sessions)
	return sessions, err
}
