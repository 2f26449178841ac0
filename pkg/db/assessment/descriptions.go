package assessment

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForDescriptionsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionDescriptions(instanceID)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientID", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *AssessmentDBService) AddDescription(instanceID string, description types.Description) (types.Description, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionDescriptions(instanceID).InsertOne(ctx, description)
	if err != nil {
		return description, err
	}
	description.ID = res.InsertedID.(primitive.ObjectID)
	return description, nil
}

func (dbService *AssessmentDBService) CountDescriptionsForPatient(instanceID string, patientID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionDescriptions(instanceID).CountDocuments(ctx, bson.M{"patientID": patientID})
}

func (dbService *AssessmentDBService) GetDescriptionsForPatient(instanceID string, patientID string, limit int64) (descriptions []types.Description, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := dbService.collectionDescriptions(instanceID).Find(ctx, bson.M{"patientID": patientID}, opts)
	if err != nil {
		return descriptions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &descriptions)
	return descriptions, err
}
