package assessment

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func (dbService *AssessmentDBService) createIndexForPhotosCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionPhotos(instanceID)
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

func (dbService *AssessmentDBService) SavePhoto(instanceID string, photo types.Photo) (types.Photo, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionPhotos(instanceID).InsertOne(ctx, photo)
	if err != nil {
		return photo, err
	}
	photo.ID = res.InsertedID.(primitive.ObjectID)
	return photo, nil
}

func (dbService *AssessmentDBService) GetPhotoByID(instanceID string, photoID string) (photo types.Photo, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(photoID)
	if err != nil {
		return photo, err
	}

	err = dbService.collectionPhotos(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&photo)
	return photo, err
}

// UpdatePhotoAnnotations replaces the caregiver supplied ground truth of
// a photo (description, tags, data pools, yes/no answers).
func (dbService *AssessmentDBService) UpdatePhotoAnnotations(instanceID string, photo types.Photo) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	update := bson.M{"$set": bson.M{
		"description":      photo.Description,
		"tags":             photo.Tags,
		"data":             photo.Data,
		"caregiverAnswers": photo.CaregiverAnswers,
		"updatedAt":        photo.UpdatedAt,
	}}
	res, err := dbService.collectionPhotos(instanceID).UpdateOne(ctx, bson.M{"_id": photo.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetRecentPhotosForPatient returns the patient's most recent photos,
// newest first, bounded by limit.
func (dbService *AssessmentDBService) GetRecentPhotosForPatient(instanceID string, patientID string, limit int64) (photos []types.Photo, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := dbService.collectionPhotos(instanceID).Find(ctx, bson.M{"patientID": patientID}, opts)
	if err != nil {
		return photos, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &photos)
	return photos, err
}
