package messaging

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	messagingTypes "github.com/recuerda-health/recall-backend/pkg/messaging/types"
)

func (dbService *MessagingDBService) AddToOutgoingNotifications(instanceID string, notification messagingTypes.OutgoingNotification) (messagingTypes.OutgoingNotification, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if notification.AddedAt <= 0 {
		notification.AddedAt = time.Now().Unix()
	}

	res, err := dbService.collectionOutgoingNotifications(instanceID).InsertOne(ctx, notification)
	if err != nil {
		return notification, err
	}
	notification.ID = res.InsertedID.(primitive.ObjectID)
	return notification, nil
}

// GetOutgoingNotificationsForSending fetches a batch of queued
// notifications whose last send attempt is older than lockedUntil and
// marks each fetched document with the current timestamp, so parallel
// dispatcher runs don't pick up the same documents.
func (dbService *MessagingDBService) GetOutgoingNotificationsForSending(instanceID string, lockedUntil int64, batchSize int) (notifications []messagingTypes.OutgoingNotification, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"lastSendAttempt": bson.M{"$lt": lockedUntil}}

	for len(notifications) < batchSize {
		var notification messagingTypes.OutgoingNotification
		err := dbService.collectionOutgoingNotifications(instanceID).FindOneAndUpdate(
			ctx,
			filter,
			bson.M{"$set": bson.M{"lastSendAttempt": time.Now().Unix()}},
			options.FindOneAndUpdate().SetReturnDocument(options.Before),
		).Decode(&notification)
		if err != nil {
			break
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (dbService *MessagingDBService) ResetLastSendAttemptForOutgoingNotification(instanceID string, notificationID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionOutgoingNotifications(instanceID).UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$set": bson.M{"lastSendAttempt": 0}},
	)
	return err
}

func (dbService *MessagingDBService) IncrementFailedAttemptsForOutgoingNotification(instanceID string, notificationID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionOutgoingNotifications(instanceID).UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$inc": bson.M{"failedAttempts": 1}},
	)
	return err
}

func (dbService *MessagingDBService) DeleteOutgoingNotification(instanceID string, notificationID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionOutgoingNotifications(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	return err
}

func (dbService *MessagingDBService) AddToSentNotifications(instanceID string, notification messagingTypes.OutgoingNotification) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	notification.ID = primitive.NilObjectID
	notification.SentAt = time.Now()
	_, err := dbService.collectionSentNotifications(instanceID).InsertOne(ctx, notification)
	return err
}
