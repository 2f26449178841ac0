package assessment

import (
	"context"
	"log/slog"
	"time"

	"github.com/recuerda-health/recall-backend/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_PHOTOS            = "photos"
	COLLECTION_NAME_DESCRIPTIONS      = "descriptions"
	COLLECTION_NAME_QUIZZES           = "quizzes"
	COLLECTION_NAME_CONSULT_SESSIONS  = "consultSessions"
	COLLECTION_NAME_CONSULT_QUESTIONS = "consultQuestions"
	COLLECTION_NAME_CONSULT_ANSWERS   = "consultAnswers"
	COLLECTION_NAME_REPORTS           = "reports"
)

type AssessmentDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	InstanceIDs  []string
}

func NewAssessmentDBService(configs db.DBConfig) (*AssessmentDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	assessmentDBSc := &AssessmentDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		InstanceIDs:  configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := assessmentDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for assessment DB", slog.String("error", err.Error()))
		}
	}

	return assessmentDBSc, nil
}

func (dbService *AssessmentDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_assessmentDB"
}

func (dbService *AssessmentDBService) collectionPhotos(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_PHOTOS)
}

func (dbService *AssessmentDBService) collectionDescriptions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_DESCRIPTIONS)
}

func (dbService *AssessmentDBService) collectionQuizzes(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_QUIZZES)
}

func (dbService *AssessmentDBService) collectionConsultSessions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_CONSULT_SESSIONS)
}

func (dbService *AssessmentDBService) collectionConsultQuestions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_CONSULT_QUESTIONS)
}

func (dbService *AssessmentDBService) collectionConsultAnswers(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_CONSULT_ANSWERS)
}

func (dbService *AssessmentDBService) collectionReports(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_REPORTS)
}

func (dbService *AssessmentDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *AssessmentDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for assessment DB")
	for _, instanceID := range dbService.InstanceIDs {
		if err := dbService.createIndexForPhotosCollection(instanceID); err != nil {
			slog.Error("Error creating index for photos", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		}
		if err := dbService.createIndexForDescriptionsCollection(instanceID); err != nil {
			slog.Error("Error creating index for descriptions", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		}
		if err := dbService.createIndexForQuizzesCollection(instanceID); err != nil {
			slog.Error("Error creating index for quizzes", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		}
		if err := dbService.createIndexForConsultCollections(instanceID); err != nil {
			slog.Error("Error creating index for consult collections", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		}
		if err := dbService.createIndexForReportsCollection(instanceID); err != nil {
			slog.Error("Error creating index for reports", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		}
	}
	return nil
}
