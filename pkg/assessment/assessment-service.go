package assessment

import (
	"github.com/recuerda-health/recall-backend/pkg/assessment/engine"
	assessmentDB "github.com/recuerda-health/recall-backend/pkg/db/assessment"
	messagingDB "github.com/recuerda-health/recall-backend/pkg/db/messaging"
)

type AssessmentConfigs struct {
	MaxQuizItems         int      `json:"max_quiz_items" yaml:"max_quiz_items"`
	ConsultQuestionCount int      `json:"consult_question_count" yaml:"consult_question_count"`
	ConsultQuestionTypes []string `json:"consult_question_types" yaml:"consult_question_types"`
	RecentPhotosLimit    int64    `json:"recent_photos_limit" yaml:"recent_photos_limit"`
}

var (
	assessmentDBService *assessmentDB.AssessmentDBService
	messagingDBService  *messagingDB.MessagingDBService
	configs             AssessmentConfigs
	sampler             *engine.Sampler
)

func Init(
	assessmentDBSc *assessmentDB.AssessmentDBService,
	messagingDBSc *messagingDB.MessagingDBService,
	assessmentConfigs AssessmentConfigs,
) {
	assessmentDBService = assessmentDBSc
	messagingDBService = messagingDBSc
	configs = assessmentConfigs
	sampler = engine.NewSampler()

	if configs.MaxQuizItems < 1 {
		configs.MaxQuizItems = engine.DEFAULT_MAX_QUIZ_ITEMS
	}
	if configs.ConsultQuestionCount < 1 {
		configs.ConsultQuestionCount = engine.DEFAULT_CONSULT_QUESTION_COUNT
	}
	if len(configs.ConsultQuestionTypes) == 0 {
		configs.ConsultQuestionTypes = engine.DefaultConsultQuestionTypes
	}
	if configs.RecentPhotosLimit < 1 {
		configs.RecentPhotosLimit = engine.RECENT_PHOTOS_LIMIT
	}
}
