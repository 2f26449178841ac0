package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/recuerda-health/recall-backend/pkg/apihelpers"
	"github.com/recuerda-health/recall-backend/pkg/assessment"
	"github.com/recuerda-health/recall-backend/pkg/db"
	"github.com/recuerda-health/recall-backend/pkg/utils"

	assessmentDB "github.com/recuerda-health/recall-backend/pkg/db/assessment"
	messagingDB "github.com/recuerda-health/recall-backend/pkg/db/messaging"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_ASSESSMENT_DB_USERNAME = "ASSESSMENT_DB_USERNAME"
	ENV_ASSESSMENT_DB_PASSWORD = "ASSESSMENT_DB_PASSWORD"
	ENV_MESSAGING_DB_USERNAME  = "MESSAGING_DB_USERNAME"
	ENV_MESSAGING_DB_PASSWORD  = "MESSAGING_DB_PASSWORD"

	ENV_PATIENT_USER_JWT_SIGN_KEY = "PATIENT_USER_JWT_SIGN_KEY"
)

type CaregiverApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	PatientUserJWTConfig struct {
		SignKey   string        `json:"sign_key" yaml:"sign_key"`
		ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
	} `json:"patient_user_jwt_config" yaml:"patient_user_jwt_config"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// DB configs
	DBConfigs struct {
		AssessmentDB db.DBConfigYaml `json:"assessment_db" yaml:"assessment_db"`
		MessagingDB  db.DBConfigYaml `json:"messaging_db" yaml:"messaging_db"`
	} `json:"db_configs" yaml:"db_configs"`

	AssessmentConfigs assessment.AssessmentConfigs `json:"assessment_configs" yaml:"assessment_configs"`
}

var (
	assessmentDBService *assessmentDB.AssessmentDBService
	messagingDBService  *messagingDB.MessagingDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	// Override secrets from environment variables
	secretsOverride()

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	assessment.Init(
		assessmentDBService,
		messagingDBService,
		conf.AssessmentConfigs,
	)
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_ASSESSMENT_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AssessmentDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_ASSESSMENT_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AssessmentDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_MESSAGING_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MessagingDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_MESSAGING_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MessagingDB.Password = dbPassword
	}

	if patientUserJwtSignKey := os.Getenv(ENV_PATIENT_USER_JWT_SIGN_KEY); patientUserJwtSignKey != "" {
		conf.PatientUserJWTConfig.SignKey = patientUserJwtSignKey
	}
}

func initDBs() {
	var err error
	assessmentDBService, err = assessmentDB.NewAssessmentDBService(db.DBConfigFromYamlObj(conf.DBConfigs.AssessmentDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Assessment DB", slog.String("error", err.Error()))
		return
	}

	messagingDBService, err = messagingDB.NewMessagingDBService(db.DBConfigFromYamlObj(conf.DBConfigs.MessagingDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Messaging DB", slog.String("error", err.Error()))
		return
	}
}
