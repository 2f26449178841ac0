package main

import (
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/recuerda-health/recall-backend/pkg/db"
	httpclient "github.com/recuerda-health/recall-backend/pkg/http-client"
	"github.com/recuerda-health/recall-backend/pkg/utils"

	messagingDB "github.com/recuerda-health/recall-backend/pkg/db/messaging"
	notificationsending "github.com/recuerda-health/recall-backend/pkg/messaging/notification-sending"
	messagingTypes "github.com/recuerda-health/recall-backend/pkg/messaging/types"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_MESSAGING_DB_USERNAME = "MESSAGING_DB_USERNAME"
	ENV_MESSAGING_DB_PASSWORD = "MESSAGING_DB_PASSWORD"

	ENV_PUSH_GATEWAY_API_KEY = "PUSH_GATEWAY_API_KEY"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		MessagingDB db.DBConfigYaml `json:"messaging_db" yaml:"messaging_db"`
	} `json:"db_configs" yaml:"db_configs"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`

	MessagingConfigs messagingTypes.MessagingConfigs `json:"messaging_configs" yaml:"messaging_configs"`

	Intervals struct {
		LastSendAttemptLockDuration time.Duration `json:"last_send_attempt_lock_duration" yaml:"last_send_attempt_lock_duration"`
	} `json:"intervals" yaml:"intervals"`
}

var conf config

var (
	messagingDBService *messagingDB.MessagingDBService
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

	// init db
	initDBs()

	// init notification sending
	notificationsending.InitNotificationSendingVariables(
		loadPushGatewayHTTPConfig(),
		messagingDBService,
	)

	if conf.Intervals.LastSendAttemptLockDuration == 0 {
		conf.Intervals.LastSendAttemptLockDuration = LAST_SEND_ATTEMPT_LOCK_DURATION
	}
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_MESSAGING_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MessagingDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_MESSAGING_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MessagingDB.Password = dbPassword
	}

	if apiKey := os.Getenv(ENV_PUSH_GATEWAY_API_KEY); apiKey != "" {
		conf.MessagingConfigs.PushGatewayConfig.APIKey = apiKey
	}
}

func loadPushGatewayHTTPConfig() *httpclient.ClientConfig {
	timeout := 30 * time.Second
	if conf.MessagingConfigs.PushGatewayConfig.RequestTimeout != "" {
		parsed, err := utils.ParseDurationString(conf.MessagingConfigs.PushGatewayConfig.RequestTimeout)
		if err != nil {
			slog.Error("invalid push gateway request timeout, using default", slog.String("error", err.Error()))
		} else {
			timeout = parsed
		}
	}

	return &httpclient.ClientConfig{
		RootURL: conf.MessagingConfigs.PushGatewayConfig.URL,
		APIKey:  conf.MessagingConfigs.PushGatewayConfig.APIKey,
		Timeout: timeout,
	}
}

func initDBs() {
	var err error
	messagingDBService, err = messagingDB.NewMessagingDBService(db.DBConfigFromYamlObj(conf.DBConfigs.MessagingDB, conf.InstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Messaging DB", slog.String("error", err.Error()))
		return
	}
}
