package config

import "os"

type InsuranceServiceConfig struct {
	Port string

	FirebaseCfg FirebaseConfig
	RedisCfg    RedisConfig
	RabbitMQCfg RabbitMQConfig
	MailCfg     MailConfig

	// AdminUserID is the administrative recipient of claim-filed
	// notifications. Injected here instead of a hard-coded literal.
	AdminUserID string

	// NotifyApplicationTransitions turns notification fan-out for insurance
	// application status changes on. Claims always fan out.
	NotifyApplicationTransitions bool

	// PushEnabled starts the RabbitMQ push delivery pipeline.
	PushEnabled       bool
	PushPrefetchCount int
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
	DatabaseURL     string
	// WebAPIKey authorizes Identity Toolkit password sign-in calls.
	WebAPIKey string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Username string
	Password string
	Host     string
	Port     string
}

type MailConfig struct {
	Username string
	Password string
}

func New() *InsuranceServiceConfig {
	return &InsuranceServiceConfig{
		Port: getEnvOrDefault("PORT", "8084"),
		FirebaseCfg: FirebaseConfig{
			CredentialsPath: getEnvOrDefault("FIREBASE_CREDENTIALS", "/secrets/firebase-service-account.json"),
			ProjectID:       getEnvOrDefault("FIREBASE_PROJECT_ID", ""),
			DatabaseURL:     getEnvOrDefault("FIREBASE_DATABASE_URL", ""),
			WebAPIKey:       getEnvOrDefault("FIREBASE_WEB_API_KEY", ""),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
		},
		RabbitMQCfg: RabbitMQConfig{
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		MailCfg: MailConfig{
			Username: getEnvOrDefault("MAIL_USERNAME", ""),
			Password: getEnvOrDefault("MAIL_PASSWORD", ""),
		},
		AdminUserID:                  getEnvOrDefault("ADMIN_USER_ID", "admin"),
		NotifyApplicationTransitions: getEnvOrDefault("NOTIFY_APPLICATION_TRANSITIONS", "false") == "true",
		PushEnabled:                  getEnvOrDefault("PUSH_ENABLED", "false") == "true",
		PushPrefetchCount:            10,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
