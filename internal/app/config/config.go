package config

import (
	"github.com/joho/godotenv"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctors_portal"),
			Username: utils.GetEnvString("DB_USER", "defaultUsername"),
			Password: utils.GetEnvString("DB_PASS", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("PORT", ":5000"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("ACCESS_TOKEN_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Stripe: Stripe{
			SecretKey: utils.GetEnvString("STRIPE_SECRET_KEY", ""),
		},
	}
}
