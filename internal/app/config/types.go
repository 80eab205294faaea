package config

type DriverConfig struct {
	MongoDB MongoDB
	Logger  Logger
}

type MongoDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App    App
	JWT    JWT
	Stripe Stripe
}

type App struct {
	Env             string
	Port            string
	MaxRequests     int
	ShutdownTimeout int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Stripe struct {
	SecretKey string
}
