package cmd

// Config carries the environment-derived settings of the service.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	FinanceUser     string
	FinancePassword string
	AuthSecret      string
}
