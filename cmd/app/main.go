package main

import (
	"fmt"
	"log/slog"
	"os"

	"comanda/cmd"
	httpadapter "comanda/internal/adapters/in/http"
	"comanda/internal/adapters/out/postgres/diningrepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/adapters/out/postgres/paymentrepo"
	"comanda/internal/adapters/out/postgres/productrepo"
	"comanda/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(app.Hub(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		FinanceUser:     goDotEnvVariable("FINANCE_USER"),
		FinancePassword: goDotEnvVariable("FINANCE_PASSWORD"),
		AuthSecret:      goDotEnvVariable("AUTH_SECRET"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns duplicate-key violations into
	// gorm.ErrDuplicatedKey, which the payment repository relies on.
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&diningrepo.TableDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	auth := httpadapter.NewFinanceAuth(
		configs.FinanceUser, configs.FinancePassword, configs.AuthSecret)

	server := httpadapter.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateSetLineDeliveredCommandHandler(),
		app.CreateSetLineDeliveredCountCommandHandler(),
		app.CreateChargeOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetPaymentsQueryHandler(),
		app.CreateGetPaymentsSummaryQueryHandler(),
		auth,
		app.Hub().Handle,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
