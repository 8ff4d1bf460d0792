package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"bookstore/cmd"
	httpin "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/auth"
	"bookstore/internal/adapters/out/postgres/accountrepo"
	"bookstore/internal/adapters/out/postgres/inventoryrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/adapters/out/postgres/statusrepo"
	"bookstore/internal/adapters/out/postgres/storerepo"
	"bookstore/internal/core/domain/services"
	"bookstore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrate(db)

	root, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateCompactLedgerCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		OrderTimeoutSeconds:  goDotEnvInt("ORDER_TIMEOUT_SECONDS", int64(services.DefaultOrderTimeout.Seconds())),
		TokenLifetimeSeconds: goDotEnvInt("TOKEN_LIFETIME_SECONDS", int64(auth.DefaultTokenLifetime.Seconds())),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvInt(key string, fallback int64) int64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns the driver's duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories map to Conflict.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&storerepo.StoreDTO{},
		&inventoryrepo.InventoryLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&statusrepo.StatusEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateRegisterAccountCommandHandler(),
		root.CreateLoginCommandHandler(),
		root.CreateLogoutCommandHandler(),
		root.CreateChangePasswordCommandHandler(),
		root.CreateUnregisterAccountCommandHandler(),
		root.CreateAddFundsCommandHandler(),
		root.CreateCreateStoreCommandHandler(),
		root.CreateAddBookCommandHandler(),
		root.CreateAddStockCommandHandler(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreatePayOrderCommandHandler(),
		root.CreateShipOrderCommandHandler(),
		root.CreateReceiveOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateSetOrderTimeoutCommandHandler(),
		root.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
