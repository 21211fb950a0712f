package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"campuseats/cmd"
	adapter "campuseats/internal/adapters/in/http"
	"campuseats/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs)

	if configs.SeedDemoData {
		if err := app.SeedDemoData(context.Background()); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	if configs.DispatchJobEnabled {
		jobManager := jobs.NewJobManager(app.CreateAssignCourierCommandHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DispatchJobEnabled: goDotEnvBool("DISPATCH_JOB_ENABLED"),
		SeedDemoData:       goDotEnvBool("SEED_DEMO_DATA"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := adapter.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateRegisterCourierCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAddExtraCommandHandler(),
		app.CreateChangeAddressCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateChangeOrderStateCommandHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		app.CreateGetReadyDeliveriesQueryHandler(),
		app.CreateGetOrderDetailsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
