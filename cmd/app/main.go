package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"courier/cmd"
	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/postgres/agentrepo"
	"courier/internal/adapters/out/postgres/assignmentrepo"
	"courier/internal/adapters/out/postgres/parcelrepo"
	"courier/internal/adapters/out/postgres/reviewrepo"
	"courier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultAssignmentGracePeriod = 10 * time.Minute

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		AssignmentGracePeriod: goDotEnvVariable("ASSIGNMENT_GRACE_PERIOD"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&agentrepo.AgentDTO{},
		&assignmentrepo.AssignmentDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	gracePeriod := defaultAssignmentGracePeriod
	if configs.AssignmentGracePeriod != "" {
		parsed, err := time.ParseDuration(configs.AssignmentGracePeriod)
		if err != nil {
			log.Fatalf("Invalid ASSIGNMENT_GRACE_PERIOD: %v", err)
		}
		gracePeriod = parsed
	}

	jobManager := jobs.NewJobManager(
		app.CreateReconcileAssignmentsCommandHandler(),
		gracePeriod,
		slog.Default(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpin.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateBookParcelCommandHandler(),
		app.CreateAssignParcelCommandHandler(),
		app.CreateUpdateAssignmentCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateMarkParcelPaidCommandHandler(),
		app.CreateCreateAgentCommandHandler(),
		app.CreateSubmitReviewCommandHandler(),
		app.CreateTopAgentsQueryHandler(),
		app.CreateGetAgentReviewsQueryHandler(),
		app.CreateGetUncompletedParcelsQueryHandler(),
		app.CreateGetParcelQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
