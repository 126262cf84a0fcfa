package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/core/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/handlers"
	"github.com/itrustbank/itrust_backend/internal/middleware"
	"github.com/itrustbank/itrust_backend/internal/repositories/database/pgsql"
	"github.com/itrustbank/itrust_backend/internal/utils"
	"github.com/itrustbank/itrust_backend/pkg/config"
	"github.com/itrustbank/itrust_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title ITRUST Backend API
// @version 1.0
// @description Teller and manager API for the ITRUST retail bank.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	ids, err := utils.NewEmployeeIDProvider(cfg.SnowflakeNodeID)
	if err != nil {
		logger.Error("Failed to initialize ID provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svcs := &portssvc.ServiceContainer{
		Account:   services.NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		Ledger:    services.NewLedgerService(repos.AccountRepo, repos.TransactionRepo),
		Employee:  services.NewEmployeeService(repos.EmployeeRepo, ids, cfg.BcryptCost),
		Reporting: services.NewReportingService(repos.ReportingRepo),
	}

	if err := bootstrapManager(context.Background(), cfg, svcs.Employee, logger); err != nil {
		logger.Error("Failed to bootstrap manager account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a temporary
// database/sql connection, which golang-migrate requires.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// bootstrapManager creates the first Manager account when configured and
// no operators exist yet.
func bootstrapManager(ctx context.Context, cfg *config.Config, employeeSvc portssvc.EmployeeSvc, logger *slog.Logger) error {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	existing, err := employeeSvc.ListEmployees(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	employee, err := employeeSvc.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Username: cfg.BootstrapUsername,
		Password: cfg.BootstrapPassword,
		Name:     "System Administrator",
		Role:     domain.RoleManager,
	}, "system")
	if err != nil {
		return err
	}

	logger.Info("Bootstrap manager created", slog.String("employee_id", employee.EmployeeID))
	return nil
}
