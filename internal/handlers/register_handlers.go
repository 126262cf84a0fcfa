package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/itrustbank/itrust_backend/cmd/docs"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/middleware"
	"github.com/itrustbank/itrust_backend/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// phonePattern accepts Philippine mobile numbers, local (09...) or
// international (+639...) form.
var phonePattern = regexp.MustCompile(`^(09\d{9}|\+639\d{9})$`)

// RegisterValidators installs the custom binding validators. Call once
// before registering routes.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phoneno", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.Employee)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, employeeService portssvc.EmployeeSvc) {
	h := NewAuthHandler(employeeService, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerEmployeeRoutes(v1, services.Employee)
	registerReportingRoutes(v1, services.Reporting)
}

func registerAccountRoutes(v1 *gin.RouterGroup, accountService portssvc.AccountSvc, ledgerService portssvc.LedgerSvc) {
	accountHandler := NewAccountHandler(accountService)
	ledgerHandler := NewLedgerHandler(ledgerService)

	accounts := v1.Group("/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("", accountHandler.ListAccounts)
		accounts.GET("/search", accountHandler.SearchAccounts)
		accounts.GET("/:identifier", accountHandler.GetAccount)
		accounts.PUT("/:identifier", accountHandler.UpdateAccount)
		accounts.DELETE("/:identifier", accountHandler.DeleteAccount)
		accounts.POST("/:identifier/deactivate", accountHandler.DeactivateAccount)
		accounts.POST("/:identifier/reactivate", accountHandler.ReactivateAccount)

		accounts.POST("/:identifier/deposits", ledgerHandler.Deposit)
		accounts.POST("/:identifier/withdrawals", ledgerHandler.Withdraw)
		accounts.POST("/:identifier/fee-cycle", ledgerHandler.ApplyFeeCycle)
		accounts.GET("/:identifier/transactions", ledgerHandler.ListTransactions)
	}
}

func registerEmployeeRoutes(v1 *gin.RouterGroup, employeeService portssvc.EmployeeSvc) {
	h := NewEmployeeHandler(employeeService)

	employees := v1.Group("/employees", middleware.RequireRole(domain.RoleManager))
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.PUT("/:employeeID/active", h.SetEmployeeActive)
	}
}

func registerReportingRoutes(v1 *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := NewReportingHandler(reportingService)

	reports := v1.Group("/reports", middleware.RequireRole(domain.RoleManager))
	{
		reports.GET("/summary", h.Summary)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
