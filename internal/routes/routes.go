package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/auth"
	"github.com/BruksfildServices01/hrms/internal/config"
	"github.com/BruksfildServices01/hrms/internal/handlers"
	infraRepo "github.com/BruksfildServices01/hrms/internal/infra/repository"
	"github.com/BruksfildServices01/hrms/internal/logger"
	"github.com/BruksfildServices01/hrms/internal/middleware"
	ucAccount "github.com/BruksfildServices01/hrms/internal/usecase/account"
	ucAuditLog "github.com/BruksfildServices01/hrms/internal/usecase/auditlog"
	ucEmployee "github.com/BruksfildServices01/hrms/internal/usecase/employee"
	ucTeam "github.com/BruksfildServices01/hrms/internal/usecase/team"
)

// NewRouter builds the engine with the global middleware chain and all
// routes. recorder receives audit events; the caller owns its lifecycle.
func NewRouter(db *gorm.DB, cfg *config.Config, recorder audit.Recorder, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		logger.Requests(log),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	RegisterRoutes(r, db, cfg, recorder)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, recorder audit.Recorder) {

	// ======================================================
	// INFRA
	// ======================================================
	repo := infraRepo.NewHRGormRepository(db)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(repo, hasher, tokens, recorder)
	loginUC := ucAccount.NewLogin(repo, hasher, tokens, recorder)
	meUC := ucAccount.NewGetMe(repo)

	listEmployeesUC := ucEmployee.NewListEmployees(repo)
	getEmployeeUC := ucEmployee.NewGetEmployee(repo)
	createEmployeeUC := ucEmployee.NewCreateEmployee(repo, recorder)
	updateEmployeeUC := ucEmployee.NewUpdateEmployee(repo, recorder, cfg.StrictNotFound)
	deleteEmployeeUC := ucEmployee.NewDeleteEmployee(repo, recorder, cfg.StrictNotFound)

	listTeamsUC := ucTeam.NewListTeams(repo)
	createTeamUC := ucTeam.NewCreateTeam(repo, recorder)
	updateTeamUC := ucTeam.NewUpdateTeam(repo, recorder, cfg.StrictNotFound)
	deleteTeamUC := ucTeam.NewDeleteTeam(repo, recorder, cfg.StrictNotFound)
	assignUC := ucTeam.NewAssignEmployee(repo, recorder)
	unassignUC := ucTeam.NewUnassignEmployee(repo, recorder)

	listLogsUC := ucAuditLog.NewListLogs(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(repo)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(meUC)
	employeeHandler := handlers.NewEmployeeHandler(
		listEmployeesUC,
		getEmployeeUC,
		createEmployeeUC,
		updateEmployeeUC,
		deleteEmployeeUC,
	)
	teamHandler := handlers.NewTeamHandler(
		listTeamsUC,
		createTeamUC,
		updateTeamUC,
		deleteTeamUC,
		assignUC,
		unassignUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(listLogsUC)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.GET("/employees/:id", employeeHandler.Get)
			secured.PUT("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			secured.GET("/teams", teamHandler.List)
			secured.POST("/teams", teamHandler.Create)
			secured.POST("/teams/assign", teamHandler.Assign)
			secured.DELETE("/teams/assign", teamHandler.Unassign)
			secured.PUT("/teams/:id", teamHandler.Update)
			secured.DELETE("/teams/:id", teamHandler.Delete)

			secured.GET("/logs", auditLogsHandler.List)
		}
	}
}
