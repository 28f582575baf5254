package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/middleware"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/jwt"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

// Register wires the full v1 surface. Guards are plain handlers passed
// per route; role checks that depend on ownership stay in the usecases.
func Register(r fiber.Router, cfg config.Config, db database.DB) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	auth := middleware.NewAuthMiddleware(jwtSvc).Middleware()
	seeker := middleware.RequireRole(user.RoleJobSeeker)
	employer := middleware.RequireRole(user.RoleEmployer)
	admin := middleware.RequireRole(user.RoleAdmin)

	userRepo := repository.NewPostgresUserRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	jobSkillRepo := repository.NewPostgresJobSkillRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo, skillRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, jobRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, jobSkillRepo, companyRepo, categoryRepo, skillRepo, applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, companyRepo)

	applicationHandler := handler.NewApplicationHandler(applicationUC)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))
	RegisterUsers(r.Group("/users"), handler.NewUserHandler(userUC), handler.NewUserSkillHandler(userSkillUC), auth, seeker)
	RegisterCompanies(r.Group("/companies"), handler.NewCompanyHandler(companyUC), auth, employer)
	RegisterCategories(r.Group("/categories"), handler.NewCategoryHandler(categoryUC), auth, admin)
	RegisterSkills(r.Group("/skills"), handler.NewSkillHandler(skillUC), auth, admin)
	RegisterJobs(r.Group("/jobs"), handler.NewJobHandler(jobUC), applicationHandler, auth, seeker, employer, admin)
	RegisterApplications(r.Group("/applications"), applicationHandler, auth, seeker, employer)
}
