package infra

import (
	"errors"
	"net/http"

	"github.com/anvaya/crm/internal/cache"
	errs "github.com/anvaya/crm/internal/errors"
	"github.com/anvaya/crm/internal/handlers"
	"github.com/anvaya/crm/internal/repository"
	"github.com/anvaya/crm/internal/service"
	"github.com/anvaya/crm/internal/validation"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-redis/redis/v9"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Router builds echo application with all routes wired
func Router(db *mongo.Database, redisClient *redis.Client) (*echo.Echo, error) {
	e := echo.New()

	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}
	e.Validator = validation.Echo(validate, translator)

	e.HTTPErrorHandler = errorHandler(e)

	// Repositories
	leadRepo := repository.NewMongoLeadRepository(db)
	agentRepo := repository.NewMongoAgentRepository(db)
	commentRepo := repository.NewMongoCommentRepository(db)
	tagRepo := repository.NewMongoTagRepository(db)

	// Caches
	tagCache := cache.NewRedisTagCacheRepository(redisClient)

	// Services
	leadSvc := service.NewLeadService(leadRepo, agentRepo, commentRepo)
	commentSvc := service.NewCommentService(commentRepo, leadRepo, agentRepo)
	agentSvc := service.NewAgentService(agentRepo)
	tagSvc := service.NewTagService(tagRepo, tagCache)
	reportSvc := service.NewReportService(leadRepo)

	// Handlers
	leadHandler := handlers.NewLeadHTTPHandler(leadSvc)
	commentHandler := handlers.NewCommentHTTPHandler(commentSvc)
	agentHandler := handlers.NewAgentHTTPHandler(agentSvc)
	tagHandler := handlers.NewTagHTTPHandler(tagSvc)
	reportHandler := handlers.NewReportHTTPHandler(reportSvc)

	// health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Anvaya CRM API is running",
			"version": "1.0.0",
		})
	})

	// leads
	leadsAPI := e.Group("/leads")
	leadsAPI.POST("", leadHandler.Post)
	leadsAPI.GET("", leadHandler.GetAll)
	leadsAPI.PUT("/:id", leadHandler.Put)
	leadsAPI.DELETE("/:id", leadHandler.DeleteByID)

	// comments of a lead
	leadsAPI.POST("/:id/comments", commentHandler.Post)
	leadsAPI.GET("/:id/comments", commentHandler.GetAll)

	// sales agents
	agentsAPI := e.Group("/agents")
	agentsAPI.POST("", agentHandler.Post)
	agentsAPI.GET("", agentHandler.GetAll)

	// tags
	tagsAPI := e.Group("/tags")
	tagsAPI.POST("", tagHandler.Post)
	tagsAPI.GET("", tagHandler.GetAll)

	// reports
	reportAPI := e.Group("/report")
	reportAPI.GET("/last-week", reportHandler.LastWeek)
	reportAPI.GET("/pipeline", reportHandler.Pipeline)
	reportAPI.GET("/closed-by-agent", reportHandler.ClosedByAgent)

	return e, nil
}

// errorHandler maps typed service errors to status codes; anything
// unclassified falls through to the default handler as 500 with a
// generic message
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		logrus.Errorf("error occurred on http request processing - %v", err)

		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			if err := c.JSON(http.StatusBadRequest, pldErr); err != nil {
				c.Logger().Error(err)
			}
			return
		}

		var (
			businessErr *errs.BusinessErr
			notFoundErr *errs.EntryNotFoundErr
			conflictErr *errs.ConflictErr
		)

		switch {
		case errors.As(err, &businessErr):
			err = echo.NewHTTPError(http.StatusBadRequest, businessErr.Error())
		case errors.As(err, &notFoundErr):
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		case errors.As(err, &conflictErr):
			err = echo.NewHTTPError(http.StatusConflict, conflictErr.Error())
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
