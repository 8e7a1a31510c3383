package main

import (
	"context"
	"net/http"
	"time"

	"github.com/geekofia/quizdesk/config"
	"github.com/geekofia/quizdesk/database"
	_ "github.com/geekofia/quizdesk/docs" // Swagger docs
	"github.com/geekofia/quizdesk/internal/controller"
	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/logger"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/geekofia/quizdesk/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title QuizDesk API
// @version 1.0
// @description Quiz administration backend: quizzes, student verification, submissions and user profiles.
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuizRepository,
			repository.NewStudentRepository,
			repository.NewSubmissionRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewNotificationService,
			service.NewQuizService,
			service.NewStudentService,
			service.NewSubmissionService,
			service.NewUserService,
		),

		fx.Provide(
			controller.NewQuizController,
			controller.NewStudentController,
			controller.NewSubmissionController,
			controller.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	dto.RegisterValidations()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts the entity route groups and manages the
// HTTP server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *controller.QuizController,
	studentCtrl *controller.StudentController,
	submissionCtrl *controller.SubmissionController,
	userCtrl *controller.UserController,
) {
	api := router.Group("/api/v1")

	quizzes := api.Group("/quizzes")
	{
		quizzes.POST("", quizCtrl.CreateQuiz)
		quizzes.GET("", quizCtrl.ListQuizzes)
		quizzes.GET("/upcoming", quizCtrl.ListUpcomingQuizzes)
		quizzes.GET("/count", quizCtrl.CountQuizzes)
		quizzes.GET("/title/:title", quizCtrl.ListQuizzesByTitle)
		quizzes.GET("/semester/:semester/branch/:branch", quizCtrl.ListQuizzesBySemesterAndBranch)
		quizzes.GET("/:id", quizCtrl.GetQuiz)
		quizzes.PUT("/:id", quizCtrl.UpdateQuiz)
		quizzes.DELETE("/:id", quizCtrl.DeleteQuiz)
	}

	students := api.Group("/students")
	{
		students.POST("", studentCtrl.RegisterStudent)
		students.GET("", studentCtrl.ListStudents)
		students.GET("/count", studentCtrl.CountStudents)
		students.GET("/count/:status", studentCtrl.CountStudentsByVerification)
		students.GET("/verification/:status", studentCtrl.ListStudentsByVerification)
		students.GET("/semester/:semester", studentCtrl.ListStudentsBySemester)
		students.GET("/branch/:branch", studentCtrl.ListStudentsByBranch)
		students.GET("/branch/:branch/semester/:semester", studentCtrl.ListStudentsByBranchAndSemester)
		students.GET("/regdno/:regdNo", studentCtrl.GetStudentByRegdNo)
		students.GET("/email/:email", studentCtrl.GetStudentByEmail)
		students.GET("/:id", studentCtrl.GetStudent)
		students.PUT("/:id/biodata", studentCtrl.UpdateBioData)
		students.PUT("/:id/verification", studentCtrl.UpdateVerification)
		students.DELETE("/:id", studentCtrl.DeleteStudent)
	}

	submissions := api.Group("/submissions")
	{
		submissions.POST("/quiz/:quizId", submissionCtrl.SubmitQuiz)
		submissions.GET("/quiz/:quizId", submissionCtrl.ListSubmissionsByQuiz)
		submissions.GET("/quiz/:quizId/student/:studentId", submissionCtrl.ListSubmissionsByQuizAndStudent)
		submissions.GET("/student/:studentId", submissionCtrl.ListSubmissionsByStudent)
		submissions.GET("/count", submissionCtrl.CountSubmissions)
		submissions.GET("/:id", submissionCtrl.GetSubmission)
	}

	users := api.Group("/users")
	{
		users.GET("/:email", userCtrl.GetUser)
		users.PUT("/:email", userCtrl.UpdateUser)
		users.DELETE("/id/:id", userCtrl.DeleteUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizDesk API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
