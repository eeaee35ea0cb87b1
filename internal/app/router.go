package app

import (
	"studytrack_backend/docs"
	"studytrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		study := api.Group("/study")
		{
			study.GET("/session", c.study.GetSession)
			study.GET("/cards", c.study.GetFilteredCards)
			study.POST("/next", c.study.NextCard)
			study.POST("/previous", c.study.PreviousCard)
			study.PUT("/filters", c.study.UpdateFilters)
			study.POST("/cards/:id/master", c.study.MarkMastered)
			study.POST("/cards/:id/review", c.study.MarkForReview)
			study.POST("/reset", c.study.ResetProgress)
		}

		quiz := api.Group("/quiz")
		{
			quiz.GET("/daily", c.quiz.GetDailyQuiz)
			quiz.POST("/daily/answer", c.quiz.SelectAnswer)
			quiz.POST("/daily/complete", c.quiz.CompleteDailyQuiz)
			quiz.GET("/custom", c.quiz.ListCustomQuizzes)
			quiz.POST("/custom", c.quiz.CreateCustomQuiz)
			quiz.DELETE("/custom/:id", c.quiz.DeleteCustomQuiz)
			quiz.POST("/custom/:id/attempts", c.quiz.RecordAttempt)
			quiz.GET("/custom/:id/stats", c.quiz.GetAttemptStats)
		}

		streak := api.Group("/streak")
		{
			streak.GET("", c.streak.GetStreak)
			streak.GET("/calendar", c.streak.GetCalendar)
			streak.POST("/activity", c.streak.RecordActivity)
			streak.POST("/reset", c.streak.ResetStreak)
		}

		pomodoro := api.Group("/pomodoro")
		{
			pomodoro.GET("/state", c.pomodoro.GetState)
			pomodoro.POST("/start", c.pomodoro.Start)
			pomodoro.POST("/pause", c.pomodoro.Pause)
			pomodoro.POST("/reset", c.pomodoro.Reset)
			pomodoro.PUT("/settings", c.pomodoro.UpdateSettings)
		}

		api.GET("/quote", c.quote.GetCurrentQuote)
		api.GET("/dashboard", c.dashboard.GetDashboard)
		api.GET("/notifications", c.dashboard.GetNotifications)
	}
}
