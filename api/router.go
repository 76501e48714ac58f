package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp mounts every handler under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/hrrn", handler.HighestResponseRatioNext)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/recommend", handler.Recommend)
		v1.Post("/report/:algorithm", handler.Report)
		v1.Get("/generate", handler.Generate)
	}

	return app
}
