package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EconomicsUC *usecase.EconomicsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	economics := api.Group("/economics")
	economicsHandler := NewEconomicsHandler(deps.EconomicsUC)
	economics.Post("/report", economicsHandler.Report)
	economics.Post("/report/json", economicsHandler.ReportJSON)
}
