// internal/wire/wire.go
package wire

import (
	"net/http"

	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/internal/usecase"
	"car-rental/pkg/middleware"
	"car-rental/pkg/payment"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, processor payment.Processor, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, processor, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCar(r, handler.Car)
	wireRental(r, handler.Rental)
	wirePayment(r, handler.Payment)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
