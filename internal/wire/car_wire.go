package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCar(r chi.Router, carHandler *adaptor.CarHandler) {
	r.Route("/api/cars", func(r chi.Router) {
		r.Get("/", carHandler.GetCars)          // GET /api/cars
		r.Post("/", carHandler.CreateCar)       // POST /api/cars
		r.Get("/{id}", carHandler.GetCarByID)   // GET /api/cars/{id}
		r.Put("/{id}", carHandler.UpdateCar)    // PUT /api/cars/{id}
		r.Delete("/{id}", carHandler.DeleteCar) // DELETE /api/cars/{id}
	})
}
