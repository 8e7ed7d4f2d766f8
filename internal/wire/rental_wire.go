package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRental(r chi.Router, rentalHandler *adaptor.RentalHandler) {
	r.Route("/api/rentals", func(r chi.Router) {
		r.Get("/", rentalHandler.GetRentals)          // GET /api/rentals
		r.Post("/", rentalHandler.CreateRental)       // POST /api/rentals
		r.Get("/{id}", rentalHandler.GetRentalByID)   // GET /api/rentals/{id}
		r.Put("/{id}", rentalHandler.UpdateRental)    // PUT /api/rentals/{id}
		r.Delete("/{id}", rentalHandler.DeleteRental) // DELETE /api/rentals/{id}
	})
}
