package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gift_shop/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Route("/gifts", func(r chi.Router) {
				r.Get("/", handler(s.getV1Gifts))
				r.Post("/", handler(s.postV1Gifts))
			})
			r.Get("/users/{id}/gifts", handler(s.getV1UserGifts))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
