// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register mounts every API route on the given router. Content and
// collection GETs under /api/admin are public reads; mutations and the image
// admin endpoints require a valid session.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/quote", h.SubmitQuote)
		r.Post("/contact", h.SubmitContact)
		r.Post("/carrier", h.SubmitCarrier)
		r.Get("/faqs", h.ListFAQs)
		r.Get("/images/{filename}", h.ServeImage)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/check-auth", h.CheckAuth)

			r.Get("/services", h.ListServices)
			r.Get("/testimonials", h.ListTestimonials)
			r.Get("/content/home", h.GetHomeContent)
			r.Get("/content/about", h.GetAboutContent)
			r.Get("/content/contact", h.GetContactContent)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireSession)

				r.Put("/content/home", h.UpdateHomeContent)
				r.Put("/content/about", h.UpdateAboutContent)
				r.Put("/content/contact", h.UpdateContactContent)

				r.Post("/services", h.CreateService)
				r.Put("/services", h.UpdateService)
				r.Delete("/services", h.DeleteService)

				r.Post("/testimonials", h.CreateTestimonial)
				r.Put("/testimonials", h.UpdateTestimonial)
				r.Delete("/testimonials", h.DeleteTestimonial)

				r.Post("/upload", h.UploadImage)
				r.Get("/images/list", h.ListImages)
				r.Delete("/images/delete", h.DeleteImage)
			})
		})
	})

	// Locally stored uploads are served as plain static files.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(h.cfg.UploadsDir))))
}
