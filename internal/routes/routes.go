package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampta/resumecraft-backend/internal/handlers"
)

// SetupRoutes wires every endpoint. authMW resolves the Bearer token into a
// principal; the payment verify callback is gateway-driven and stays outside it.
func SetupRoutes(r *chi.Mux, authMW func(http.Handler) http.Handler,
	authH *handlers.AuthHandler,
	resumeH *handlers.ResumeHandler,
	paymentH *handlers.PaymentHandler,
	templateH *handlers.TemplateHandler,
) {
	// Public auth routes
	r.Post("/api/auth/register", authH.Register)
	r.Get("/api/auth/verify-email", authH.VerifyEmail)
	r.Post("/api/auth/login", authH.Login)
	r.Post("/api/auth/resend-verification", authH.ResendVerification)

	// Gateway callback (no session)
	r.Post("/api/payments/verify", paymentH.VerifyPayment)

	// Session-protected routes
	r.Group(func(pr chi.Router) {
		pr.Use(authMW)

		pr.Get("/api/auth/profile", authH.GetProfile)
		pr.Put("/api/auth/profile", authH.UpdateProfile)
		pr.Post("/api/auth/upload-image", resumeH.UploadImage)

		pr.Post("/api/resumes", resumeH.Create)
		pr.Get("/api/resumes", resumeH.List)
		pr.Get("/api/resumes/{id}", resumeH.Get)
		pr.Put("/api/resumes/{id}", resumeH.Update)
		pr.Delete("/api/resumes/{id}", resumeH.Delete)
		pr.Put("/api/resumes/{id}/upload-images", resumeH.UploadImages)

		pr.Get("/api/templates", templateH.GetTemplates)

		pr.Post("/api/payments/create-order", paymentH.CreateOrder)
		pr.Get("/api/payments/history", paymentH.History)
		pr.Get("/api/payments/{orderId}", paymentH.Details)
	})
}
