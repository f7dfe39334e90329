package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/medcamp/medcamp-api/internal/api"
	apimiddleware "github.com/medcamp/medcamp-api/internal/api/middleware"
	"github.com/medcamp/medcamp-api/internal/config"
	"github.com/medcamp/medcamp-api/internal/service/auth"
	"github.com/medcamp/medcamp-api/internal/service/payments"
	"github.com/medcamp/medcamp-api/internal/store"
)

// application holds the process-wide dependencies, constructed once at
// startup and injected into the handlers. Nothing here is re-created
// per request.
type application struct {
	config *config.Config
	logger *slog.Logger

	campStore     store.CampStore
	joinStore     store.JoinStore
	userStore     store.UserStore
	paymentStore  store.PaymentStore
	feedbackStore store.FeedbackStore

	jwtService auth.JWTService
	intents    payments.IntentCreator
}

// setupRouter creates and configures the application router with all
// routes and middleware. The route-to-guard mapping replicates the
// deployed contract exactly, including the routes that ship without a
// guard; tightening those is a product decision, not a routing one.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.jwtService)
	campHandler := api.NewCampHandler(app.campStore)
	joinHandler := api.NewJoinHandler(app.joinStore)
	userHandler := api.NewUserHandler(app.userStore)
	paymentHandler := api.NewPaymentHandler(app.paymentStore, app.intents)
	feedbackHandler := api.NewFeedbackHandler(app.feedbackStore)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Public routes
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/camps", campHandler.ListCamps)
	r.Get("/camps/{id}", campHandler.GetCamp)
	r.Patch("/camps/{id}", campHandler.UpdateCamp)
	r.Delete("/CampData/{id}", joinHandler.DeleteJoinData)
	r.Get("/joinCamp", joinHandler.ListJoins)
	r.Get("/joinCamp/{email}", joinHandler.ListJoinsByEmail)
	r.Post("/joinCamp", joinHandler.JoinCamp)
	r.Get("/campParticipantsCount", joinHandler.ParticipantCounts)
	r.Post("/users", userHandler.RegisterUser)
	r.Get("/userProfile", userHandler.ListProfiles)
	r.Patch("/updateProfile", userHandler.UpdateProfile)
	r.Post("/create-payment-intent", paymentHandler.CreateIntent)
	r.Post("/feedback", feedbackHandler.SubmitFeedback)
	r.Get("/feedback", feedbackHandler.ListFeedback)
	r.Get("/feedback/{email}/{id}", feedbackHandler.GetFeedback)

	// Token-protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users/admin/{email}", userHandler.CheckAdmin)
		r.Get("/payments/{email}", paymentHandler.ListPaymentsByEmail)
		r.Post("/payments", paymentHandler.RecordPayment)
	})

	// Admin-only routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Use(authMiddleware.RequireAdmin)

		r.Post("/camps", campHandler.CreateCamp)
		r.Delete("/joinCamp/{id}", joinHandler.DeleteJoin)
		r.Get("/users", userHandler.ListUsers)
		r.Delete("/users/{id}", userHandler.DeleteUser)
		r.Patch("/users/admin/{id}", userHandler.PromoteUser)
		r.Get("/payments/", paymentHandler.ListPayments)
		r.Patch("/payments/{id}", paymentHandler.ConfirmPayment)
	})

	// Liveness endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("MedCamp is sitting")); err != nil {
			app.logger.Error("failed to write liveness response", "error", err)
		}
	})

	return r
}
