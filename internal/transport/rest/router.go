package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"covid-screening-bot/internal/pkg/logger"
	"covid-screening-bot/internal/service"
	"covid-screening-bot/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	Questions *service.QuestionService
	Cards     *service.CardService
	Stats     *service.StatsService
	Hours     *service.HoursService
	Log       *logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	webhook := handler.NewWebhookHandler(c.Questions, c.Cards, c.Stats, c.Hours, c.Log)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/webhook", webhook.Handle).Methods("POST")

	return r
}
