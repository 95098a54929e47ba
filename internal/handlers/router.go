package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/config"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/matching"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/repositories"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/services"
)

func SetupRouter(db *sql.DB, cfg *config.Config) *mux.Router {
	transactionRepo := repositories.NewTransactionRepository(db)
	attachmentRepo := repositories.NewAttachmentRepository(db)

	engine := matching.NewMatchEngine(cfg.Company.Name)

	ingestionService := services.NewDataIngestionService(db, transactionRepo, attachmentRepo)
	matchingService := services.NewMatchingService(engine, transactionRepo, attachmentRepo)

	dataHandler := NewDataHandler(ingestionService)
	matchingHandler := NewMatchingHandler(matchingService)

	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()

	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)

	api.HandleFunc("/transactions", dataHandler.IngestTransactions).Methods(http.MethodPost)
	api.HandleFunc("/attachments", dataHandler.IngestAttachments).Methods(http.MethodPost)

	api.HandleFunc("/reconciliation", matchingHandler.StartReconciliation).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{transaction_id}/attachment", matchingHandler.FindAttachment).Methods(http.MethodGet)
	api.HandleFunc("/attachments/{attachment_id}/transaction", matchingHandler.FindTransaction).Methods(http.MethodGet)

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.RemoteAddr, r.Method, r.URL)
		next.ServeHTTP(w, r)
	})
}

func jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "healthy",
	}
	respondWithJSON(w, http.StatusOK, response)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Error marshaling JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
