package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/repositories"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/services"
)

type MatchingHandler struct {
	matchingService *services.MatchingService
	processingMutex sync.Mutex
	activeProcesses map[string]bool
}

func NewMatchingHandler(matchingService *services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		matchingService: matchingService,
		activeProcesses: make(map[string]bool),
	}
}

func (h *MatchingHandler) StartReconciliation(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromDate string `json:"from_date"`
		ToDate   string `json:"to_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if request.FromDate == "" || request.ToDate == "" {
		respondWithError(w, http.StatusBadRequest, "Both from_date and to_date are required")
		return
	}

	_, err := time.Parse("2006-01-02", request.FromDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid from_date format. Use YYYY-MM-DD")
		return
	}

	_, err = time.Parse("2006-01-02", request.ToDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid to_date format. Use YYYY-MM-DD")
		return
	}

	processKey := request.FromDate + "_" + request.ToDate

	h.processingMutex.Lock()
	if h.activeProcesses[processKey] {
		h.processingMutex.Unlock()
		respondWithError(w, http.StatusConflict, "Reconciliation for this date range is already in progress")
		return
	}
	h.activeProcesses[processKey] = true
	h.processingMutex.Unlock()

	defer func() {
		h.processingMutex.Lock()
		delete(h.activeProcesses, processKey)
		h.processingMutex.Unlock()
	}()

	transactionChan := make(chan []*models.Transaction, 1)
	attachmentChan := make(chan []*models.Attachment, 1)
	errorChan := make(chan error, 2)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		transactions, err := h.matchingService.GetTransactions(request.FromDate, request.ToDate)
		if err != nil {
			errorChan <- err
			return
		}
		transactionChan <- transactions
	}()

	go func() {
		defer wg.Done()
		attachments, err := h.matchingService.GetAttachments(request.FromDate, request.ToDate)
		if err != nil {
			errorChan <- err
			return
		}
		attachmentChan <- attachments
	}()

	wg.Wait()
	close(transactionChan)
	close(attachmentChan)
	close(errorChan)

	if err := <-errorChan; err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	transactions := <-transactionChan
	attachments := <-attachmentChan

	result := h.matchingService.Reconcile(request.FromDate, request.ToDate, transactions, attachments)
	respondWithJSON(w, http.StatusOK, result)
}

func (h *MatchingHandler) FindAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transactionID := vars["transaction_id"]

	if transactionID == "" {
		respondWithError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	attachment, err := h.matchingService.FindAttachmentFor(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if attachment == nil {
		respondWithError(w, http.StatusNotFound, "No confident match found")
		return
	}

	respondWithJSON(w, http.StatusOK, attachment)
}

func (h *MatchingHandler) FindTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attachmentID := vars["attachment_id"]

	if attachmentID == "" {
		respondWithError(w, http.StatusBadRequest, "Attachment ID is required")
		return
	}

	transaction, err := h.matchingService.FindTransactionFor(attachmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrAttachmentNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if transaction == nil {
		respondWithError(w, http.StatusNotFound, "No confident match found")
		return
	}

	respondWithJSON(w, http.StatusOK, transaction)
}
