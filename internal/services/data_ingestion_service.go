package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/repositories"
)

type DataIngestionService struct {
	db              *sql.DB
	transactionRepo repositories.TransactionRepository
	attachmentRepo  repositories.AttachmentRepository
}

func NewDataIngestionService(
	db *sql.DB,
	transactionRepo repositories.TransactionRepository,
	attachmentRepo repositories.AttachmentRepository,
) *DataIngestionService {
	return &DataIngestionService{
		db:              db,
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
	}
}

// FlexString accepts JSON strings and bare numbers; some bank feeds encode
// reference numbers without quotes.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type TransactionInput struct {
	TransactionID string     `json:"transaction_id"`
	AccountNumber string     `json:"account_number,omitempty"`
	Reference     FlexString `json:"reference,omitempty"`
	Amount        *float64   `json:"amount"`
	Date          string     `json:"date"`
	Contact       string     `json:"contact,omitempty"`
	Description   string     `json:"description,omitempty"`
}

type AttachmentDataInput struct {
	Reference     FlexString `json:"reference,omitempty"`
	TotalAmount   *float64   `json:"total_amount"`
	InvoicingDate string     `json:"invoicing_date,omitempty"`
	ReceivingDate string     `json:"receiving_date,omitempty"`
	DueDate       string     `json:"due_date,omitempty"`
	Issuer        string     `json:"issuer,omitempty"`
	Recipient     string     `json:"recipient,omitempty"`
	Supplier      string     `json:"supplier,omitempty"`
}

type AttachmentInput struct {
	AttachmentID string              `json:"attachment_id"`
	DocumentType string              `json:"document_type,omitempty"`
	Data         AttachmentDataInput `json:"data"`
}

type IngestionResult struct {
	Success      bool                   `json:"success"`
	RecordsCount int                    `json:"records_count"`
	Errors       []string               `json:"errors,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

func (s *DataIngestionService) IngestTransactions(transactions []TransactionInput) (*IngestionResult, error) {
	result := &IngestionResult{
		Success: true,
		Details: make(map[string]interface{}),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, input := range transactions {
		if err := validateTransaction(input); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid transaction %s: %v", input.TransactionID, err))
			continue
		}

		transaction := &models.Transaction{
			TransactionID: input.TransactionID,
			AccountNumber: input.AccountNumber,
			Reference:     string(input.Reference),
			Amount:        input.Amount,
			Date:          input.Date,
			Contact:       input.Contact,
			Description:   input.Description,
		}

		err := s.transactionRepo.InsertTransaction(tx, transaction)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to insert transaction %s: %v", input.TransactionID, err))
			continue
		}

		result.RecordsCount++
	}

	result.Success = len(result.Errors) == 0
	result.Details["total_records"] = len(transactions)
	result.Details["successful"] = result.RecordsCount
	result.Details["failed"] = len(result.Errors)

	if result.Success {
		err = tx.Commit()
		if err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %v", err)
		}
	}

	return result, nil
}

func (s *DataIngestionService) IngestAttachments(attachments []AttachmentInput) (*IngestionResult, error) {
	result := &IngestionResult{
		Success: true,
		Details: make(map[string]interface{}),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, input := range attachments {
		if err := validateAttachment(input); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid attachment %s: %v", input.AttachmentID, err))
			continue
		}

		attachment := &models.Attachment{
			AttachmentID: input.AttachmentID,
			DocumentType: input.DocumentType,
			Data: models.AttachmentData{
				Reference:     string(input.Data.Reference),
				TotalAmount:   input.Data.TotalAmount,
				InvoicingDate: input.Data.InvoicingDate,
				ReceivingDate: input.Data.ReceivingDate,
				DueDate:       input.Data.DueDate,
				Issuer:        input.Data.Issuer,
				Recipient:     input.Data.Recipient,
				Supplier:      input.Data.Supplier,
			},
		}

		err := s.attachmentRepo.InsertAttachment(tx, attachment)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to insert attachment %s: %v", input.AttachmentID, err))
			continue
		}

		result.RecordsCount++
	}

	result.Success = len(result.Errors) == 0
	result.Details["total_records"] = len(attachments)
	result.Details["successful"] = result.RecordsCount
	result.Details["failed"] = len(result.Errors)

	if result.Success {
		err = tx.Commit()
		if err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %v", err)
		}
	}

	return result, nil
}

func validateTransaction(input TransactionInput) error {
	if input.TransactionID == "" {
		return fmt.Errorf("transaction_id is required")
	}
	if input.Amount == nil {
		return fmt.Errorf("amount is required")
	}
	if input.Date == "" {
		return fmt.Errorf("date is required")
	}
	return nil
}

func validateAttachment(input AttachmentInput) error {
	if input.AttachmentID == "" {
		return fmt.Errorf("attachment_id is required")
	}
	if input.DocumentType != "" &&
		input.DocumentType != models.DocumentTypeInvoice &&
		input.DocumentType != models.DocumentTypeReceipt {
		return fmt.Errorf("document_type must be %q or %q", models.DocumentTypeInvoice, models.DocumentTypeReceipt)
	}
	if input.Data.TotalAmount == nil {
		return fmt.Errorf("data.total_amount is required")
	}
	return nil
}
