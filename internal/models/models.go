package models

import (
	"time"
)

// Transaction represents a bank statement line item. Optional fields use
// pointers (numeric) or the empty string so that "absent" survives the trip
// through the ingestion boundary.
type Transaction struct {
	ID            int64     `db:"id" json:"id"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	AccountNumber string    `db:"account_number" json:"account_number,omitempty"`
	Reference     string    `db:"reference" json:"reference,omitempty"`
	Amount        *float64  `db:"amount" json:"amount,omitempty"`
	Date          string    `db:"transaction_date" json:"date,omitempty"`
	Contact       string    `db:"contact" json:"contact,omitempty"`
	Description   string    `db:"description" json:"description,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"-"`
	UpdatedAt     time.Time `db:"updated_at" json:"-"`
}

// Attachment represents a supporting document (invoice or receipt) with its
// extracted data payload.
type Attachment struct {
	ID           int64          `db:"id" json:"id"`
	AttachmentID string         `db:"attachment_id" json:"attachment_id"`
	DocumentType string         `db:"document_type" json:"document_type,omitempty"`
	Data         AttachmentData `json:"data"`
	CreatedAt    time.Time      `db:"created_at" json:"-"`
	UpdatedAt    time.Time      `db:"updated_at" json:"-"`
}

// AttachmentData holds the fields extracted from the document. Invoices carry
// invoicing_date and due_date, receipts carry receiving_date.
type AttachmentData struct {
	Reference     string   `db:"reference" json:"reference,omitempty"`
	TotalAmount   *float64 `db:"total_amount" json:"total_amount,omitempty"`
	InvoicingDate string   `db:"invoicing_date" json:"invoicing_date,omitempty"`
	ReceivingDate string   `db:"receiving_date" json:"receiving_date,omitempty"`
	DueDate       string   `db:"due_date" json:"due_date,omitempty"`
	Issuer        string   `db:"issuer" json:"issuer,omitempty"`
	Recipient     string   `db:"recipient" json:"recipient,omitempty"`
	Supplier      string   `db:"supplier" json:"supplier,omitempty"`
}

// DocumentType constants
const (
	DocumentTypeInvoice = "invoice"
	DocumentTypeReceipt = "receipt"
)
