package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

type AttachmentRepository interface {
	InsertAttachment(tx *sql.Tx, a *models.Attachment) error
	GetAttachmentByID(id int64) (*models.Attachment, error)
	GetAttachmentByAttachmentID(attachmentID string) (*models.Attachment, error)
	GetAttachments(fromDate, toDate string) ([]*models.Attachment, error)
	GetAllAttachments() ([]*models.Attachment, error)
	UpdateAttachment(tx *sql.Tx, a *models.Attachment) error
}

type attachmentRepository struct {
	db *sql.DB
}

func NewAttachmentRepository(db *sql.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

const attachmentColumns = `
	id, attachment_id, document_type, reference, total_amount,
	invoicing_date, receiving_date, due_date, issuer, recipient, supplier,
	created_at, updated_at
`

func (r *attachmentRepository) InsertAttachment(tx *sql.Tx, a *models.Attachment) error {
	query := `
		INSERT INTO attachments (
			attachment_id, document_type, reference, total_amount,
			invoicing_date, receiving_date, due_date,
			issuer, recipient, supplier
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := tx.Exec(query,
		a.AttachmentID,
		a.DocumentType,
		nullString(a.Data.Reference),
		nullFloat(a.Data.TotalAmount),
		nullString(a.Data.InvoicingDate),
		nullString(a.Data.ReceivingDate),
		nullString(a.Data.DueDate),
		a.Data.Issuer,
		a.Data.Recipient,
		a.Data.Supplier,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *attachmentRepository) GetAttachmentByID(id int64) (*models.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM attachments WHERE id = ?`
	return r.scanAttachment(r.db.QueryRow(query, id))
}

func (r *attachmentRepository) GetAttachmentByAttachmentID(attachmentID string) (*models.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM attachments WHERE attachment_id = ?`
	return r.scanAttachment(r.db.QueryRow(query, attachmentID))
}

// GetAttachments returns attachments whose best available document date
// falls inside the range. The precedence mirrors the matching engine:
// invoicing_date, then receiving_date, then due_date.
func (r *attachmentRepository) GetAttachments(fromDate, toDate string) ([]*models.Attachment, error) {
	query := `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE COALESCE(invoicing_date, receiving_date, due_date) BETWEEN ? AND ?
	`
	rows, err := r.db.Query(query, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectAttachments(rows)
}

func (r *attachmentRepository) GetAllAttachments() ([]*models.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM attachments`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectAttachments(rows)
}

func (r *attachmentRepository) UpdateAttachment(tx *sql.Tx, a *models.Attachment) error {
	query := `
		UPDATE attachments
		SET document_type = ?,
			reference = ?,
			total_amount = ?,
			invoicing_date = ?,
			receiving_date = ?,
			due_date = ?,
			issuer = ?,
			recipient = ?,
			supplier = ?,
			updated_at = ?
		WHERE id = ?
	`
	result, err := tx.Exec(query,
		a.DocumentType,
		nullString(a.Data.Reference),
		nullFloat(a.Data.TotalAmount),
		nullString(a.Data.InvoicingDate),
		nullString(a.Data.ReceivingDate),
		nullString(a.Data.DueDate),
		a.Data.Issuer,
		a.Data.Recipient,
		a.Data.Supplier,
		time.Now(),
		a.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}

func (r *attachmentRepository) scanAttachment(row *sql.Row) (*models.Attachment, error) {
	a := &models.Attachment{}
	var reference, invoicingDate, receivingDate, dueDate sql.NullString
	var totalAmount sql.NullFloat64

	err := row.Scan(
		&a.ID,
		&a.AttachmentID,
		&a.DocumentType,
		&reference,
		&totalAmount,
		&invoicingDate,
		&receivingDate,
		&dueDate,
		&a.Data.Issuer,
		&a.Data.Recipient,
		&a.Data.Supplier,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Data.Reference = reference.String
	a.Data.InvoicingDate = invoicingDate.String
	a.Data.ReceivingDate = receivingDate.String
	a.Data.DueDate = dueDate.String
	if totalAmount.Valid {
		a.Data.TotalAmount = &totalAmount.Float64
	}
	return a, nil
}

func (r *attachmentRepository) collectAttachments(rows *sql.Rows) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	for rows.Next() {
		a := &models.Attachment{}
		var reference, invoicingDate, receivingDate, dueDate sql.NullString
		var totalAmount sql.NullFloat64

		err := rows.Scan(
			&a.ID,
			&a.AttachmentID,
			&a.DocumentType,
			&reference,
			&totalAmount,
			&invoicingDate,
			&receivingDate,
			&dueDate,
			&a.Data.Issuer,
			&a.Data.Recipient,
			&a.Data.Supplier,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		a.Data.Reference = reference.String
		a.Data.InvoicingDate = invoicingDate.String
		a.Data.ReceivingDate = receivingDate.String
		a.Data.DueDate = dueDate.String
		if totalAmount.Valid {
			value := totalAmount.Float64
			a.Data.TotalAmount = &value
		}
		attachments = append(attachments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attachments, nil
}
