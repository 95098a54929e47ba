package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	InsertTransaction(tx *sql.Tx, t *models.Transaction) error
	GetTransactionByID(id int64) (*models.Transaction, error)
	GetTransactionByTransactionID(transactionID string) (*models.Transaction, error)
	GetTransactions(fromDate, toDate string) ([]*models.Transaction, error)
	GetAllTransactions() ([]*models.Transaction, error)
	UpdateTransaction(tx *sql.Tx, t *models.Transaction) error
}

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `
	id, transaction_id, account_number, reference, amount,
	transaction_date, contact, description, created_at, updated_at
`

func (r *transactionRepository) InsertTransaction(tx *sql.Tx, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, account_number, reference, amount,
			transaction_date, contact, description
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := tx.Exec(query,
		t.TransactionID,
		t.AccountNumber,
		nullString(t.Reference),
		nullFloat(t.Amount),
		nullString(t.Date),
		t.Contact,
		t.Description,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r *transactionRepository) GetTransactionByID(id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`
	return r.scanTransaction(r.db.QueryRow(query, id))
}

func (r *transactionRepository) GetTransactionByTransactionID(transactionID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = ?`
	return r.scanTransaction(r.db.QueryRow(query, transactionID))
}

func (r *transactionRepository) GetTransactions(fromDate, toDate string) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_date BETWEEN ? AND ?
	`
	rows, err := r.db.Query(query, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectTransactions(rows)
}

func (r *transactionRepository) GetAllTransactions() ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectTransactions(rows)
}

func (r *transactionRepository) UpdateTransaction(tx *sql.Tx, t *models.Transaction) error {
	query := `
		UPDATE transactions
		SET account_number = ?,
			reference = ?,
			amount = ?,
			transaction_date = ?,
			contact = ?,
			description = ?,
			updated_at = ?
		WHERE id = ?
	`
	result, err := tx.Exec(query,
		t.AccountNumber,
		nullString(t.Reference),
		nullFloat(t.Amount),
		nullString(t.Date),
		t.Contact,
		t.Description,
		time.Now(),
		t.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) scanTransaction(row *sql.Row) (*models.Transaction, error) {
	t := &models.Transaction{}
	var reference, date sql.NullString
	var amount sql.NullFloat64

	err := row.Scan(
		&t.ID,
		&t.TransactionID,
		&t.AccountNumber,
		&reference,
		&amount,
		&date,
		&t.Contact,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	t.Reference = reference.String
	t.Date = date.String
	if amount.Valid {
		t.Amount = &amount.Float64
	}
	return t, nil
}

func (r *transactionRepository) collectTransactions(rows *sql.Rows) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		var reference, date sql.NullString
		var amount sql.NullFloat64

		err := rows.Scan(
			&t.ID,
			&t.TransactionID,
			&t.AccountNumber,
			&reference,
			&amount,
			&date,
			&t.Contact,
			&t.Description,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		t.Reference = reference.String
		t.Date = date.String
		if amount.Valid {
			value := amount.Float64
			t.Amount = &value
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
