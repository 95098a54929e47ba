package matching

import (
	"time"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
)

// Field accessors locate the relevant raw field per record kind and apply
// the matching normalizer. All of them report absence via ok=false instead
// of failing.

func transactionReference(tx *models.Transaction) (string, bool) {
	return NormalizeRef(tx.Reference)
}

func attachmentReference(att *models.Attachment) (string, bool) {
	return NormalizeRef(att.Data.Reference)
}

func transactionAmount(tx *models.Transaction) (float64, bool) {
	if tx.Amount == nil {
		return 0, false
	}
	return *tx.Amount, true
}

func attachmentAmount(att *models.Attachment) (float64, bool) {
	if att.Data.TotalAmount == nil {
		return 0, false
	}
	return *att.Data.TotalAmount, true
}

func transactionDate(tx *models.Transaction) (time.Time, bool) {
	return ParseDate(tx.Date)
}

// attachmentDate picks the best available document date: invoices carry an
// invoicing date, receipts a receiving date, with due date as last resort.
func attachmentDate(att *models.Attachment) (time.Time, bool) {
	for _, value := range []string{
		att.Data.InvoicingDate,
		att.Data.ReceivingDate,
		att.Data.DueDate,
	} {
		if t, ok := ParseDate(value); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func transactionName(tx *models.Transaction) (string, bool) {
	return NormalizeName(tx.Contact)
}

// attachmentCounterparty inspects issuer, recipient and supplier in that
// order and returns the first normalized name that is not the account-owning
// company itself. A document naming the account owner as a party says
// nothing about the external counterparty.
func (m *MatchEngine) attachmentCounterparty(att *models.Attachment) (string, bool) {
	for _, raw := range []string{
		att.Data.Issuer,
		att.Data.Recipient,
		att.Data.Supplier,
	} {
		name, ok := NormalizeName(raw)
		if !ok {
			continue
		}
		if m.hasOwner && name == m.ownerName {
			continue
		}
		return name, true
	}
	return "", false
}
