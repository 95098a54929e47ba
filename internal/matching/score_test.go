package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
)

const testOwner = "Example Company Oy"

func amount(v float64) *float64 {
	return &v
}

func testTransaction(amt *float64, date, contact, reference string) *models.Transaction {
	return &models.Transaction{
		TransactionID: "TX-1",
		Amount:        amt,
		Date:          date,
		Contact:       contact,
		Reference:     reference,
	}
}

func testInvoice(total *float64, invoicingDate, issuer, reference string) *models.Attachment {
	return &models.Attachment{
		AttachmentID: "ATT-1",
		DocumentType: models.DocumentTypeInvoice,
		Data: models.AttachmentData{
			Reference:     reference,
			TotalAmount:   total,
			InvoicingDate: invoicingDate,
			Issuer:        issuer,
		},
	}
}

func TestAmountScore(t *testing.T) {
	engine := NewMatchEngine(testOwner)

	tests := []struct {
		name     string
		txAmount *float64
		total    *float64
		expected float64
	}{
		{"exact match, sign-insensitive", amount(-100.0), amount(100.0), 1.0},
		{"exact match, floating rounding", amount(-100.004), amount(100.0), 1.0},
		{"within one unit", amount(-100.50), amount(100.0), 0.6},
		{"exactly one unit apart", amount(-101.0), amount(100.0), 0.6},
		{"too far apart", amount(-105.0), amount(100.0), 0.0},
		{"missing transaction amount", nil, amount(100.0), 0.0},
		{"missing attachment amount", amount(-100.0), nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := testTransaction(tt.txAmount, "2024-01-01", "", "")
			att := testInvoice(tt.total, "2024-01-01", "", "")
			assert.Equal(t, tt.expected, engine.AmountScore(tx, att))
		})
	}
}

func TestDateScore(t *testing.T) {
	engine := NewMatchEngine(testOwner)

	tests := []struct {
		name     string
		txDate   string
		attDate  string
		expected float64
	}{
		{"two days apart", "2024-01-01", "2024-01-03", 1.0},
		{"same day", "2024-01-01", "2024-01-01", 1.0},
		{"five days apart", "2024-01-01", "2024-01-06", 0.8},
		{"ten days apart", "2024-01-01", "2024-01-11", 0.5},
		{"fourteen days apart", "2024-01-01", "2024-01-15", 0.2},
		{"twenty days apart", "2024-01-01", "2024-01-21", 0.2},
		{"two months apart", "2024-01-01", "2024-03-01", 0.0},
		{"order does not matter", "2024-01-15", "2024-01-01", 0.2},
		{"missing transaction date", "", "2024-01-01", 0.0},
		{"malformed transaction date", "garbage", "2024-01-01", 0.0},
		{"missing attachment date", "2024-01-01", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := testTransaction(amount(-100), tt.txDate, "", "")
			att := testInvoice(amount(100), tt.attDate, "", "")
			assert.Equal(t, tt.expected, engine.DateScore(tx, att))
		})
	}
}

func TestDateScoreAttachmentDatePrecedence(t *testing.T) {
	engine := NewMatchEngine(testOwner)
	tx := testTransaction(amount(-100), "2024-01-01", "", "")

	// invoicing_date wins over receiving_date and due_date
	att := &models.Attachment{
		Data: models.AttachmentData{
			InvoicingDate: "2024-01-01",
			ReceivingDate: "2024-02-01",
			DueDate:       "2024-03-01",
		},
	}
	assert.Equal(t, 1.0, engine.DateScore(tx, att))

	// a receipt typically carries only receiving_date
	att = &models.Attachment{
		Data: models.AttachmentData{
			ReceivingDate: "2024-01-02",
			DueDate:       "2024-03-01",
		},
	}
	assert.Equal(t, 1.0, engine.DateScore(tx, att))

	// due_date as last resort
	att = &models.Attachment{
		Data: models.AttachmentData{
			DueDate: "2024-01-14",
		},
	}
	assert.Equal(t, 0.2, engine.DateScore(tx, att))
}

func TestNameScore(t *testing.T) {
	engine := NewMatchEngine(testOwner)

	tests := []struct {
		name     string
		contact  string
		issuer   string
		expected float64
	}{
		{"identical names", "Acme Oy", "Acme Oy", 1.0},
		{"suffix variants normalize equal", "Acme Oy", "Acme", 1.0},
		{"close but not identical", "Alphabet Group", "Alphabet Groun", 0.6},
		{"unrelated names", "Acme", "Globex", 0.0},
		{"missing transaction name", "", "Acme Oy", 0.0},
		{"missing attachment name", "Acme Oy", "", 0.0},
		{"both names missing", "", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := testTransaction(amount(-100), "2024-01-01", tt.contact, "")
			att := testInvoice(amount(100), "2024-01-01", tt.issuer, "")
			assert.Equal(t, tt.expected, engine.NameScore(tx, att))
		})
	}
}

func TestNameScoreSkipsAccountOwner(t *testing.T) {
	engine := NewMatchEngine(testOwner)
	tx := testTransaction(amount(-100), "2024-01-01", "Acme", "")

	// The account owner named as issuer is not a counterparty; the supplier
	// is the first remaining candidate.
	att := &models.Attachment{
		Data: models.AttachmentData{
			Issuer:   "Example Company Oy",
			Supplier: "Acme Oy",
		},
	}
	assert.Equal(t, 1.0, engine.NameScore(tx, att))

	// Only the owner present: no usable counterparty at all.
	att = &models.Attachment{
		Data: models.AttachmentData{
			Recipient: "EXAMPLE COMPANY OY",
		},
	}
	assert.Equal(t, 0.0, engine.NameScore(tx, att))
}

func TestMatchScore(t *testing.T) {
	engine := NewMatchEngine(testOwner)

	tests := []struct {
		name     string
		tx       *models.Transaction
		att      *models.Attachment
		expected float64
	}{
		{
			name:     "all signals exact",
			tx:       testTransaction(amount(-250), "2024-01-10", "Acme Oy", ""),
			att:      testInvoice(amount(250), "2024-01-10", "Acme", ""),
			expected: 9.0,
		},
		{
			name:     "close name tier contributes partially",
			tx:       testTransaction(amount(-250), "2024-01-10", "Alphabet Group", ""),
			att:      testInvoice(amount(250), "2024-01-10", "Alphabet Groun", ""),
			expected: 3.0 + 3.0 + 1.8,
		},
		{
			name:     "names absent bypass the identity gate",
			tx:       testTransaction(amount(-250), "2024-01-10", "", ""),
			att:      testInvoice(amount(250), "2024-01-10", "", ""),
			expected: 6.0,
		},
		{
			name:     "one-sided name also bypasses the gate",
			tx:       testTransaction(amount(-250), "2024-01-10", "Acme", ""),
			att:      testInvoice(amount(250), "2024-01-10", "", ""),
			expected: 6.0,
		},
		{
			name:     "tolerant amount tier never passes the gate",
			tx:       testTransaction(amount(-250.50), "2024-01-10", "Acme", ""),
			att:      testInvoice(amount(250), "2024-01-10", "Acme", ""),
			expected: 0.0,
		},
		{
			name:     "date too far away",
			tx:       testTransaction(amount(-250), "2024-01-10", "Acme", ""),
			att:      testInvoice(amount(250), "2024-03-10", "Acme", ""),
			expected: 0.0,
		},
		{
			name:     "contradicting names",
			tx:       testTransaction(amount(-250), "2024-01-10", "Acme", ""),
			att:      testInvoice(amount(250), "2024-01-10", "Globex", ""),
			expected: 0.0,
		},
		{
			name:     "missing amount",
			tx:       testTransaction(nil, "2024-01-10", "Acme", ""),
			att:      testInvoice(amount(250), "2024-01-10", "Acme", ""),
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, engine.MatchScore(tt.tx, tt.att), 1e-9)
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("acme", "acme"))
	assert.Equal(t, 1.0, similarityRatio("", ""))
	assert.Equal(t, 0.0, similarityRatio("acme", ""))
	assert.InDelta(t, 0.9286, similarityRatio("alphabet group", "alphabet groun"), 0.001)

	// symmetric
	assert.Equal(t,
		similarityRatio("alphabet group", "alphabet groun"),
		similarityRatio("alphabet groun", "alphabet group"),
	)
}
