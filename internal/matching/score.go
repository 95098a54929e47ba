package matching

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
)

const (
	// Per-signal score tiers
	ExactAmountScore = 1.0
	CloseAmountScore = 0.6

	ExactNameScore = 1.0
	CloseNameScore = 0.6

	// Name similarity thresholds. The high bar keeps near-miss typos as
	// weak evidence rather than strong evidence.
	ExactNameSimilarity = 0.98
	CloseNameSimilarity = 0.90

	// Weight applied to each signal in the composite score (max 9.0)
	SignalWeight = 3.0
)

// Amount tolerances. The exact tier absorbs floating rounding, the close
// tier absorbs small fees and rounding differences.
var (
	exactAmountTolerance = decimal.NewFromFloat(0.01)
	closeAmountTolerance = decimal.NewFromFloat(1.0)
)

// AmountScore compares the absolute amounts of the pair. Outgoing payments
// are negative on the statement while document totals are unsigned, so only
// magnitudes are compared.
func (m *MatchEngine) AmountScore(tx *models.Transaction, att *models.Attachment) float64 {
	txAmount, ok := transactionAmount(tx)
	if !ok {
		return 0.0
	}
	attAmount, ok := attachmentAmount(att)
	if !ok {
		return 0.0
	}

	diff := decimal.NewFromFloat(txAmount).Abs().
		Sub(decimal.NewFromFloat(attAmount).Abs()).Abs()
	if diff.LessThan(exactAmountTolerance) {
		return ExactAmountScore
	}
	if diff.LessThanOrEqual(closeAmountTolerance) {
		return CloseAmountScore
	}
	return 0.0
}

// DateScore scores the whole-day distance between the transaction date and
// the attachment date as a decreasing step function.
func (m *MatchEngine) DateScore(tx *models.Transaction, att *models.Attachment) float64 {
	txDate, ok := transactionDate(tx)
	if !ok {
		return 0.0
	}
	attDate, ok := attachmentDate(att)
	if !ok {
		return 0.0
	}

	days := int(math.Abs(txDate.Sub(attDate).Hours()) / 24)
	switch {
	case days <= 2:
		return 1.0
	case days <= 5:
		return 0.8
	case days <= 10:
		return 0.5
	case days <= 20:
		return 0.2
	}
	return 0.0
}

// NameScore scores the similarity of the normalized counterparty names.
// Both sides must have a name; a missing name on either side scores 0.0.
func (m *MatchEngine) NameScore(tx *models.Transaction, att *models.Attachment) float64 {
	txName, ok := transactionName(tx)
	if !ok {
		return 0.0
	}
	attName, ok := m.attachmentCounterparty(att)
	if !ok {
		return 0.0
	}

	similarity := similarityRatio(txName, attName)
	if similarity >= ExactNameSimilarity {
		return ExactNameScore
	}
	if similarity >= CloseNameSimilarity {
		return CloseNameScore
	}
	return 0.0
}

// MatchScore combines the three signals into the heuristic score used when
// no reference links the pair. Amount and date are hard requirements, and
// when both sides carry a counterparty name the names must not contradict.
// Any gate failure yields exactly 0.0; a passing pair scores
// 3*amount + 3*date + 3*name.
func (m *MatchEngine) MatchScore(tx *models.Transaction, att *models.Attachment) float64 {
	a := m.AmountScore(tx, att)
	d := m.DateScore(tx, att)
	n := m.NameScore(tx, att)

	_, hasTxName := transactionName(tx)
	_, hasAttName := m.attachmentCounterparty(att)

	// amount must match exactly; the close tier alone never justifies a link
	if a < ExactAmountScore {
		return 0.0
	}
	if d <= 0.0 {
		return 0.0
	}
	if hasTxName && hasAttName && n <= 0.0 {
		return 0.0
	}

	return SignalWeight*a + SignalWeight*d + SignalWeight*n
}
