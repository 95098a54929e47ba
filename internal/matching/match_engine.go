package matching

import (
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
)

const (
	// Minimum heuristic score a best candidate must reach
	ScoreThreshold = 3.5
	// Minimum lead over the runner-up; near-ties are rejected as ambiguous
	ScoreMargin = 1.0
)

// MatchEngine pairs bank transactions with document attachments. It holds
// only the normalized name of the account-owning company, which is excluded
// when extracting a counterparty from a document. All methods are pure and
// safe for concurrent use.
type MatchEngine struct {
	ownerName string
	hasOwner  bool
}

// NewMatchEngine creates an engine for the given account-owning company
// name, e.g. "Example Company Oy".
func NewMatchEngine(companyName string) *MatchEngine {
	name, ok := NormalizeName(companyName)
	return &MatchEngine{
		ownerName: name,
		hasOwner:  ok,
	}
}

// FindAttachment returns the attachment that most likely belongs to the
// transaction, or nil when no confident link can be established.
//
// A normalized reference match is authoritative: exactly one candidate with
// the same reference wins regardless of the other signals, while several
// candidates sharing it make the reference untrustworthy and nothing is
// returned. Without references on either side the heuristic score decides,
// subject to the threshold and the ambiguity margin.
func (m *MatchEngine) FindAttachment(tx *models.Transaction, attachments []*models.Attachment) *models.Attachment {
	txRef, hasTxRef := transactionReference(tx)

	if hasTxRef {
		var refMatches []*models.Attachment
		for _, att := range attachments {
			attRef, ok := attachmentReference(att)
			if !ok {
				continue
			}
			if attRef == txRef {
				refMatches = append(refMatches, att)
			}
		}
		if len(refMatches) == 1 {
			return refMatches[0]
		}
		if len(refMatches) > 1 {
			// ambiguous reference, safer to skip
			return nil
		}
	}

	var best *models.Attachment
	var bestScore, secondBest float64

	for _, att := range attachments {
		_, hasAttRef := attachmentReference(att)
		// heuristic guessing is only safe when neither side has a
		// reference; a mismatched reference already disqualified the pair
		if hasTxRef || hasAttRef {
			continue
		}

		score := m.MatchScore(tx, att)
		if score > bestScore {
			secondBest = bestScore
			bestScore = score
			best = att
		} else if score > secondBest {
			secondBest = score
		}
	}

	if best == nil {
		return nil
	}
	if bestScore < ScoreThreshold {
		return nil
	}
	if bestScore-secondBest < ScoreMargin {
		return nil
	}
	return best
}

// FindTransaction returns the transaction that most likely belongs to the
// attachment, or nil. Same rules as FindAttachment with the roles swapped.
func (m *MatchEngine) FindTransaction(att *models.Attachment, transactions []*models.Transaction) *models.Transaction {
	attRef, hasAttRef := attachmentReference(att)

	if hasAttRef {
		var refMatches []*models.Transaction
		for _, tx := range transactions {
			txRef, ok := transactionReference(tx)
			if !ok {
				continue
			}
			if txRef == attRef {
				refMatches = append(refMatches, tx)
			}
		}
		if len(refMatches) == 1 {
			return refMatches[0]
		}
		if len(refMatches) > 1 {
			return nil
		}
	}

	var best *models.Transaction
	var bestScore, secondBest float64

	for _, tx := range transactions {
		_, hasTxRef := transactionReference(tx)
		if hasAttRef || hasTxRef {
			continue
		}

		score := m.MatchScore(tx, att)
		if score > bestScore {
			secondBest = bestScore
			bestScore = score
			best = tx
		} else if score > secondBest {
			secondBest = score
		}
	}

	if best == nil {
		return nil
	}
	if bestScore < ScoreThreshold {
		return nil
	}
	if bestScore-secondBest < ScoreMargin {
		return nil
	}
	return best
}

// ReferenceEqual reports whether both records carry a usable reference and
// the normalized values are equal. Used by callers to label how a pair was
// linked.
func (m *MatchEngine) ReferenceEqual(tx *models.Transaction, att *models.Attachment) bool {
	txRef, ok := transactionReference(tx)
	if !ok {
		return false
	}
	attRef, ok := attachmentReference(att)
	if !ok {
		return false
	}
	return txRef == attRef
}
