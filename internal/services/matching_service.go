package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/matching"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/models"
	"github.com/iamnomankazi/nocfo-homework-assignment-ai-engineer/internal/repositories"
)

// MatchingService runs the matching engine over stored records. Results are
// reported back to the caller and never persisted.
type MatchingService struct {
	engine          *matching.MatchEngine
	transactionRepo repositories.TransactionRepository
	attachmentRepo  repositories.AttachmentRepository
}

func NewMatchingService(
	engine *matching.MatchEngine,
	transactionRepo repositories.TransactionRepository,
	attachmentRepo repositories.AttachmentRepository,
) *MatchingService {
	return &MatchingService{
		engine:          engine,
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
	}
}

// Matched-by labels in a reconciliation report
const (
	MatchedByReference = "reference"
	MatchedByScore     = "score"
)

type MatchPair struct {
	Transaction *models.Transaction `json:"transaction"`
	Attachment  *models.Attachment  `json:"attachment"`
	MatchedBy   string              `json:"matched_by"`
	Score       float64             `json:"score,omitempty"`
}

type ReconciliationResult struct {
	RunID                 string                 `json:"run_id"`
	FromDate              string                 `json:"from_date"`
	ToDate                string                 `json:"to_date"`
	Matches               []*MatchPair           `json:"matches"`
	UnmatchedTransactions []*models.Transaction  `json:"unmatched_transactions,omitempty"`
	UnmatchedAttachments  []*models.Attachment   `json:"unmatched_attachments,omitempty"`
	Summary               map[string]interface{} `json:"summary"`
}

// Reconcile pairs every transaction in the date range with its most likely
// attachment. Each transaction is matched independently, so the outcome does
// not depend on processing order.
func (s *MatchingService) Reconcile(fromDate, toDate string, transactions []*models.Transaction, attachments []*models.Attachment) *ReconciliationResult {
	result := &ReconciliationResult{
		RunID:    uuid.NewString(),
		FromDate: fromDate,
		ToDate:   toDate,
	}

	matchedAttachmentIDs := make(map[int64]bool)

	for _, tx := range transactions {
		att := s.engine.FindAttachment(tx, attachments)
		if att == nil {
			result.UnmatchedTransactions = append(result.UnmatchedTransactions, tx)
			continue
		}

		pair := &MatchPair{
			Transaction: tx,
			Attachment:  att,
		}
		if s.engine.ReferenceEqual(tx, att) {
			pair.MatchedBy = MatchedByReference
		} else {
			pair.MatchedBy = MatchedByScore
			pair.Score = s.engine.MatchScore(tx, att)
		}

		result.Matches = append(result.Matches, pair)
		matchedAttachmentIDs[att.ID] = true
	}

	for _, att := range attachments {
		if !matchedAttachmentIDs[att.ID] {
			result.UnmatchedAttachments = append(result.UnmatchedAttachments, att)
		}
	}

	result.Summary = map[string]interface{}{
		"total_transactions":     len(transactions),
		"total_attachments":      len(attachments),
		"matched":                len(result.Matches),
		"unmatched_transactions": len(result.UnmatchedTransactions),
		"unmatched_attachments":  len(result.UnmatchedAttachments),
	}

	return result
}

// GetTransactions loads the transactions for a reconciliation run.
func (s *MatchingService) GetTransactions(fromDate, toDate string) ([]*models.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactions(fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %v", err)
	}
	return transactions, nil
}

// GetAttachments loads the attachments for a reconciliation run.
func (s *MatchingService) GetAttachments(fromDate, toDate string) ([]*models.Attachment, error) {
	attachments, err := s.attachmentRepo.GetAttachments(fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachments: %v", err)
	}
	return attachments, nil
}

// FindAttachmentFor finds the best attachment for a single stored
// transaction, scanning all stored attachments.
func (s *MatchingService) FindAttachmentFor(transactionID string) (*models.Attachment, error) {
	tx, err := s.transactionRepo.GetTransactionByTransactionID(transactionID)
	if err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.GetAllAttachments()
	if err != nil {
		return nil, fmt.Errorf("failed to get attachments: %v", err)
	}

	return s.engine.FindAttachment(tx, attachments), nil
}

// FindTransactionFor finds the best transaction for a single stored
// attachment, scanning all stored transactions.
func (s *MatchingService) FindTransactionFor(attachmentID string) (*models.Transaction, error) {
	att, err := s.attachmentRepo.GetAttachmentByAttachmentID(attachmentID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetAllTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %v", err)
	}

	return s.engine.FindTransaction(att, transactions), nil
}
