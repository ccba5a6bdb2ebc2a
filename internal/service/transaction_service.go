package service

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

// TransactionService loads every transaction variant and answers lookups over
// the last successful load.
type TransactionService struct {
	loader *loader

	mu         sync.RWMutex
	index      *recordIndex[model.Transaction]
	categories map[model.ID][]storage.CategoryAssignment
	refunds    map[model.ID]model.ID
	tags       map[model.ID][]model.ID
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(source storage.IRecordSource, pool *operator.OperatorDelegator, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		loader: &loader{source: source, pool: pool, logger: logger},
		index:  newRecordIndex[model.Transaction](nil, byOccurredAt),
	}
}

func transactionTypenames() []string {
	kinds := model.TransactionKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// Load decodes every transaction row and the category, refund and tag links.
// The previous load stays visible until the new one is complete.
func (s *TransactionService) Load(ctx context.Context) (*LoadReport, error) {
	entities, report, err := s.loader.load(ctx, "Transaction", transactionTypenames())
	if err != nil {
		return nil, err
	}

	source := s.loader.source
	categories, err := source.CategoryAssignments(ctx)
	if err != nil {
		return nil, err
	}
	refunds, err := source.RefundMap(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := source.TagsMap(ctx)
	if err != nil {
		return nil, err
	}

	index := newRecordIndex(entitiesAs[model.Transaction](entities), byOccurredAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = index
	s.categories = categories
	s.refunds = refunds
	s.tags = tags

	return report, nil
}

func byOccurredAt(a, b model.Transaction) int {
	if c := a.Common().OccurredAt.Compare(b.Common().OccurredAt); c != 0 {
		return c
	}
	return cmp.Compare(a.RecordID(), b.RecordID())
}

func (s *TransactionService) Get(id model.ID) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.get(id)
}

func (s *TransactionService) GetByGID(gid string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.getByGID(gid)
}

// All returns the transactions that occurred at or before until, oldest
// first. A zero until returns everything.
func (s *TransactionService) All(until time.Time) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.filter(func(tx model.Transaction) bool {
		return occurredBy(tx, until)
	})
}

// AllForAccount is All restricted to transactions booked on account.
func (s *TransactionService) AllForAccount(account model.ID, until time.Time) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.filter(func(tx model.Transaction) bool {
		scoped, ok := tx.(model.AccountScoped)
		return ok && scoped.AccountID() == account && occurredBy(tx, until)
	})
}

func occurredBy(tx model.Transaction, until time.Time) bool {
	return until.IsZero() || !tx.Common().OccurredAt.After(until)
}

// CategoriesFor returns the category splits of a transaction.
func (s *TransactionService) CategoriesFor(id model.ID) []storage.CategoryAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories[id]
}

// TagsFor returns the tag ids attached to a transaction.
func (s *TransactionService) TagsFor(id model.ID) []model.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tags[id]
}

// OriginalTransactionForRefund returns the id of the withdraw a refund
// refunds.
func (s *TransactionService) OriginalTransactionForRefund(id model.ID) (model.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	withdraw, ok := s.refunds[id]
	return withdraw, ok
}
