package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

// HoldingService loads investment holdings.
type HoldingService struct {
	loader *loader

	mu    sync.RWMutex
	index *recordIndex[model.InvestmentHolding]
}

func NewHoldingService(source storage.IRecordSource, pool *operator.OperatorDelegator, logger *logrus.Logger) *HoldingService {
	return &HoldingService{
		loader: &loader{source: source, pool: pool, logger: logger},
		index:  newRecordIndex[model.InvestmentHolding](nil, byRecordID),
	}
}

func (s *HoldingService) Load(ctx context.Context) (*LoadReport, error) {
	entities, report, err := s.loader.load(ctx, "Holding", []string{model.EntityInvestmentHolding})
	if err != nil {
		return nil, err
	}

	index := newRecordIndex(entitiesAs[model.InvestmentHolding](entities), byRecordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = index

	return report, nil
}

func (s *HoldingService) Get(id model.ID) (model.InvestmentHolding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.get(id)
}

func (s *HoldingService) GetByGID(gid string) (model.InvestmentHolding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.getByGID(gid)
}

// All returns every holding ordered by id.
func (s *HoldingService) All() []model.InvestmentHolding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.filter(func(model.InvestmentHolding) bool { return true })
}

// ForAccount returns the holdings of one investment account.
func (s *HoldingService) ForAccount(account model.ID) []model.InvestmentHolding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.filter(func(h model.InvestmentHolding) bool { return h.Account == account })
}
