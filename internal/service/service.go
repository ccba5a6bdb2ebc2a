package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/moneywiz-decoder/internal/operator"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

// Service holds all record services.
type Service struct {
	Group       *GroupService
	Holding     *HoldingService
	Transaction *TransactionService
}

// NewService creates the record services over one source and decode pool.
func NewService(source storage.IRecordSource, pool *operator.OperatorDelegator, logger *logrus.Logger) *Service {
	return &Service{
		Group:       NewGroupService(source, pool, logger),
		Holding:     NewHoldingService(source, pool, logger),
		Transaction: NewTransactionService(source, pool, logger),
	}
}

// Load loads groups, holdings and transactions in that order and returns one
// report per service. It stops at the first storage error.
func (s *Service) Load(ctx context.Context) ([]*LoadReport, error) {
	loads := []func(context.Context) (*LoadReport, error){
		s.Group.Load,
		s.Holding.Load,
		s.Transaction.Load,
	}

	reports := make([]*LoadReport, 0, len(loads))
	for _, load := range loads {
		report, err := load(ctx)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
