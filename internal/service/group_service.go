package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator"
	"github.com/carson-networks/moneywiz-decoder/internal/storage"
)

// GroupService loads account groups.
type GroupService struct {
	loader *loader

	mu     sync.RWMutex
	index  *recordIndex[model.Group]
	logins map[model.ID]string
}

func NewGroupService(source storage.IRecordSource, pool *operator.OperatorDelegator, logger *logrus.Logger) *GroupService {
	return &GroupService{
		loader: &loader{source: source, pool: pool, logger: logger},
		index:  newRecordIndex[model.Group](nil, byRecordID),
	}
}

// Load decodes every group and the user logins that own them.
func (s *GroupService) Load(ctx context.Context) (*LoadReport, error) {
	entities, report, err := s.loader.load(ctx, "Group", []string{model.EntityGroup})
	if err != nil {
		return nil, err
	}
	logins, err := s.loader.source.Users(ctx)
	if err != nil {
		return nil, err
	}

	index := newRecordIndex(entitiesAs[model.Group](entities), byRecordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = index
	s.logins = logins

	return report, nil
}

func (s *GroupService) Get(id model.ID) (model.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.get(id)
}

// GetByGroupID returns the first group, by id, carrying groupID.
func (s *GroupService) GetByGroupID(groupID int64) (model.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.index.filter(func(g model.Group) bool {
		return g.GroupID != nil && *g.GroupID == groupID
	})
	if len(matches) == 0 {
		return model.Group{}, false
	}
	return matches[0], true
}

// OwnerLogin returns the sync login of the user owning g.
func (s *GroupService) OwnerLogin(g model.Group) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	login, ok := s.logins[g.User]
	return login, ok
}

func (s *GroupService) All() []model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.filter(func(model.Group) bool { return true })
}
