package api_key

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
)

// fakeStore is an in-memory Store. Setting err makes every call fail with it.
type fakeStore struct {
	mu     sync.Mutex
	rows   map[string]models.APIKeyRow
	nextID int
	err    error
	calls  map[string]int

	lastInsert models.APIKeyColumns
	lastUpdate models.APIKeyColumns
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:  make(map[string]models.APIKeyRow),
		calls: make(map[string]int),
	}
}

func (s *fakeStore) record(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
	return s.err
}

func (s *fakeStore) callCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *fakeStore) ListNewestFirst(ctx context.Context) ([]models.APIKeyRow, error) {
	if err := s.record("ListNewestFirst"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]models.APIKeyRow, 0, len(s.rows))
	for _, row := range s.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (*models.APIKeyRow, error) {
	if err := s.record("GetByID"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, ErrAPIKeyNotFound
	}
	return &row, nil
}

func (s *fakeStore) FindIDByKey(ctx context.Context, key string) (string, error) {
	if err := s.record("FindIDByKey"); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range s.rows {
		if row.Key == key {
			return id, nil
		}
	}
	return "", ErrAPIKeyNotFound
}

func (s *fakeStore) Insert(ctx context.Context, columns models.APIKeyColumns) (string, error) {
	if err := s.record("Insert"); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := "key-" + string(rune('0'+s.nextID))
	row := models.APIKeyRow{ID: id, CreatedAt: time.Now().Add(time.Duration(s.nextID) * time.Second)}
	applyColumns(&row, columns)
	s.rows[id] = row
	s.lastInsert = columns
	return id, nil
}

func (s *fakeStore) UpdateByID(ctx context.Context, id string, columns models.APIKeyColumns) (int64, error) {
	if err := s.record("UpdateByID"); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUpdate = columns
	row, ok := s.rows[id]
	if !ok {
		return 0, nil
	}
	applyColumns(&row, columns)
	s.rows[id] = row
	return 1, nil
}

func (s *fakeStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	if err := s.record("DeleteByID"); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func applyColumns(row *models.APIKeyRow, columns models.APIKeyColumns) {
	for k, v := range columns {
		switch k {
		case "name":
			row.Name = v.(string)
		case "key":
			row.Key = v.(string)
		case "type":
			row.Type = models.APIKeyType(v.(string))
		case "usage":
			row.Usage = ptr(v.(int64))
		case "monthly_usage_limit":
			if v == nil {
				row.MonthlyUsageLimit = nil
			} else {
				row.MonthlyUsageLimit = ptr(v.(int))
			}
		case "limit_monthly_usage":
			row.LimitMonthlyUsage = ptr(v.(bool))
		case "pii_restrictions":
			row.PIIRestrictions = ptr(v.(bool))
		}
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.APIKeyEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event models.APIKeyEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}
