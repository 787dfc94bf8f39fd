package service

import (
	"fmt"
	"sync"

	"school-payments-api/internal/models"
)

// In-memory stores mirroring the repository contracts: Upsert is a single
// atomic replace keyed by collect_id, EnsureExists treats an identity
// collision as "already exists, proceed".

type memOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.Order

	schoolUpdates int
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: make(map[string]models.Order)}
}

func (m *memOrderStore) Create(order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(m.orders)+1)
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memOrderStore) FindByID(id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (m *memOrderStore) UpdateSchool(id, schoolID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order := m.orders[id]
	order.SchoolID = schoolID
	m.orders[id] = order
	m.schoolUpdates++
	return nil
}

func (m *memOrderStore) EnsureExists(order *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.orders[order.ID]; ok {
		return &existing, nil
	}
	m.orders[order.ID] = *order
	stored := m.orders[order.ID]
	return &stored, nil
}

type memStatusStore struct {
	mu       sync.Mutex
	statuses map[string]models.OrderStatus
	upserts  int
}

func newMemStatusStore() *memStatusStore {
	return &memStatusStore{statuses: make(map[string]models.OrderStatus)}
}

func (m *memStatusStore) Upsert(status *models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[status.CollectID] = *status
	m.upserts++
	return nil
}

func (m *memStatusStore) FindByCollectID(collectID string) (*models.OrderStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.statuses[collectID]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

type memLogStore struct {
	mu       sync.Mutex
	payloads []string
}

func (m *memLogStore) Append(payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, string(payload))
	return nil
}
