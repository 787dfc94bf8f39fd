package service

import (
	"errors"
	"fmt"

	"school-payments-api/internal/models"
)

// ErrTransactionNotFound is returned by the status point lookup when no
// record exists for the requested collect_id.
var ErrTransactionNotFound = errors.New("transaction not found")

const (
	defaultPage      = 1
	defaultLimit     = 10
	defaultSortField = "payment_time"
)

// TransactionStore runs the joined status+order queries. limit <= 0 means
// no limit; offset is never negative.
type TransactionStore interface {
	List(sortField, sortOrder string, offset, limit int) ([]models.Transaction, int64, error)
	ListBySchool(schoolID string) ([]models.Transaction, error)
}

// Pagination mirrors the page metadata block of the listing response.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

type Sort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

type TransactionPage struct {
	Data       []models.Transaction
	Pagination Pagination
	Sort       Sort
}

type TransactionService struct {
	transactions TransactionStore
	statuses     StatusStore
}

func NewTransactionService(transactions TransactionStore, statuses StatusStore) *TransactionService {
	return &TransactionService{transactions: transactions, statuses: statuses}
}

// List produces one page of the joined transaction view. Sorting happens
// over the full joined set before the page is cut, so page boundaries are
// stable for a fixed sort key. Out-of-range page or limit inputs are not
// rejected: a non-positive page clamps the skip to zero and a non-positive
// limit returns the full set.
func (s *TransactionService) List(page, limit int, sortField, sortOrder string) (*TransactionPage, error) {
	if page == 0 {
		page = defaultPage
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if sortField == "" {
		sortField = defaultSortField
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	skip := (page - 1) * limit
	if skip < 0 {
		skip = 0
	}

	data, total, err := s.transactions.List(sortField, sortOrder, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &TransactionPage{
		Data: data,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNext:      page < totalPages,
			HasPrev:      page > 1,
		},
		Sort: Sort{Field: sortField, Order: sortOrder},
	}, nil
}

// ListBySchool returns every transaction for one school, newest first,
// student info included. Deliberately unpaginated: the scoped endpoint's
// external contract returns the full matching set.
func (s *TransactionService) ListBySchool(schoolID string) ([]models.Transaction, error) {
	data, err := s.transactions.ListBySchool(schoolID)
	if err != nil {
		return nil, fmt.Errorf("list transactions for school %s: %w", schoolID, err)
	}
	return data, nil
}

// StatusSummary is the minimal projection of the point status lookup.
type StatusSummary struct {
	CollectID         string  `json:"collect_id"`
	Status            string  `json:"status"`
	OrderAmount       float64 `json:"order_amount"`
	TransactionAmount float64 `json:"transaction_amount"`
}

func (s *TransactionService) StatusByOrderID(customOrderID string) (*StatusSummary, error) {
	status, err := s.statuses.FindByCollectID(customOrderID)
	if err != nil {
		return nil, fmt.Errorf("find status %s: %w", customOrderID, err)
	}
	if status == nil {
		return nil, ErrTransactionNotFound
	}
	return &StatusSummary{
		CollectID:         status.CollectID,
		Status:            status.Status,
		OrderAmount:       status.OrderAmount,
		TransactionAmount: status.TransactionAmount,
	}, nil
}
