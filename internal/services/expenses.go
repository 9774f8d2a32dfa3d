package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
	"github.com/homemanager/homemanager/internal/validate"
)

// DefaultCategories is the stock expense category list.
var DefaultCategories = []string{
	"Food", "Transport", "Entertainment", "Shopping",
	"Bills", "Health", "Education", "Other",
}

// ExpenseService owns expenses and budgets. Budget.Spent is an independently
// maintained counter, deliberately not summed from the expense collection.
type ExpenseService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewExpenseService(s *store.Store, log zerolog.Logger) *ExpenseService {
	return &ExpenseService{store: s, log: log}
}

// Categories returns the known category names.
func (s *ExpenseService) Categories() []string { return DefaultCategories }

type CreateExpenseRequest struct {
	Amount        model.Cents
	Category      string
	Description   string
	Date          time.Time
	PaymentMethod *string
	Recurring     bool
	Tags          []string
}

func (s *ExpenseService) CreateExpense(req CreateExpenseRequest) (model.Expense, error) {
	if req.Amount < 0 {
		return model.Expense{}, invalid(errNegativeAmount)
	}
	if err := validate.NonEmpty("description", req.Description); err != nil {
		return model.Expense{}, invalid(err)
	}
	if err := validate.NonEmpty("category", req.Category); err != nil {
		return model.Expense{}, invalid(err)
	}
	rec := s.store.Expenses().Create(model.Expense{
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Recurring:     req.Recurring,
		Tags:          req.Tags,
	})
	s.log.Debug().Str("expense", rec.ID).Str("amount", rec.Amount.String()).Msg("expense recorded")
	return rec, nil
}

type UpdateExpenseRequest struct {
	Amount        *model.Cents
	Category      *string
	Description   *string
	Date          *time.Time
	PaymentMethod *string
	Recurring     *bool
	Tags          *[]string
}

func (s *ExpenseService) UpdateExpense(id string, req UpdateExpenseRequest) (model.Expense, error) {
	if req.Amount != nil && *req.Amount < 0 {
		return model.Expense{}, invalid(errNegativeAmount)
	}
	rec, ok := s.store.Expenses().Update(id, func(e model.Expense) model.Expense {
		if req.Amount != nil {
			e.Amount = *req.Amount
		}
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.PaymentMethod != nil {
			e.PaymentMethod = req.PaymentMethod
		}
		if req.Recurring != nil {
			e.Recurring = *req.Recurring
		}
		if req.Tags != nil {
			e.Tags = *req.Tags
		}
		return e
	})
	if !ok {
		return model.Expense{}, notFound("expense", id)
	}
	return rec, nil
}

func (s *ExpenseService) DeleteExpense(id string) error {
	if !s.store.Expenses().Delete(id) {
		return notFound("expense", id)
	}
	return nil
}

func (s *ExpenseService) Expenses() []model.Expense { return s.store.Expenses().Snapshot() }

type CreateBudgetRequest struct {
	Category string
	Limit    model.Cents
	Period   model.BudgetPeriod
}

// CreateBudget adds a budget. New budgets always start with nothing spent.
func (s *ExpenseService) CreateBudget(req CreateBudgetRequest) (model.Budget, error) {
	if err := validate.NonEmpty("category", req.Category); err != nil {
		return model.Budget{}, invalid(err)
	}
	if req.Limit <= 0 {
		return model.Budget{}, invalid(errNonPositiveLimit)
	}
	if err := validate.Enum("period", req.Period.Valid()); err != nil {
		return model.Budget{}, invalid(err)
	}
	rec := s.store.Budgets().Create(model.Budget{
		Category: req.Category,
		Limit:    req.Limit,
		Period:   req.Period,
		Spent:    0,
	})
	return rec, nil
}

type UpdateBudgetRequest struct {
	Category *string
	Limit    *model.Cents
	Period   *model.BudgetPeriod
	Spent    *model.Cents
}

func (s *ExpenseService) UpdateBudget(id string, req UpdateBudgetRequest) (model.Budget, error) {
	if req.Limit != nil && *req.Limit <= 0 {
		return model.Budget{}, invalid(errNonPositiveLimit)
	}
	if req.Spent != nil && *req.Spent < 0 {
		return model.Budget{}, invalid(errNegativeAmount)
	}
	if req.Period != nil {
		if err := validate.Enum("period", req.Period.Valid()); err != nil {
			return model.Budget{}, invalid(err)
		}
	}
	rec, ok := s.store.Budgets().Update(id, func(b model.Budget) model.Budget {
		if req.Category != nil {
			b.Category = *req.Category
		}
		if req.Limit != nil {
			b.Limit = *req.Limit
		}
		if req.Period != nil {
			b.Period = *req.Period
		}
		if req.Spent != nil {
			b.Spent = *req.Spent
		}
		return b
	})
	if !ok {
		return model.Budget{}, notFound("budget", id)
	}
	return rec, nil
}

func (s *ExpenseService) DeleteBudget(id string) error {
	if !s.store.Budgets().Delete(id) {
		return notFound("budget", id)
	}
	return nil
}

func (s *ExpenseService) Budgets() []model.Budget { return s.store.Budgets().Snapshot() }
