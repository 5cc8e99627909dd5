package api

import (
	"time"

	"expense-tracker/internal/model"
	"expense-tracker/internal/service"

	"github.com/shopspring/decimal"
)

// amount 可為數字或字串；categoryId 為 category_id 的別名
// swagger:model api.ExpenseRequest
type ExpenseRequest struct {
	CategoryID      *int             `json:"category_id" example:"3"`
	CategoryIDAlias *int             `json:"categoryId" swaggerignore:"true"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"number" example:"12.5"`
	Description     string           `json:"description" validate:"max=500" example:"Lunch"`
	Date            string           `json:"date" example:"2024-01-01"`
}

func (r ExpenseRequest) Input() service.ExpenseInput {
	in := service.ExpenseInput{Description: r.Description, Date: r.Date}
	switch {
	case r.CategoryID != nil:
		in.CategoryID = *r.CategoryID
	case r.CategoryIDAlias != nil:
		in.CategoryID = *r.CategoryIDAlias
	}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	return in
}

// swagger:model api.ExpenseResponse
type ExpenseResponse struct {
	ID            int       `json:"id" example:"7"`
	UserID        int       `json:"user_id" example:"1"`
	CategoryID    int       `json:"category_id" example:"3"`
	Amount        float64   `json:"amount" example:"12.5"`
	Description   string    `json:"description" example:"Lunch"`
	Date          string    `json:"date" example:"2024-01-01"`
	CreatedAt     time.Time `json:"created_at" example:"2024-01-01T15:04:05Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-01-01T15:04:05Z"`
	CategoryName  string    `json:"category_name" example:"Food"`
	CategoryColor string    `json:"category_color" example:"#e74c3c"`
}

func NewExpenseResponse(e *model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		CategoryID:    e.CategoryID,
		Amount:        money(e.Amount),
		Description:   e.Description,
		Date:          e.Date.Format(service.DateLayout),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		CategoryName:  e.CategoryName,
		CategoryColor: e.CategoryColor,
	}
}

// swagger:model api.ExpenseMessageResponse
type ExpenseMessageResponse struct {
	Message string          `json:"message" example:"expense created successfully"`
	Expense ExpenseResponse `json:"expense"`
}

// swagger:model api.PaginationResponse
type PaginationResponse struct {
	CurrentPage  int `json:"currentPage" example:"1"`
	TotalPages   int `json:"totalPages" example:"3"`
	TotalItems   int `json:"totalItems" example:"25"`
	ItemsPerPage int `json:"itemsPerPage" example:"10"`
}

// swagger:model api.ExpenseListResponse
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

func NewExpenseList(list []model.Expense, p model.Pagination) ExpenseListResponse {
	out := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(list)),
		Pagination: PaginationResponse{
			CurrentPage:  p.CurrentPage,
			TotalPages:   p.TotalPages,
			TotalItems:   p.TotalItems,
			ItemsPerPage: p.ItemsPerPage,
		},
	}
	for i := range list {
		out.Expenses = append(out.Expenses, NewExpenseResponse(&list[i]))
	}
	return out
}
