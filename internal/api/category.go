package api

import (
	"time"

	"expense-tracker/internal/model"
	"expense-tracker/internal/service"
)

// 建立時 name 必填；更新時省略的欄位維持原值
// swagger:model api.CategoryRequest
type CategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100" example:"Food"`
	Description *string `json:"description" validate:"omitempty,max=500" example:"Groceries and eating out"`
	Color       *string `json:"color" validate:"omitempty,max=7" example:"#e74c3c"`
}

func (r CategoryRequest) Input() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Description: r.Description, Color: r.Color}
}

// swagger:model api.CategoryResponse
type CategoryResponse struct {
	ID          int       `json:"id" example:"3"`
	UserID      int       `json:"user_id" example:"1"`
	Name        string    `json:"name" example:"Food"`
	Description string    `json:"description" example:"Groceries and eating out"`
	Color       string    `json:"color" example:"#e74c3c"`
	CreatedAt   time.Time `json:"created_at" example:"2024-01-01T15:04:05Z"`
}

func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCategoryList(list []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, NewCategoryResponse(&list[i]))
	}
	return out
}

// swagger:model api.CategoryMessageResponse
type CategoryMessageResponse struct {
	Message  string           `json:"message" example:"category created successfully"`
	Category CategoryResponse `json:"category"`
}

// swagger:model api.CategoryStatResponse
type CategoryStatResponse struct {
	ID           int     `json:"id" example:"3"`
	Name         string  `json:"name" example:"Food"`
	Color        string  `json:"color" example:"#e74c3c"`
	TotalSpent   float64 `json:"total_spent" example:"152.4"`
	ExpenseCount int     `json:"expense_count" example:"7"`
}

func NewCategoryStats(stats []model.CategoryStat) []CategoryStatResponse {
	out := make([]CategoryStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, CategoryStatResponse{
			ID:           s.ID,
			Name:         s.Name,
			Color:        s.Color,
			TotalSpent:   money(s.TotalSpent),
			ExpenseCount: s.ExpenseCount,
		})
	}
	return out
}
