package expenditure

import (
	"time"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

type SectionRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryRequest struct {
	SectionID uint   `json:"section_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

type CreateExpenditureRequest struct {
	CategoryID  uint        `json:"category_id" binding:"required"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount" binding:"required,gt=0"`
	SpentAt     string      `json:"spent_at"`
	Details     models.JSON `json:"details"`
}

type UpdateExpenditureRequest struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	SpentAt     *string  `json:"spent_at,omitempty"`
}

type ExpenditureResponse struct {
	ID          uint        `json:"id"`
	CategoryID  uint        `json:"category_id"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	SpentAt     time.Time   `json:"spent_at"`
	Details     models.JSON `json:"details,omitempty"`
}
