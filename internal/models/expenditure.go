package models

import "time"

// ExpenditureSection groups categories into a top-level area of
// discretionary spending (e.g. kitchen, maintenance).
type ExpenditureSection struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"uniqueIndex;not null"`
}

type ExpenditureCategory struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	SectionID uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
}

type Expenditure struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CategoryID  uint      `gorm:"index;not null"`
	Description string    `gorm:"type:text"`
	Amount      float64   `gorm:"type:decimal(12,2);not null"`
	SpentAt     time.Time `gorm:"index;not null"`
	// Free-form details (payee, receipt number, notes)
	Details JSON `gorm:"type:jsonb"`
}
