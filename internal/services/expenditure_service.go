package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

var (
	ErrSectionNotFound     = errors.New("expenditure section not found")
	ErrCategoryNotFound    = errors.New("expenditure category not found")
	ErrExpenditureNotFound = errors.New("expenditure not found")
	ErrSectionNotEmpty     = errors.New("section still has categories")
	ErrCategoryNotEmpty    = errors.New("category still has expenditures")
)

// ExpenditureFilter defines criteria for filtering expenditures
type ExpenditureFilter struct {
	SectionID  *uint
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

func CreateSection(section *models.ExpenditureSection) error {
	return database.DB.Create(section).Error
}

func FindSections() ([]models.ExpenditureSection, error) {
	var sections []models.ExpenditureSection
	if err := database.DB.Order("name").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func UpdateSection(id uint, name string) (*models.ExpenditureSection, error) {
	var section models.ExpenditureSection
	if err := database.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&section).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func DeleteSection(id uint) error {
	var count int64
	if err := database.DB.Model(&models.ExpenditureCategory{}).Where("section_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSectionNotEmpty
	}

	result := database.DB.Delete(&models.ExpenditureSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func CreateCategory(category *models.ExpenditureCategory) error {
	var section models.ExpenditureSection
	if err := database.DB.First(&section, category.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}
	return database.DB.Create(category).Error
}

func FindCategories(sectionID *uint) ([]models.ExpenditureCategory, error) {
	var categories []models.ExpenditureCategory
	query := database.DB.Order("name")
	if sectionID != nil {
		query = query.Where("section_id = ?", *sectionID)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func DeleteCategory(id uint) error {
	var count int64
	if err := database.DB.Model(&models.Expenditure{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}

	result := database.DB.Delete(&models.ExpenditureCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func CreateExpenditure(exp *models.Expenditure) error {
	var category models.ExpenditureCategory
	if err := database.DB.First(&category, exp.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return database.DB.Create(exp).Error
}

func FindExpenditures(filter ExpenditureFilter) ([]models.Expenditure, int64, error) {
	var expenditures []models.Expenditure
	var total int64

	query := database.DB.Model(&models.Expenditure{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	} else if filter.SectionID != nil {
		query = query.Where("category_id IN (?)",
			database.DB.Model(&models.ExpenditureCategory{}).
				Select("id").
				Where("section_id = ?", *filter.SectionID))
	}
	if filter.StartDate != nil {
		query = query.Where("spent_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("spent_at <= ?", *filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("spent_at desc").Limit(filter.Limit).Offset(offset).Find(&expenditures).Error; err != nil {
		return nil, 0, err
	}

	return expenditures, total, nil
}

func UpdateExpenditure(id uint, updates map[string]interface{}) (*models.Expenditure, error) {
	var exp models.Expenditure
	if err := database.DB.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenditureNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&exp).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func DeleteExpenditure(id uint) error {
	result := database.DB.Delete(&models.Expenditure{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpenditureNotFound
	}
	return nil
}
