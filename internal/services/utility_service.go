package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

var ErrUtilityBillNotFound = errors.New("utility bill not found")

// UtilityBillFilter defines criteria for filtering utility bills
type UtilityBillFilter struct {
	Type      *models.UtilityType
	Status    *models.BillStatus
	BillMonth *string
	Page      int
	Limit     int
}

func CreateUtilityBill(bill *models.UtilityBill) error {
	if bill.Status == "" {
		bill.Status = models.BillStatusUnpaid
	}
	return database.DB.Create(bill).Error
}

func FindUtilityBills(filter UtilityBillFilter) ([]models.UtilityBill, int64, error) {
	var bills []models.UtilityBill
	var total int64

	query := database.DB.Model(&models.UtilityBill{})

	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.BillMonth != nil {
		query = query.Where("bill_month = ?", *filter.BillMonth)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("due_date desc").Limit(filter.Limit).Offset(offset).Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

func FindUtilityBillByID(id uint) (models.UtilityBill, error) {
	var bill models.UtilityBill
	if err := database.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bill, ErrUtilityBillNotFound
		}
		return bill, err
	}
	return bill, nil
}

func UpdateUtilityBill(id uint, updates map[string]interface{}) (*models.UtilityBill, error) {
	bill, err := FindUtilityBillByID(id)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(&bill).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func PayUtilityBill(id uint) (*models.UtilityBill, error) {
	bill, err := FindUtilityBillByID(id)
	if err != nil {
		return nil, err
	}
	if bill.Status == models.BillStatusPaid {
		return nil, ErrBillAlreadyPaid
	}

	now := time.Now()
	updates := map[string]interface{}{"status": models.BillStatusPaid, "paid_at": &now}
	if err := database.DB.Model(&bill).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func DeleteUtilityBill(id uint) error {
	result := database.DB.Delete(&models.UtilityBill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUtilityBillNotFound
	}
	return nil
}
