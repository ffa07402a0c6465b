package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("credit customer not found")
	ErrBillNotFound     = errors.New("bill not found")
	ErrBillAlreadyPaid  = errors.New("bill is already paid")
)

// CreditBillFilter defines criteria for filtering credit bills
type CreditBillFilter struct {
	CustomerID *uint
	Status     *models.BillStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

func CreateCreditCustomer(customer *models.CreditCustomer) error {
	return database.DB.Create(customer).Error
}

func FindCreditCustomers(page, limit int, activeOnly bool) ([]models.CreditCustomer, int64, error) {
	var customers []models.CreditCustomer
	var total int64

	query := database.DB.Model(&models.CreditCustomer{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func FindCreditCustomerByID(id uint) (models.CreditCustomer, error) {
	var customer models.CreditCustomer
	if err := database.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer, ErrCustomerNotFound
		}
		return customer, err
	}
	return customer, nil
}

func UpdateCreditCustomer(id uint, updates map[string]interface{}) (*models.CreditCustomer, error) {
	customer, err := FindCreditCustomerByID(id)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(&customer).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func DeleteCreditCustomer(id uint) error {
	result := database.DB.Delete(&models.CreditCustomer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// OutstandingBalance sums the customer's unpaid bills.
func OutstandingBalance(customerID uint) (float64, error) {
	var total float64
	err := database.DB.Model(&models.CreditBill{}).
		Where("customer_id = ? AND status = ?", customerID, models.BillStatusUnpaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func CreateCreditBill(bill *models.CreditBill) error {
	if _, err := FindCreditCustomerByID(bill.CustomerID); err != nil {
		return err
	}
	if bill.Status == "" {
		bill.Status = models.BillStatusUnpaid
	}
	return database.DB.Create(bill).Error
}

func FindCreditBills(filter CreditBillFilter) ([]models.CreditBill, int64, error) {
	var bills []models.CreditBill
	var total int64

	query := database.DB.Model(&models.CreditBill{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("bill_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("bill_date <= ?", *filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("bill_date desc").Limit(filter.Limit).Offset(offset).Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

func UpdateCreditBill(id uint, updates map[string]interface{}) (*models.CreditBill, error) {
	var bill models.CreditBill
	if err := database.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&bill).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// PayCreditBill marks a bill paid and stamps the payment time.
func PayCreditBill(id uint) (*models.CreditBill, error) {
	var bill models.CreditBill
	if err := database.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
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

func DeleteCreditBill(id uint) error {
	result := database.DB.Delete(&models.CreditBill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBillNotFound
	}
	return nil
}
