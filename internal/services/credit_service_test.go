package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func seedCustomer(t *testing.T, name string) models.CreditCustomer {
	t.Helper()

	customer := models.CreditCustomer{Name: name, Active: true}
	assert.NoError(t, services.CreateCreditCustomer(&customer))
	return customer
}

func TestOutstandingBalance(t *testing.T) {
	setupTestDB()
	customer := seedCustomer(t, "R. Perera")
	other := seedCustomer(t, "S. Silva")

	bills := []models.CreditBill{
		{CustomerID: customer.ID, Amount: 100, BillDate: date(2026, time.May, 1)},
		{CustomerID: customer.ID, Amount: 250.5, BillDate: date(2026, time.May, 3)},
		{CustomerID: customer.ID, Amount: 75, BillDate: date(2026, time.May, 5)},
		{CustomerID: other.ID, Amount: 999, BillDate: date(2026, time.May, 2)},
	}
	for i := range bills {
		assert.NoError(t, services.CreateCreditBill(&bills[i]))
	}

	// Paying a bill removes it from the balance.
	_, err := services.PayCreditBill(bills[2].ID)
	assert.NoError(t, err)

	balance, err := services.OutstandingBalance(customer.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 350.5, balance, 0.001)

	// A customer with no bills owes nothing.
	empty := seedCustomer(t, "Nobody")
	balance, err = services.OutstandingBalance(empty.ID)
	assert.NoError(t, err)
	assert.Zero(t, balance)
}

func TestPayCreditBill(t *testing.T) {
	setupTestDB()
	customer := seedCustomer(t, "R. Perera")

	bill := models.CreditBill{CustomerID: customer.ID, Amount: 100, BillDate: date(2026, time.May, 1)}
	assert.NoError(t, services.CreateCreditBill(&bill))
	assert.Equal(t, models.BillStatusUnpaid, bill.Status)

	paid, err := services.PayCreditBill(bill.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = services.PayCreditBill(bill.ID)
	assert.ErrorIs(t, err, services.ErrBillAlreadyPaid)
}

func TestCreateCreditBillUnknownCustomer(t *testing.T) {
	setupTestDB()

	bill := models.CreditBill{CustomerID: 99999, Amount: 50, BillDate: date(2026, time.May, 1)}
	assert.ErrorIs(t, services.CreateCreditBill(&bill), services.ErrCustomerNotFound)
}

func TestFindCreditBillsFilter(t *testing.T) {
	setupTestDB()
	customer := seedCustomer(t, "R. Perera")
	other := seedCustomer(t, "S. Silva")

	bills := []models.CreditBill{
		{CustomerID: customer.ID, Amount: 100, BillDate: date(2026, time.April, 10)},
		{CustomerID: customer.ID, Amount: 200, BillDate: date(2026, time.May, 10)},
		{CustomerID: other.ID, Amount: 300, BillDate: date(2026, time.May, 12)},
	}
	for i := range bills {
		assert.NoError(t, services.CreateCreditBill(&bills[i]))
	}
	_, err := services.PayCreditBill(bills[0].ID)
	assert.NoError(t, err)

	from := date(2026, time.May, 1)
	unpaid := models.BillStatusUnpaid

	found, total, err := services.FindCreditBills(services.CreditBillFilter{
		CustomerID: &customer.ID,
		Status:     &unpaid,
		StartDate:  &from,
		Page:       1,
		Limit:      20,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, found, 1)
	assert.InDelta(t, 200, found[0].Amount, 0.001)
}
