package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ShakeelGadafi/crediflow-sub000/pkg/logger"
)

// ReminderService periodically scans for supplier invoices approaching
// their due date and logs a reminder for each. The scan is read-only;
// the calendar feed and the due endpoint expose the same data on
// demand.
type ReminderService struct {
	mu         sync.Mutex
	windowDays int
	interval   time.Duration
	stopChan   chan struct{}
	running    bool
}

func NewReminderService(windowDays int, interval time.Duration) *ReminderService {
	return &ReminderService{
		windowDays: windowDays,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start launches the scan loop. Safe to call once; later calls are
// no-ops.
func (rs *ReminderService) Start() {
	rs.mu.Lock()
	if rs.running {
		rs.mu.Unlock()
		return
	}
	rs.running = true
	rs.mu.Unlock()

	go func() {
		ticker := time.NewTicker(rs.interval)
		defer ticker.Stop()

		rs.scan()
		for {
			select {
			case <-ticker.C:
				rs.scan()
			case <-rs.stopChan:
				return
			}
		}
	}()
}

func (rs *ReminderService) Stop() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.running {
		close(rs.stopChan)
		rs.running = false
	}
}

func (rs *ReminderService) scan() {
	now := time.Now()
	invoices, err := FindInvoicesDueWithin(rs.windowDays, now)
	if err != nil {
		if logger.Log != nil {
			logger.Log.Error("reminder scan failed", zap.Error(err))
		}
		return
	}

	for _, inv := range invoices {
		remaining := inv.DaysRemaining(now)
		if logger.Log == nil {
			continue
		}
		if remaining < 0 {
			logger.Log.Warn("supplier invoice overdue",
				zap.Uint("invoice_id", inv.ID),
				zap.String("supplier", inv.Supplier),
				zap.String("grn", inv.GRNNumber),
				zap.Int("days_overdue", -remaining),
			)
		} else {
			logger.Log.Info("supplier invoice due soon",
				zap.Uint("invoice_id", inv.ID),
				zap.String("supplier", inv.Supplier),
				zap.String("grn", inv.GRNNumber),
				zap.Int("days_remaining", remaining),
			)
		}
	}
}
