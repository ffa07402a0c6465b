package main

import (
	"errors"
	"log"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/pkg/logger"
)

// @title crediflow API
// @version 1.0
// @description Back-office portal for credit customers, utility bills, expenditure tracking and supplier invoices.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if _, err := database.Connect(cfg.DSN()); err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := database.ConnectRedis(cfg); err != nil {
		logger.Log.Fatal("failed to connect redis", zap.Error(err))
	}

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Permission{},
		&models.CreditCustomer{},
		&models.CreditBill{},
		&models.UtilityBill{},
		&models.ExpenditureSection{},
		&models.ExpenditureCategory{},
		&models.Expenditure{},
		&models.SupplierInvoice{},
	); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	seedModules()
	initAdminUser(cfg)

	reminder := services.NewReminderService(cfg.ReminderWindowDays, cfg.ReminderInterval)
	reminder.Start()
	defer reminder.Stop()

	router := api.NewRouter(cfg)
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}

// seedModules makes sure every gated module has a registry row. Keys
// are stable identifiers, names are what the frontend displays.
func seedModules() {
	modules := []models.Module{
		{Key: models.ModuleCredit, Name: "Credit To Come"},
		{Key: models.ModuleUtilities, Name: "Daily Expenditure Utilities"},
		{Key: models.ModuleExpenditure, Name: "Daily Expenditure Tracker"},
		{Key: models.ModuleSuppliers, Name: "GRN Credit Reminder"},
	}

	for _, m := range modules {
		var existing models.Module
		err := database.DB.Where("key = ?", m.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Fatal("failed to check module", zap.String("key", m.Key), zap.Error(err))
		}
		if err := database.DB.Create(&m).Error; err != nil {
			logger.Log.Fatal("failed to seed module", zap.String("key", m.Key), zap.Error(err))
		}
		logger.Log.Info("module seeded", zap.String("key", m.Key))
	}
}

func initAdminUser(cfg *config.Config) {
	var admin models.User
	err := database.DB.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	if err == nil {
		logger.Log.Info("admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Fatal("failed to check for admin user", zap.Error(err))
	}

	if _, err := services.CreateUser("Administrator", cfg.AdminEmail, cfg.AdminPassword, models.RoleAdmin); err != nil {
		logger.Log.Fatal("failed to create admin user", zap.Error(err))
	}
	logger.Log.Info("admin user created", zap.String("email", cfg.AdminEmail))
}
