// Package db persists deployment history to MySQL through gorm. The history
// is operational, not authoritative: orchestration proceeds even when a write
// fails, and failed sync records exist so an operator can replay them.
package db

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/trivaneio/trivane-contracts/models"
	"github.com/trivaneio/trivane-contracts/utils/core"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

type Config struct {
	Host     string `env:"DATABASES_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DATABASES_PORT" envDefault:"3306"`
	User     string `env:"DATABASES_USER"`
	Password string `env:"DATABASES_PASSWORD"`
	Name     string `env:"DATABASES_NAME" envDefault:"trivane"`
}

// ConfigFromEnv reads the DATABASES_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("database config: %w", err)
	}
	return cfg, nil
}

// Manager is the deployment history store.
type Manager interface {
	core.Recorder
	FailedSyncs(domain msg.ChainId) ([]models.SyncRecord, error)
}

type manager struct {
	db *gorm.DB
}

var _ Manager = (*manager)(nil)

// NewManager opens the MySQL connection and migrates the history tables.
func NewManager(cfg Config) (Manager, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=True",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.AutoMigrate(&models.Deployment{}, &models.SyncRecord{}); err != nil {
		return nil, fmt.Errorf("migrate history tables: %w", err)
	}

	return &manager{db: db}, nil
}

func (mgr *manager) RecordDeployment(domain msg.ChainId, asset common.Address, spec msg.AssetSpec, salt msg.Salt, remote bool) error {
	supply := "0"
	if spec.InitialSupply != nil {
		supply = spec.InitialSupply.String()
	}

	deployment := &models.Deployment{
		Domain: uint64(domain),
		Origin: uint64(spec.OriginDomainId),
		Asset:  asset.Hex(),
		Name:   spec.Name,
		Symbol: spec.Symbol,
		Supply: supply,
		Salt:   msg.Handle(salt).Hex(),
		Remote: remote,
	}

	return mgr.db.Create(deployment).Error
}

func (mgr *manager) RecordSync(source, dest msg.ChainId, handle msg.Handle, sent bool, memo string) error {
	status := models.SyncSent
	if !sent {
		status = models.SyncFailed
	}

	record := &models.SyncRecord{
		Status: status,
		Handle: handle.Hex(),
		Source: uint64(source),
		Dest:   uint64(dest),
		Memo:   memo,
	}

	return mgr.db.Create(record).Error
}

// FailedSyncs lists the destinations that never received their remote-deploy
// message from the given source domain.
func (mgr *manager) FailedSyncs(domain msg.ChainId) ([]models.SyncRecord, error) {
	var records []models.SyncRecord
	err := mgr.db.Where("source = ? AND status = ?", uint64(domain), models.SyncFailed).Find(&records).Error
	return records, err
}
