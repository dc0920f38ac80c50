package db

import (
	"context"
	"time"

	"retailpos/internal/domain/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres database behind dsn and migrates the POS tables.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse database url")
	}
	connCfg.ConnectTimeout = 10 * time.Second

	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(4)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "open gorm")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	if err := Migrate(ctx, gormDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}

// Migrate creates or updates the products, sales and sale_items tables.
func Migrate(ctx context.Context, gormDB *gorm.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}

// Close releases the pool behind gormDB.
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
