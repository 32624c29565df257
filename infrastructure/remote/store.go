// Package remote is the hosted-database implementation of the check-in
// table: GORM over Postgres for the rows, LISTEN/NOTIFY for the change
// feed (see migrations/schema.sql for the trigger).
package remote

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tmht.org/checkin/core"
	"tmht.org/checkin/model"
	"tmht.org/checkin/utils"
)

// Every store call gets this deadline; nothing in the application retries,
// so a slow network turns into a surfaced error rather than a hang.
const requestTimeout = 10 * time.Second

type Store struct {
	db  *gorm.DB
	dsn string
}

// Open connects to the hosted database. The pool is kept small; a handful
// of volunteer devices is the whole user base.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to remote database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) withTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	return s.db.WithContext(ctx), cancel
}

func (s *Store) Insert(ctx context.Context, in model.RecordInput) (*model.Record, error) {
	row := model.RowFromInput(in)
	db, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}
	rec := row.ToRecord()
	return &rec, nil
}

func (s *Store) FindByCode(ctx context.Context, code string) (*model.Record, error) {
	n, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		// a non-numeric code can never match a remote row
		return nil, nil
	}

	db, cancel := s.withTimeout(ctx)
	defer cancel()

	var row model.CheckInRow
	result := db.Where("pickup_code = ?", n).Limit(1).Find(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	rec := row.ToRecord()
	return &rec, nil
}

// Release stamps pick_up_time on the row with the given id. A zero-row
// update is reported as a nil record so the repository can fall back to
// the local copy.
func (s *Store) Release(ctx context.Context, id string, at time.Time) (*model.Record, error) {
	db, cancel := s.withTimeout(ctx)
	defer cancel()

	result := db.Model(&model.CheckInRow{}).Where("id = ?", id).Update("pick_up_time", at)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var row model.CheckInRow
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	rec := row.ToRecord()
	return &rec, nil
}

// UpdateServiceTime rewrites service_time on the row with the given id,
// with the same zero-row-means-nil contract as Release.
func (s *Store) UpdateServiceTime(ctx context.Context, id, serviceTime string) (*model.Record, error) {
	db, cancel := s.withTimeout(ctx)
	defer cancel()

	var value interface{}
	if serviceTime != "" {
		value = serviceTime
	}
	result := db.Model(&model.CheckInRow{}).Where("id = ?", id).Update("service_time", value)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var row model.CheckInRow
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	rec := row.ToRecord()
	return &rec, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	db, cancel := s.withTimeout(ctx)
	defer cancel()

	result := db.Where("id = ?", id).Delete(&model.CheckInRow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) ListAll(ctx context.Context) ([]model.Record, error) {
	db, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows []model.CheckInRow
	if err := db.Order("check_in_time DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return utils.Map(rows, model.CheckInRow.ToRecord), nil
}

// Subscribe opens the LISTEN/NOTIFY channel for the check-in table.
func (s *Store) Subscribe(onChange func()) (*core.Subscription, error) {
	return listen(s.dsn, onChange)
}
