package expense

import (
	"context"
	"database/sql"
	"time"

	"staff-tracker/internal/shared/datekey"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Expense) error
	FindAll(ctx context.Context) ([]Expense, error)
	FindByID(ctx context.Context, id string) (*Expense, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Expense, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Expense, error) {
	var rows []Expense
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByDateRange(ctx context.Context, from, to time.Time) ([]Expense, error) {
	var rows []Expense
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date BETWEEN ? AND ?", from.Format(datekey.Layout), to.Format(datekey.Layout)).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
