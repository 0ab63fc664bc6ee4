package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey"`
	OwnerId     string          `gorm:"type:varchar(26);index;not null"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Subcategory string          `gorm:"type:varchar(100)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	CompanyTag  string          `gorm:"type:varchar(50)"`
	Comment     string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	oid, err := pkg.ParseULID(tdb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &transaction.Transaction{
		Id:          id,
		OwnerId:     oid,
		Kind:        analytics.Kind(tdb.Kind),
		Category:    tdb.Category,
		Subcategory: tdb.Subcategory,
		Amount:      tdb.Amount,
		Date:        tdb.Date,
		CompanyTag:  tdb.CompanyTag,
		Comment:     tdb.Comment,
		CreatedAt:   tdb.CreatedAt,
		UpdatedAt:   tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:          t.Id.String(),
		OwnerId:     t.OwnerId.String(),
		Kind:        string(t.Kind),
		Category:    t.Category,
		Subcategory: t.Subcategory,
		Amount:      t.Amount,
		Date:        t.Date,
		CompanyTag:  t.CompanyTag,
		Comment:     t.Comment,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(&tdb).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND owner_id = ?", tdb.Id, tdb.OwnerId).
		Updates(&tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", transactionID.String()).
		Delete(&transactionDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByIDAndOwner(ctx context.Context, transactionID, ownerID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND owner_id = ?", transactionID.String(), ownerID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) List(ctx context.Context, ownerID ulid.ULID, filter transaction.ListFilter, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions").
		Where("owner_id = ?", ownerID.String())

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.CompanyTag != "" {
		query = query.Where("company_tag = ?", filter.CompanyTag)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	rows, total, err := pkg.Paginate[transactionDB](query, pagination, "date DESC, id DESC")
	if err != nil {
		return nil, 0, err
	}

	transactions := make([]*transaction.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := toDomainTransaction(row)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	return transactions, total, nil
}

func (r *TransactionRepository) ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*transaction.Transaction, error) {
	query := r.DB.WithContext(ctx).Table("transactions").
		Where("owner_id = ?", ownerID.String()).
		Where("date BETWEEN ? AND ?", from, to)

	if companyTag != "" {
		query = query.Where("company_tag = ?", companyTag)
	}

	var rows []transactionDB
	if err := query.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	transactions := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
