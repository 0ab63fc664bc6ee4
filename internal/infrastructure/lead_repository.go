package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type LeadRepository struct {
	DB *gorm.DB
}

var _ lead.Repository = (*LeadRepository)(nil)

type leadDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId    string    `gorm:"type:varchar(26);index;not null"`
	Name       string    `gorm:"type:varchar(150)"`
	Source     string    `gorm:"type:varchar(100);not null"`
	Status     string    `gorm:"type:varchar(15);not null"`
	CompanyTag string    `gorm:"type:varchar(50)"`
	Date       time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func toDomainLead(ldb *leadDB) (*lead.Lead, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, err
	}
	oid, err := pkg.ParseULID(ldb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &lead.Lead{
		Id:         id,
		OwnerId:    oid,
		Name:       ldb.Name,
		Source:     ldb.Source,
		Status:     lead.Status(ldb.Status),
		CompanyTag: ldb.CompanyTag,
		Date:       ldb.Date,
		CreatedAt:  ldb.CreatedAt,
		UpdatedAt:  ldb.UpdatedAt,
	}, nil
}

func toDBLead(l *lead.Lead) *leadDB {
	return &leadDB{
		Id:         l.Id.String(),
		OwnerId:    l.OwnerId.String(),
		Name:       l.Name,
		Source:     l.Source,
		Status:     string(l.Status),
		CompanyTag: l.CompanyTag,
		Date:       l.Date,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	ldb := toDBLead(l)
	return r.DB.WithContext(ctx).Table("leads").Create(&ldb).Error
}

func (r *LeadRepository) Update(ctx context.Context, l *lead.Lead) error {
	ldb := toDBLead(l)
	return r.DB.WithContext(ctx).Table("leads").
		Where("id = ? AND owner_id = ?", ldb.Id, ldb.OwnerId).
		Updates(&ldb).Error
}

func (r *LeadRepository) Delete(ctx context.Context, leadID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("leads").
		Where("id = ?", leadID.String()).
		Delete(&leadDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LeadRepository) GetByIDAndOwner(ctx context.Context, leadID, ownerID ulid.ULID) (*lead.Lead, error) {
	var ldb leadDB
	err := r.DB.WithContext(ctx).Table("leads").
		Where("id = ? AND owner_id = ?", leadID.String(), ownerID.String()).
		First(&ldb).Error
	if err != nil {
		return nil, err
	}
	return toDomainLead(&ldb)
}

func (r *LeadRepository) List(ctx context.Context, ownerID ulid.ULID, companyTag string, status lead.Status, pagination *pkg.PaginationParams) ([]*lead.Lead, int64, error) {
	query := r.DB.WithContext(ctx).Table("leads").
		Where("owner_id = ?", ownerID.String())
	if companyTag != "" {
		query = query.Where("company_tag = ?", companyTag)
	}
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	rows, total, err := pkg.Paginate[leadDB](query, pagination, "date DESC, id DESC")
	if err != nil {
		return nil, 0, err
	}

	leads := make([]*lead.Lead, 0, len(rows))
	for _, row := range rows {
		l, err := toDomainLead(row)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}
	return leads, total, nil
}

func (r *LeadRepository) ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*lead.Lead, error) {
	query := r.DB.WithContext(ctx).Table("leads").
		Where("owner_id = ?", ownerID.String()).
		Where("date BETWEEN ? AND ?", from, to)
	if companyTag != "" {
		query = query.Where("company_tag = ?", companyTag)
	}

	var rows []leadDB
	if err := query.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	leads := make([]*lead.Lead, 0, len(rows))
	for i := range rows {
		l, err := toDomainLead(&rows[i])
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}
