package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type CompanyRepository struct {
	DB *gorm.DB
}

var _ company.Repository = (*CompanyRepository)(nil)

type companyDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	OwnerId   string `gorm:"type:varchar(26);index;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Tag       string `gorm:"type:varchar(50);not null"`
	Color     string `gorm:"type:varchar(7)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toDomainCompany(cdb *companyDB) (*company.Company, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	oid, err := pkg.ParseULID(cdb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &company.Company{
		Id:        id,
		OwnerId:   oid,
		Name:      cdb.Name,
		Tag:       cdb.Tag,
		Color:     cdb.Color,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCompany(c *company.Company) *companyDB {
	return &companyDB{
		Id:        c.Id.String(),
		OwnerId:   c.OwnerId.String(),
		Name:      c.Name,
		Tag:       c.Tag,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	cdb := toDBCompany(c)
	return r.DB.WithContext(ctx).Table("companies").Create(&cdb).Error
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	cdb := toDBCompany(c)
	return r.DB.WithContext(ctx).Table("companies").
		Where("id = ? AND owner_id = ?", cdb.Id, cdb.OwnerId).
		Updates(&cdb).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, companyID, ownerID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("companies").
		Where("id = ? AND owner_id = ?", companyID.String(), ownerID.String()).
		Delete(&companyDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID, ownerID ulid.ULID) (*company.Company, error) {
	var cdb companyDB
	err := r.DB.WithContext(ctx).Table("companies").
		Where("id = ? AND owner_id = ?", companyID.String(), ownerID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCompany(&cdb)
}

func (r *CompanyRepository) GetByTag(ctx context.Context, tag string, ownerID ulid.ULID) (*company.Company, error) {
	var cdb companyDB
	err := r.DB.WithContext(ctx).Table("companies").
		Where("tag = ? AND owner_id = ?", tag, ownerID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCompany(&cdb)
}

func (r *CompanyRepository) List(ctx context.Context, ownerID ulid.ULID) ([]*company.Company, error) {
	var rows []companyDB
	err := r.DB.WithContext(ctx).Table("companies").
		Where("owner_id = ?", ownerID.String()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	companies := make([]*company.Company, 0, len(rows))
	for i := range rows {
		c, err := toDomainCompany(&rows[i])
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}
