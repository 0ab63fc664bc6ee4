package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	OwnerId   string `gorm:"type:varchar(26);index;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Kind      string `gorm:"type:varchar(10)"`
	Bucket    string `gorm:"type:varchar(20)"`
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	oid, err := pkg.ParseULID(cdb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &category.Category{
		Id:        id,
		OwnerId:   oid,
		Name:      cdb.Name,
		Kind:      cdb.Kind,
		Bucket:    cdb.Bucket,
		SortOrder: cdb.SortOrder,
		IsActive:  cdb.IsActive,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		OwnerId:   c.OwnerId.String(),
		Name:      c.Name,
		Kind:      c.Kind,
		Bucket:    c.Bucket,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").Create(&cdb).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND owner_id = ?", cdb.Id, cdb.OwnerId).
		Updates(&cdb).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID, ownerID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND owner_id = ?", categoryID.String(), ownerID.String()).
		Delete(&categoryDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID, ownerID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND owner_id = ?", categoryID.String(), ownerID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string, ownerID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("name = ? AND owner_id = ?", name, ownerID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) List(ctx context.Context, ownerID ulid.ULID) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("owner_id = ?", ownerID.String()).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// SeedDefaults inserts the default labels, skipping ones the owner already
// has. Default IDs are deterministic so reruns stay idempotent.
func (r *CategoryRepository) SeedDefaults(ctx context.Context, categories []*category.Category) error {
	if len(categories) == 0 {
		return nil
	}

	rows := make([]*categoryDB, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, toDBCategory(c))
	}

	return r.DB.WithContext(ctx).Table("categories").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
