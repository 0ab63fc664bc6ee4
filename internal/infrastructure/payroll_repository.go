package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

var _ payroll.Repository = (*EmployeeRepository)(nil)

type employeeDB struct {
	Id           string          `gorm:"type:varchar(26);primaryKey"`
	OwnerId      string          `gorm:"type:varchar(26);index;not null"`
	Name         string          `gorm:"type:varchar(150);not null"`
	Position     string          `gorm:"type:varchar(100)"`
	CompanyTag   string          `gorm:"type:varchar(50)"`
	BaseSalary   decimal.Decimal `gorm:"type:decimal(15,2)"`
	BonusPercent decimal.Decimal `gorm:"type:decimal(5,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toDomainEmployee(edb *employeeDB) (*payroll.Employee, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, err
	}
	oid, err := pkg.ParseULID(edb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &payroll.Employee{
		Id:           id,
		OwnerId:      oid,
		Name:         edb.Name,
		Position:     edb.Position,
		CompanyTag:   edb.CompanyTag,
		BaseSalary:   edb.BaseSalary,
		BonusPercent: edb.BonusPercent,
		CreatedAt:    edb.CreatedAt,
		UpdatedAt:    edb.UpdatedAt,
	}, nil
}

func toDBEmployee(e *payroll.Employee) *employeeDB {
	return &employeeDB{
		Id:           e.Id.String(),
		OwnerId:      e.OwnerId.String(),
		Name:         e.Name,
		Position:     e.Position,
		CompanyTag:   e.CompanyTag,
		BaseSalary:   e.BaseSalary,
		BonusPercent: e.BonusPercent,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *payroll.Employee) error {
	edb := toDBEmployee(e)
	return r.DB.WithContext(ctx).Table("employees").Create(&edb).Error
}

func (r *EmployeeRepository) Update(ctx context.Context, e *payroll.Employee) error {
	edb := toDBEmployee(e)
	return r.DB.WithContext(ctx).Table("employees").
		Where("id = ? AND owner_id = ?", edb.Id, edb.OwnerId).
		Updates(&edb).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("employees").
		Where("id = ?", employeeID.String()).
		Delete(&employeeDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmployeeRepository) GetByIDAndOwner(ctx context.Context, employeeID, ownerID ulid.ULID) (*payroll.Employee, error) {
	var edb employeeDB
	err := r.DB.WithContext(ctx).Table("employees").
		Where("id = ? AND owner_id = ?", employeeID.String(), ownerID.String()).
		First(&edb).Error
	if err != nil {
		return nil, err
	}
	return toDomainEmployee(&edb)
}

func (r *EmployeeRepository) List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*payroll.Employee, int64, error) {
	query := r.DB.WithContext(ctx).Table("employees").
		Where("owner_id = ?", ownerID.String())
	if companyTag != "" {
		query = query.Where("company_tag = ?", companyTag)
	}

	rows, total, err := pkg.Paginate[employeeDB](query, pagination, "name ASC")
	if err != nil {
		return nil, 0, err
	}

	employees := make([]*payroll.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := toDomainEmployee(row)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, nil
}

func (r *EmployeeRepository) ListAll(ctx context.Context, ownerID ulid.ULID) ([]*payroll.Employee, error) {
	var rows []employeeDB
	err := r.DB.WithContext(ctx).Table("employees").
		Where("owner_id = ?", ownerID.String()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	employees := make([]*payroll.Employee, 0, len(rows))
	for i := range rows {
		e, err := toDomainEmployee(&rows[i])
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}
