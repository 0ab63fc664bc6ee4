package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type SaleRepository struct {
	DB *gorm.DB
}

var _ sale.Repository = (*SaleRepository)(nil)

type saleDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey"`
	OwnerId     string          `gorm:"type:varchar(26);index;not null"`
	ClientName  string          `gorm:"type:varchar(150);not null"`
	ManagerId   *string         `gorm:"type:varchar(26)"`
	CompanyTag  string          `gorm:"type:varchar(50)"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Comment     string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type installmentDB struct {
	Id         string          `gorm:"type:varchar(26);primaryKey"`
	SaleId     string          `gorm:"type:varchar(26);index;not null"`
	Seq        int             `gorm:"not null"`
	DueDate    time.Time       `gorm:"type:date;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAt     *time.Time      `gorm:"type:date"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(15,2)"`
}

func toDomainSale(sdb *saleDB, installments []installmentDB) (*sale.Sale, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}
	oid, err := pkg.ParseULID(sdb.OwnerId)
	if err != nil {
		return nil, err
	}
	mid, err := pkg.ParseULIDPtr(sdb.ManagerId)
	if err != nil {
		return nil, err
	}

	s := &sale.Sale{
		Id:          id,
		OwnerId:     oid,
		ClientName:  sdb.ClientName,
		ManagerId:   mid,
		CompanyTag:  sdb.CompanyTag,
		TotalAmount: sdb.TotalAmount,
		Date:        sdb.Date,
		Comment:     sdb.Comment,
		CreatedAt:   sdb.CreatedAt,
		UpdatedAt:   sdb.UpdatedAt,
	}

	s.Installments = make([]sale.Installment, 0, len(installments))
	for i := range installments {
		inst, err := toDomainInstallment(&installments[i])
		if err != nil {
			return nil, err
		}
		s.Installments = append(s.Installments, *inst)
	}
	return s, nil
}

func toDomainInstallment(idb *installmentDB) (*sale.Installment, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}
	sid, err := pkg.ParseULID(idb.SaleId)
	if err != nil {
		return nil, err
	}
	return &sale.Installment{
		Id:         id,
		SaleId:     sid,
		Seq:        idb.Seq,
		DueDate:    idb.DueDate,
		Amount:     idb.Amount,
		PaidAt:     idb.PaidAt,
		PaidAmount: idb.PaidAmount,
	}, nil
}

func toDBSale(s *sale.Sale) *saleDB {
	var mid *string
	if s.ManagerId != nil {
		v := s.ManagerId.String()
		mid = &v
	}
	return &saleDB{
		Id:          s.Id.String(),
		OwnerId:     s.OwnerId.String(),
		ClientName:  s.ClientName,
		ManagerId:   mid,
		CompanyTag:  s.CompanyTag,
		TotalAmount: s.TotalAmount,
		Date:        s.Date,
		Comment:     s.Comment,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toDBInstallment(i *sale.Installment) *installmentDB {
	return &installmentDB{
		Id:         i.Id.String(),
		SaleId:     i.SaleId.String(),
		Seq:        i.Seq,
		DueDate:    i.DueDate,
		Amount:     i.Amount,
		PaidAt:     i.PaidAt,
		PaidAmount: i.PaidAmount,
	}
}

// Create stores the sale and its installment schedule atomically.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sdb := toDBSale(s)
		if err := tx.Table("sales").Create(&sdb).Error; err != nil {
			return err
		}
		for i := range s.Installments {
			idb := toDBInstallment(&s.Installments[i])
			if err := tx.Table("installments").Create(&idb).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	sdb := toDBSale(s)
	return r.DB.WithContext(ctx).Table("sales").
		Where("id = ? AND owner_id = ?", sdb.Id, sdb.OwnerId).
		Updates(&sdb).Error
}

func (r *SaleRepository) Delete(ctx context.Context, saleID ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("installments").Where("sale_id = ?", saleID.String()).Delete(&installmentDB{}).Error; err != nil {
			return err
		}
		result := tx.Table("sales").Where("id = ?", saleID.String()).Delete(&saleDB{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *SaleRepository) GetByIDAndOwner(ctx context.Context, saleID, ownerID ulid.ULID) (*sale.Sale, error) {
	var sdb saleDB
	err := r.DB.WithContext(ctx).Table("sales").
		Where("id = ? AND owner_id = ?", saleID.String(), ownerID.String()).
		First(&sdb).Error
	if err != nil {
		return nil, err
	}

	installments, err := r.installmentsFor(ctx, []string{sdb.Id})
	if err != nil {
		return nil, err
	}
	return toDomainSale(&sdb, installments[sdb.Id])
}

func (r *SaleRepository) List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*sale.Sale, int64, error) {
	query := r.DB.WithContext(ctx).Table("sales").
		Where("owner_id = ?", ownerID.String())
	if companyTag != "" {
		query = query.Where("company_tag = ?", companyTag)
	}

	rows, total, err := pkg.Paginate[saleDB](query, pagination, "date DESC, id DESC")
	if err != nil {
		return nil, 0, err
	}

	sales, err := r.attachInstallments(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *SaleRepository) ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*sale.Sale, error) {
	query := r.DB.WithContext(ctx).Table("sales").
		Where("owner_id = ?", ownerID.String()).
		Where("date BETWEEN ? AND ?", from, to)
	if companyTag != "" {
		query = query.Where("company_tag = ?", companyTag)
	}

	var rows []saleDB
	if err := query.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	ptrs := make([]*saleDB, 0, len(rows))
	for i := range rows {
		ptrs = append(ptrs, &rows[i])
	}
	return r.attachInstallments(ctx, ptrs)
}

func (r *SaleRepository) UpdateInstallment(ctx context.Context, i *sale.Installment) error {
	idb := toDBInstallment(i)
	return r.DB.WithContext(ctx).Table("installments").
		Where("id = ?", idb.Id).
		Select("due_date", "amount", "paid_at", "paid_amount").
		Updates(&idb).Error
}

func (r *SaleRepository) ListUnpaidInstallments(ctx context.Context, ownerID ulid.ULID, companyTag string) ([]*sale.Installment, error) {
	query := r.DB.WithContext(ctx).Table("installments").
		Joins("JOIN sales ON sales.id = installments.sale_id").
		Where("sales.owner_id = ?", ownerID.String()).
		Where("installments.paid_at IS NULL")
	if companyTag != "" {
		query = query.Where("sales.company_tag = ?", companyTag)
	}

	var rows []installmentDB
	if err := query.Select("installments.*").Order("installments.due_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	installments := make([]*sale.Installment, 0, len(rows))
	for i := range rows {
		inst, err := toDomainInstallment(&rows[i])
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, nil
}

func (r *SaleRepository) attachInstallments(ctx context.Context, rows []*saleDB) ([]*sale.Sale, error) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Id)
	}

	bySale, err := r.installmentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	sales := make([]*sale.Sale, 0, len(rows))
	for _, row := range rows {
		s, err := toDomainSale(row, bySale[row.Id])
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}

func (r *SaleRepository) installmentsFor(ctx context.Context, saleIDs []string) (map[string][]installmentDB, error) {
	if len(saleIDs) == 0 {
		return map[string][]installmentDB{}, nil
	}

	var rows []installmentDB
	err := r.DB.WithContext(ctx).Table("installments").
		Where("sale_id IN ?", saleIDs).
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bySale := make(map[string][]installmentDB, len(saleIDs))
	for _, row := range rows {
		bySale[row.SaleId] = append(bySale[row.SaleId], row)
	}
	return bySale, nil
}
