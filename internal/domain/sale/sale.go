package sale

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Sale is a client deal paid off in monthly installments. The installment
// rows always sum exactly to TotalAmount.
type Sale struct {
	Id           ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId      ulid.ULID       `gorm:"type:varchar(26);index:idx_sales_owner;not null" json:"ownerId"`
	ClientName   string          `gorm:"type:varchar(150);not null" json:"clientName"`
	ManagerId    *ulid.ULID      `gorm:"type:varchar(26);index:idx_sales_manager" json:"managerId,omitempty"`
	CompanyTag   string          `gorm:"type:varchar(50);index:idx_sales_company" json:"companyTag"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"totalAmount"`
	Date         time.Time       `gorm:"type:date;not null;index:idx_sales_date" json:"date"`
	Comment      string          `gorm:"type:varchar(255)" json:"comment,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
	Installments []Installment   `gorm:"foreignKey:SaleId;constraint:OnDelete:CASCADE" json:"installments"`
}

func (Sale) TableName() string {
	return "sales"
}

type Installment struct {
	Id         ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	SaleId     ulid.ULID       `gorm:"type:varchar(26);index:idx_installments_sale;not null" json:"saleId"`
	Seq        int             `gorm:"not null" json:"seq"`
	DueDate    time.Time       `gorm:"type:date;not null;index:idx_installments_due" json:"dueDate"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaidAt     *time.Time      `gorm:"type:date" json:"paidAt,omitempty"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"paidAmount"`
}

func (Installment) TableName() string {
	return "installments"
}

func (i Installment) IsPaid() bool {
	return i.PaidAt != nil
}

// Outstanding is the unpaid remainder across the sale's installments.
func (s *Sale) Outstanding() decimal.Decimal {
	remaining := decimal.Zero
	for _, inst := range s.Installments {
		remaining = remaining.Add(inst.Amount.Sub(inst.PaidAmount))
	}
	return remaining
}

// ForecastBucket is the expected incoming amount of one future month, built
// from unpaid installments grouped by due month.
type ForecastBucket struct {
	Month    string          `json:"month"` // YYYY-MM
	Expected decimal.Decimal `json:"expected"`
}
