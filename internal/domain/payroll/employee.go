package payroll

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Employee struct {
	Id           ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId      ulid.ULID       `gorm:"type:varchar(26);index:idx_employees_owner;not null" json:"ownerId"`
	Name         string          `gorm:"type:varchar(150);not null" json:"name"`
	Position     string          `gorm:"type:varchar(100)" json:"position"`
	CompanyTag   string          `gorm:"type:varchar(50);index:idx_employees_company" json:"companyTag"`
	BaseSalary   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"baseSalary"`
	BonusPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"bonusPercent"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// PayrollLine is one employee's computed pay for a month. Bonus is
// BonusPercent of the revenue of sales the employee managed in that month.
type PayrollLine struct {
	EmployeeId ulid.ULID       `json:"employeeId"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Revenue    decimal.Decimal `json:"revenue"`
	Bonus      decimal.Decimal `json:"bonus"`
	Payout     decimal.Decimal `json:"payout"`
}

type PayrollSummary struct {
	Month       string          `json:"month"`
	Lines       []PayrollLine   `json:"lines"`
	TotalBase   decimal.Decimal `json:"totalBase"`
	TotalBonus  decimal.Decimal `json:"totalBonus"`
	TotalPayout decimal.Decimal `json:"totalPayout"`
}
