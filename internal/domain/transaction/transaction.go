package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
)

// Transaction is one financial record of the P&L log. Amount is a
// non-negative exact decimal; Kind decides whether it is income or expense.
// Date carries day granularity only.
type Transaction struct {
	Id          ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId     ulid.ULID       `gorm:"type:varchar(26);index:idx_transactions_owner,priority:1;index:idx_transactions_owner_date;not null" json:"ownerId"`
	Kind        analytics.Kind  `gorm:"type:varchar(10);not null;index:idx_transactions_kind" json:"kind"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Subcategory string          `gorm:"type:varchar(100)" json:"subcategory,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_transactions_owner_date,priority:2" json:"date"`
	CompanyTag  string          `gorm:"type:varchar(50);index:idx_transactions_company" json:"companyTag"`
	Comment     string          `gorm:"type:varchar(255)" json:"comment,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) ToRecord() analytics.Record {
	return analytics.Record{
		ID:          t.Id,
		Date:        t.Date,
		Kind:        t.Kind,
		Category:    t.Category,
		Subcategory: t.Subcategory,
		Amount:      t.Amount,
		CompanyTag:  t.CompanyTag,
	}
}

func ToRecords(transactions []*Transaction) []analytics.Record {
	records := make([]analytics.Record, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.ToRecord())
	}
	return records
}
