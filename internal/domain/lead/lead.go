package lead

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusQualified Status = "qualified"
	StatusConverted Status = "converted"
	StatusLost      Status = "lost"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}

type Lead struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId    ulid.ULID `gorm:"type:varchar(26);index:idx_leads_owner;not null" json:"ownerId"`
	Name       string    `gorm:"type:varchar(150)" json:"name"`
	Source     string    `gorm:"type:varchar(100);not null;index:idx_leads_source" json:"source"`
	Status     Status    `gorm:"type:varchar(15);not null;default:'new'" json:"status"`
	CompanyTag string    `gorm:"type:varchar(50);index:idx_leads_company" json:"companyTag"`
	Date       time.Time `gorm:"type:date;not null;index:idx_leads_date" json:"date"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Lead) TableName() string {
	return "leads"
}

// SourceConversion is the per-source funnel line of the lead dashboard.
// Conversion is converted/total as a percentage, zero when the source has
// no leads.
type SourceConversion struct {
	Source     string          `json:"source"`
	Total      int             `json:"total"`
	Converted  int             `json:"converted"`
	Conversion decimal.Decimal `json:"conversion"`
}
