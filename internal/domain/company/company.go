package company

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Company is one legal entity of the organization. Its Tag is the short
// label stamped on transactions, sales, leads and employees to scope
// analytics per company.
type Company struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId   ulid.ULID `gorm:"type:varchar(26);index:idx_companies_owner_tag,unique,priority:1;not null" json:"ownerId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Tag       string    `gorm:"type:varchar(50);index:idx_companies_owner_tag,unique,priority:2;not null" json:"tag"`
	Color     string    `gorm:"type:varchar(7)" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Company) TableName() string {
	return "companies"
}
