package category

import (
	"crypto/sha256"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
)

type Category struct {
	Id        ulid.ULID `json:"id" gorm:"type:varchar(26);primaryKey"`
	OwnerId   ulid.ULID `json:"ownerId" gorm:"type:varchar(26);not null;index:idx_categories_owner_name,unique"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index:idx_categories_owner_name,unique"`
	Kind      string    `json:"kind" gorm:"type:varchar(10);default:'expense'"` // income or expense
	Bucket    string    `json:"bucket,omitempty" gorm:"type:varchar(20)"`       // analytics bucket, empty for regular categories
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

type DefaultCategoryDefinition struct {
	Name   string
	Kind   string
	Bucket analytics.Bucket
}

// DefaultCategories seeds each new owner with the labels the dashboard's
// KPI cards recognize, bucket mappings included, so the special categories
// exist before the first import.
var DefaultCategories = []DefaultCategoryDefinition{
	{Name: "Продажи", Kind: "income"},
	{Name: "Консалтинг", Kind: "income"},
	{Name: "Реклама", Kind: "expense"},
	{Name: "Аренда", Kind: "expense"},
	{Name: "Зарплата", Kind: "expense"},
	{Name: "Налоги", Kind: "expense"},
	{Name: "Вывод средств", Kind: "expense", Bucket: analytics.BucketWithdrawals},
	{Name: "Остаток в проекте", Kind: "expense", Bucket: analytics.BucketMoneyInProject},
	{Name: "Прочее", Kind: "expense"},
}

func GetDefaultCategoriesForOwner(ownerID ulid.ULID) []*Category {
	now := time.Now()
	categories := make([]*Category, 0, len(DefaultCategories))

	for i, def := range DefaultCategories {
		categories = append(categories, &Category{
			Id:        GenerateDeterministicID(ownerID.String(), def.Name),
			OwnerId:   ownerID,
			Name:      def.Name,
			Kind:      def.Kind,
			Bucket:    string(def.Bucket),
			SortOrder: i,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return categories
}

// GenerateDeterministicID derives a stable ULID for a default category so
// re-seeding an owner is idempotent.
func GenerateDeterministicID(ownerID, categoryName string) ulid.ULID {
	hash := sha256.Sum256([]byte("default_category:" + ownerID + ":" + categoryName))

	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := [10]byte{}
	copy(entropy[:], hash[:10])

	reader := &deterministicReader{data: entropy[:]}
	return ulid.MustNew(timestamp, reader)
}

type deterministicReader struct {
	data []byte
	pos  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	return n, nil
}

// BucketTableForOwner builds the analytics bucket table from the owner's
// categories, so the special-label mapping stays auditable in one place and
// follows category renames.
func BucketTableForOwner(categories []*Category) analytics.BucketTable {
	table := make(analytics.BucketTable)
	for _, c := range categories {
		if c.Bucket != "" {
			table[c.Name] = analytics.Bucket(c.Bucket)
		}
	}
	if len(table) == 0 {
		return analytics.DefaultBuckets()
	}
	return table
}
