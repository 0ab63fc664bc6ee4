package analytics

type Bucket string

const (
	BucketWithdrawals    Bucket = "withdrawals"
	BucketMoneyInProject Bucket = "money_in_project"
)

// BucketTable maps exact category labels to the special KPI buckets they
// feed in addition to the income/expense totals. The mapping is a closed
// lookup table so every special-cased label is declared in one place; any
// category not listed here contributes only to Income or Expenses.
type BucketTable map[string]Bucket

// DefaultBuckets carries the production category labels recognized by the
// dashboard.
func DefaultBuckets() BucketTable {
	return BucketTable{
		"Вывод средств":     BucketWithdrawals,
		"Остаток в проекте": BucketMoneyInProject,
	}
}

func (t BucketTable) Lookup(category string) (Bucket, bool) {
	if t == nil {
		return "", false
	}
	b, ok := t[category]
	return b, ok
}
