package models

// KVEntry is one row of the key-value table backing the storage layer. Each
// value is an opaque string blob (a JSON array, a JSON object, or a decimal
// string for the invoice counter).
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value string `gorm:"type:text;not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
