package duckdb

import (
	"github.com/admpub/groupbar/pkg/storage"
)

// Storager is a storage that can also aggregate values in SQL.
type Storager interface {
	storage.Storager
	Summary(name string) ([]CategorySummary, error)
}

type CategorySummary struct {
	Category string  `db:"category" json:"category"`
	Bars     int64   `db:"bars" json:"bars"`
	Total    float64 `db:"total" json:"total"`
	Max      float64 `db:"max_value" json:"max"`
}
