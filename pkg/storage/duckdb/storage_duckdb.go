package duckdb

import (
	"database/sql"
	"errors"
	"net/url"
	"path/filepath"

	"github.com/admpub/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/webx-top/com"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
	"github.com/admpub/groupbar/pkg/storage"
)

const (
	tableDatasets   = `Datasets`
	tableGroups     = `DatasetGroups`
	tableCategories = `DatasetCategories`
	tableValues     = `DatasetValues`
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + tableDatasets + ` (
Name  VARCHAR NOT NULL,
Title VARCHAR
);`,
	`CREATE TABLE IF NOT EXISTS ` + tableGroups + ` (
Dataset  VARCHAR,
Seq      INTEGER,
Name     VARCHAR
);`,
	`CREATE TABLE IF NOT EXISTS ` + tableCategories + ` (
Dataset  VARCHAR,
Seq      INTEGER,
Name     VARCHAR
);`,
	// an absent value has no row
	`CREATE TABLE IF NOT EXISTS ` + tableValues + ` (
Dataset       VARCHAR,
CategoryIndex INTEGER,
GroupIndex    INTEGER,
Value         DOUBLE
);`,
}

func init() {
	storage.Register(`duckdb`, newDuckDB)
}

// duckdb://
func newDuckDB(settings *url.URL) (storage.Storager, error) {
	var storagePath string
	if settings != nil {
		var err error
		storagePath = settings.Path
		if len(settings.Path) > 0 {
			storagePath, err = url.PathUnescape(storagePath)
			if err != nil {
				return nil, err
			}
			storagePath = settings.Host + storagePath
		} else {
			storagePath = settings.Query().Get(`path`)
		}
		if len(storagePath) > 0 {
			switch storagePath[len(storagePath)-1] {
			case '/', '\\':
				com.MkdirAll(storagePath, 0760)
				storagePath = filepath.Join(storagePath, `groupbar.db`)
			default:
				if com.IsDir(storagePath) {
					storagePath = filepath.Join(storagePath, `groupbar.db`)
				}
			}
		}
	}
	db, err := sqlx.Open("duckdb", storagePath)
	if err != nil {
		return nil, err
	}
	for _, ddl := range schema {
		if _, err = db.Exec(ddl); err != nil {
			db.Close()
			return nil, err
		}
	}
	if len(storagePath) > 0 {
		log.Debugf(`using duckdb storage: %s`, storagePath)
	}
	return &storageDuckDB{db: db}, nil
}

type storageDuckDB struct {
	db *sqlx.DB
}

// Save replaces the dataset in a single transaction.
func (e *storageDuckDB) Save(d chart.Dataset) error {
	if err := d.Validate(); err != nil {
		return err
	}
	tx, err := e.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err = deleteDataset(tx, d.Name); err != nil {
		return err
	}
	if _, err = tx.Exec(`INSERT INTO `+tableDatasets+` VALUES(?, ?)`, d.Name, d.Title); err != nil {
		return err
	}
	for position, name := range d.Groups {
		if _, err = tx.Exec(`INSERT INTO `+tableGroups+` VALUES(?, ?, ?)`, d.Name, position, name); err != nil {
			return err
		}
	}
	for position, category := range d.Categories {
		if _, err = tx.Exec(`INSERT INTO `+tableCategories+` VALUES(?, ?, ?)`, d.Name, position, category.Name); err != nil {
			return err
		}
		for groupIndex, value := range category.Values {
			if value == nil {
				continue
			}
			if _, err = tx.Exec(`INSERT INTO `+tableValues+` VALUES(?, ?, ?, ?)`, d.Name, position, groupIndex, *value); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

type categoryRow struct {
	Position int    `db:"seq"`
	Name     string `db:"name"`
}

type valueRow struct {
	CategoryIndex int     `db:"category_index"`
	GroupIndex    int     `db:"group_index"`
	Value         float64 `db:"value"`
}

func (e *storageDuckDB) Load(name string) (chart.Dataset, error) {
	d := chart.Dataset{Name: name}
	var title sql.NullString
	err := e.db.Get(&title, `SELECT Title FROM `+tableDatasets+` WHERE Name=?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = storage.ErrNotFound
		}
		return d, err
	}
	d.Title = title.String
	if err = e.db.Select(&d.Groups, `SELECT Name FROM `+tableGroups+` WHERE Dataset=? ORDER BY Seq`, name); err != nil {
		return d, err
	}
	var categories []categoryRow
	if err = e.db.Select(&categories, `SELECT Seq AS seq, Name AS name FROM `+tableCategories+` WHERE Dataset=? ORDER BY Seq`, name); err != nil {
		return d, err
	}
	d.Categories = make([]layout.Category, len(categories))
	for i, row := range categories {
		d.Categories[i] = layout.Category{Name: row.Name, Values: make([]*float64, len(d.Groups))}
	}
	var values []valueRow
	if err = e.db.Select(&values, `SELECT CategoryIndex AS category_index, GroupIndex AS group_index, Value AS value FROM `+tableValues+` WHERE Dataset=?`, name); err != nil {
		return d, err
	}
	for _, row := range values {
		if row.CategoryIndex >= len(d.Categories) || row.GroupIndex >= len(d.Groups) {
			log.Warnf(`[%s] value outside the dataset: category=%d group=%d`, name, row.CategoryIndex, row.GroupIndex)
			continue
		}
		d.Categories[row.CategoryIndex].Values[row.GroupIndex] = layout.Float(row.Value)
	}
	return d, nil
}

func (e *storageDuckDB) List() ([]string, error) {
	var names []string
	err := e.db.Select(&names, `SELECT Name FROM `+tableDatasets+` ORDER BY Name`)
	return names, err
}

func (e *storageDuckDB) Delete(name string) error {
	tx, err := e.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	var n int64
	if err = tx.Get(&n, `SELECT COUNT(1) FROM `+tableDatasets+` WHERE Name=?`, name); err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	if err = deleteDataset(tx, name); err != nil {
		return err
	}
	return tx.Commit()
}

// Summary aggregates the present values of each category.
func (e *storageDuckDB) Summary(name string) ([]CategorySummary, error) {
	var exists int64
	if err := e.db.Get(&exists, `SELECT COUNT(1) FROM `+tableDatasets+` WHERE Name=?`, name); err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, storage.ErrNotFound
	}
	var rows []CategorySummary
	err := e.db.Select(&rows, `SELECT c.Name AS category, COUNT(v.Value) AS bars, COALESCE(SUM(v.Value), 0) AS total, COALESCE(MAX(v.Value), 0) AS max_value
FROM `+tableCategories+` c LEFT JOIN `+tableValues+` v ON v.Dataset=c.Dataset AND v.CategoryIndex=c.Seq
WHERE c.Dataset=?
GROUP BY c.Seq, c.Name
ORDER BY c.Seq`, name)
	return rows, err
}

func (e *storageDuckDB) Close() error {
	return e.db.Close()
}

func deleteDataset(tx *sqlx.Tx, name string) error {
	for _, table := range []string{tableValues, tableCategories, tableGroups} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE Dataset=?`, name); err != nil {
			return err
		}
	}
	_, err := tx.Exec(`DELETE FROM `+tableDatasets+` WHERE Name=?`, name)
	return err
}
