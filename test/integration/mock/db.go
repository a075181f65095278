package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database migrated with the application models.
type Db struct {
	DbConn *gorm.DB
	models []any
	tables map[string]any
}

// NewDb opens the shared database on first use and migrates models.
func NewDb(models []any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
		tables: make(map[string]any, len(models)),
	}
	for _, model := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(err)
		}
		newDbMock.tables[stmt.Schema.Table] = model
	}

	return newDbMock
}

// ClearDB deletes every row, soft-deleted ones included.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// Count returns the number of live rows in table.
func (d *Db) Count(table string) (int64, error) {
	model, ok := d.tables[table]
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var count int64
	err := d.DbConn.Model(model).Count(&count).Error
	return count, err
}
