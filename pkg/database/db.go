package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImportStat aggregates batch-import activity per day.
type ImportStat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"uniqueIndex;not null" json:"date"`
	Batches   int       `gorm:"default:0" json:"batches"`
	Items     int       `gorm:"default:0" json:"items"`
	Succeeded int       `gorm:"default:0" json:"succeeded"`
	Failed    int       `gorm:"default:0" json:"failed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "import_stats.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&ImportStat{})

	return db
}

// RecordImport upserts today's stats row in a single query (supported by both
// Postgres and SQLite).
func RecordImport(db *gorm.DB, items, succeeded, failed int) {
	if db == nil {
		return
	}
	today := time.Now().Format("2006-01-02")

	db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"batches":   gorm.Expr("batches + ?", 1),
			"items":     gorm.Expr("items + ?", items),
			"succeeded": gorm.Expr("succeeded + ?", succeeded),
			"failed":    gorm.Expr("failed + ?", failed),
		}),
	}).Create(&ImportStat{
		Date:      today,
		Batches:   1,
		Items:     items,
		Succeeded: succeeded,
		Failed:    failed,
	})
}
