package repo

import (
	"Catalog/internal/model"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Models — все модели, которые мигрируются при старте.
var Models = []any{
	&model.User{},
	&model.Brand{},
	&model.Product{},
	&model.Block{},
	&model.RefreshSession{},
}

// InitDB открывает соединение с БД и прогоняет миграции.
// Если dsn пустой — используется локальный файл SQLite (modernc.org/sqlite, без cgo).
func InitDB(dsn, sqlitePath string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn != "" {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{
			DriverName: "sqlite",
			DSN:        fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqlitePath),
		}
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         NewGormLogger(os.Stdout),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// NewGormLogger — логгер gorm уровня Warn без записей «record not found».
func NewGormLogger(w io.Writer) logger.Interface {
	return logger.New(stdlog.New(w, "\r\n", stdlog.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
