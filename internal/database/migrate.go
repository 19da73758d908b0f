package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
)

func models() []any {
	return []any{
		&domain.Account{},
		&domain.VerificationCode{},
		&domain.Note{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "error")
		return err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "success")
	return nil
}

type TableStatus struct {
	Table  string `json:"table"`
	Exists bool   `json:"exists"`
}

// Status reports which managed tables are present. It never alters the schema.
func Status(db *gorm.DB) ([]TableStatus, error) {
	out := make([]TableStatus, 0, len(models()))
	migrator := db.Migrator()
	for _, m := range models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, err
		}
		out = append(out, TableStatus{Table: stmt.Table, Exists: migrator.HasTable(m)})
	}
	return out, nil
}
