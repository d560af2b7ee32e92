package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// TranslationColumns are the columns a catalog table must provide.
var TranslationColumns = []string{"locale", "translation_key", "value"}

// ColumnInfo matches the output of SHOW COLUMNS
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(ctx context.Context, db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	err := db.WithContext(ctx).Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// RequireColumns verifies that tableName has every named column.
func RequireColumns(ctx context.Context, db *gorm.DB, tableName string, required ...string) error {
	columns, err := GetTableColumns(ctx, db, tableName)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("table %s does not exist or has no columns", tableName)
	}

	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c.Field] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := have[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", tableName, strings.Join(missing, ", "))
	}
	return nil
}
