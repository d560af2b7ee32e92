package locale

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"i18next-typesafe/core/catalog"

	"gorm.io/gorm"
)

// translationRow is one row of the catalog table.
type translationRow struct {
	TranslationKey string
	Value          sql.NullString
}

// DatabaseSource reads flat `(locale, translation_key, value)` rows and
// rebuilds the nested document from the dotted keys.
type DatabaseSource struct {
	db    *gorm.DB
	table string
}

// NewDatabaseSource creates a source over table.
func NewDatabaseSource(db *gorm.DB, table string) *DatabaseSource {
	return &DatabaseSource{db: db, table: table}
}

// Location names the table and locale filter.
func (s *DatabaseSource) Location(lang string) string {
	return fmt.Sprintf("%s[locale=%s]", s.table, lang)
}

// Load queries every row of lang ordered by key.
func (s *DatabaseSource) Load(ctx context.Context, lang string) (*catalog.Document, error) {
	var rows []translationRow
	err := s.db.WithContext(ctx).
		Table(s.table).
		Select("translation_key, value").
		Where("locale = ?", lang).
		Order("translation_key").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.Location(lang), err)
	}
	if len(rows) == 0 {
		return nil, notFound(s.Location(lang))
	}

	root, err := expand(rows)
	if err != nil {
		return nil, &ParseError{Path: s.Location(lang), Err: err}
	}
	return catalog.NewDocument(s.Location(lang), root), nil
}

// expand turns dotted keys into nested objects. A key that is both a leaf and
// a parent of another key is rejected.
func expand(rows []translationRow) (*catalog.Node, error) {
	root := catalog.Object()
	for _, r := range rows {
		parts := strings.Split(r.TranslationKey, ".")
		for _, p := range parts {
			if p == "" {
				return nil, fmt.Errorf("invalid key %q", r.TranslationKey)
			}
		}

		node := root
		for i, p := range parts[:len(parts)-1] {
			child, ok := node.Get(p)
			if !ok {
				child = catalog.Object()
				node.Fields = append(node.Fields, catalog.F(p, child))
			} else if !child.IsObject() {
				return nil, fmt.Errorf("key %q is both a value and a parent of %q",
					strings.Join(parts[:i+1], "."), r.TranslationKey)
			}
			node = child
		}

		last := parts[len(parts)-1]
		if existing, ok := node.Get(last); ok {
			if existing.IsObject() {
				return nil, fmt.Errorf("key %q is both a value and a parent", r.TranslationKey)
			}
			return nil, fmt.Errorf("duplicate key %q", r.TranslationKey)
		}
		value := catalog.Null()
		if r.Value.Valid {
			value = catalog.String(r.Value.String)
		}
		node.Fields = append(node.Fields, catalog.F(last, value))
	}
	return root, nil
}
