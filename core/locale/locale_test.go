package locale

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/config"
	"i18next-typesafe/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFSSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/locales/en.json", []byte(`{"nav": {"home": "Home"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/locales/fr.json", []byte(`{"nav": `), 0o644))
	src := NewFSSource(fs, "/locales", ".json")

	t.Run("Loads Document", func(t *testing.T) {
		doc, err := src.Load(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"nav.home"}, catalog.Flatten(doc).Sorted())
		assert.Equal(t, "/locales/en.json", doc.Name)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := src.Load(context.Background(), "de")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorContains(t, err, "/locales/de.json")
	})

	t.Run("Malformed File", func(t *testing.T) {
		_, err := src.Load(context.Background(), "fr")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "/locales/fr.json", perr.Path)
	})

	t.Run("Location", func(t *testing.T) {
		assert.Equal(t, "/locales/pt.json", src.Location("pt"))
	})
}

func TestBucketSource(t *testing.T) {
	t.Run("Loads Object Under Prefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "i18n", "app/locales/en.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"a": {"b": "1"}}`))), nil)

		src := NewBucketSource(client, "i18n", "app/locales", ".json")
		doc, err := src.Load(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.b"}, catalog.Flatten(doc).Sorted())
		client.AssertExpectations(t)
	})

	t.Run("No Such Key", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "i18n", "fr.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		src := NewBucketSource(client, "i18n", "", ".json")
		_, err := src.Load(context.Background(), "fr")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorContains(t, err, "s3://i18n/fr.json")
	})

	t.Run("Missing Key Surfaces On Read", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "i18n", "de.json", mock.Anything).
			Return(io.NopCloser(errReader{minio.ErrorResponse{Code: "NoSuchKey"}}), nil)

		src := NewBucketSource(client, "i18n", "", ".json")
		_, err := src.Load(context.Background(), "de")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Transport Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "i18n", "en.json", mock.Anything).
			Return(nil, errors.New("connection refused"))

		src := NewBucketSource(client, "i18n", "", ".json")
		_, err := src.Load(context.Background(), "en")
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Malformed Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "i18n", "en.yaml", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("- a\n- b\n"))), nil)

		src := NewBucketSource(client, "i18n", "", ".yaml")
		_, err := src.Load(context.Background(), "en")
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("Check Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "i18n").Return(true, nil).Once()
		client.On("BucketExists", mock.Anything, "i18n").Return(false, nil).Once()

		src := NewBucketSource(client, "i18n", "", ".json")
		assert.NoError(t, src.CheckBucket(context.Background()))
		assert.ErrorContains(t, src.CheckBucket(context.Background()), "does not exist")
	})
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

const selectRows = "SELECT (.+) FROM `translations` WHERE locale = \\? ORDER BY translation_key"

func TestDatabaseSource(t *testing.T) {
	t.Run("Expands Dotted Keys", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectRows).WithArgs("en").WillReturnRows(
			sqlmock.NewRows([]string{"translation_key", "value"}).
				AddRow("nav.about", nil).
				AddRow("nav.home", "Home").
				AddRow("title", "App"),
		)

		doc, err := NewDatabaseSource(db, "translations").Load(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"nav.about", "nav.home", "title"}, catalog.Flatten(doc).Sorted())
		assert.Equal(t, []catalog.Block{{Prefix: "nav", KeyCount: 2}}, catalog.ExtractBlocks(doc))

		nav, _ := doc.Root.Get("nav")
		about, _ := nav.Get("about")
		assert.Equal(t, catalog.KindNull, about.Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Rows", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectRows).WithArgs("xx").
			WillReturnRows(sqlmock.NewRows([]string{"translation_key", "value"}))

		_, err := NewDatabaseSource(db, "translations").Load(context.Background(), "xx")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Leaf And Branch Conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectRows).WithArgs("en").WillReturnRows(
			sqlmock.NewRows([]string{"translation_key", "value"}).
				AddRow("nav", "Nav").
				AddRow("nav.home", "Home"),
		)

		_, err := NewDatabaseSource(db, "translations").Load(context.Background(), "en")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "translations[locale=en]", perr.Path)
	})

	t.Run("Query Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectRows).WithArgs("en").WillReturnError(errors.New("gone away"))

		_, err := NewDatabaseSource(db, "translations").Load(context.Background(), "en")
		assert.ErrorContains(t, err, "gone away")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestExpand(t *testing.T) {
	row := func(k, v string) translationRow {
		r := translationRow{TranslationKey: k}
		r.Value.String, r.Value.Valid = v, true
		return r
	}

	t.Run("Branch Before Leaf", func(t *testing.T) {
		_, err := expand([]translationRow{row("a.b", "1"), row("a", "2")})
		assert.ErrorContains(t, err, "both a value and a parent")
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := expand([]translationRow{row("a", "1"), row("a", "2")})
		assert.ErrorContains(t, err, "duplicate key")
	})

	t.Run("Empty Segment", func(t *testing.T) {
		_, err := expand([]translationRow{row("a..b", "1")})
		assert.ErrorContains(t, err, "invalid key")
	})
}

func TestOpen(t *testing.T) {
	t.Run("Filesystem Uses Input Extension", func(t *testing.T) {
		cfg := &config.Config{Backend: config.BackendFS, Locales: "/i18n", Input: "/i18n/en.yaml"}
		src, err := Open(context.Background(), cfg, afero.NewMemMapFs())
		require.NoError(t, err)
		assert.Equal(t, "/i18n/fr.yaml", src.Location("fr"))
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		_, err := Open(context.Background(), &config.Config{Backend: "redis"}, afero.NewMemMapFs())
		assert.Error(t, err)
	})
}
