package locale

import (
	"context"
	"fmt"

	"i18next-typesafe/core/config"
	"i18next-typesafe/core/database"
	"i18next-typesafe/core/storage"

	"github.com/spf13/afero"
)

// Open builds the source selected by cfg.Backend. Remote backends are checked
// for reachability before the source is returned.
func Open(ctx context.Context, cfg *config.Config, fsys afero.Fs) (Source, error) {
	switch cfg.Backend {
	case config.BackendFS, "":
		return NewFSSource(fsys, cfg.Locales, cfg.Extension()), nil

	case config.BackendS3:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		src := NewBucketSource(client, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Extension())
		if err := src.CheckBucket(ctx); err != nil {
			return nil, err
		}
		return src, nil

	case config.BackendMySQL:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.RequireColumns(ctx, db, cfg.Database.Table, database.TranslationColumns...); err != nil {
			return nil, err
		}
		return NewDatabaseSource(db, cfg.Database.Table), nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
