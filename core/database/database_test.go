package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "127.0.0.1",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrong:p@ss",
			Name:           "i18n",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
