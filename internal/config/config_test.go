package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 8080

database:
  host: db.local
  port: 5432
  user: shop
  password: secret
  database: burger_shop

rabbitmq:
  host: mq.local
  port: 5672
  user: guest
  password: guest

shop:
  owner_account: the-owner
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "burger_shop", cfg.Database.Database)
	assert.Equal(t, "mq.local", cfg.RabbitMQ.Host)
	assert.Equal(t, "the-owner", cfg.Shop.OwnerAccount)
}

func TestLoad_DefaultPort(t *testing.T) {
	path := writeConfig(t, `
shop:
  owner_account: the-owner
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.HTTP.Port)
}

func TestLoad_MissingOwnerAccount(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 8080
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "owner_account")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
