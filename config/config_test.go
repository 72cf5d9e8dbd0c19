package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: userauth-test
  log:
    level: info
http:
  port: 3000
storage:
  driver: mongo
mongo:
  uri: mongodb://localhost:27017
  operationTimeout: 2s
cors:
  allowOrigin: http://localhost:5173
  allowCredentials: true
`

// testEnvName differs from the checked-in config.yaml so the repo file in the
// working directory is never picked up ahead of the temp dir.
const testEnvName = "userauth-test"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, testEnvName+".yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config](testEnvName, dir)
	require.NoError(t, err)

	assert.Equal(t, "userauth-test", cfg.Env.ServiceName)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "mongo", cfg.Storage.Driver)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 2*time.Second, cfg.Mongo.OperationTimeout)
	require.NotNil(t, cfg.CORS)
	assert.Equal(t, "http://localhost:5173", cfg.CORS.AllowOrigin)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, testYAML)
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := LoadWithEnv[Config](testEnvName, dir)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, 8081, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://localhost"}, CORS: &CORSConfig{AllowOrigin: "http://a"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultMongoCollection, cfg.Mongo.Collection)
	assert.Equal(t, defaultMongoTimeout, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, defaultMongoOpTimeout, cfg.Mongo.OperationTimeout)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE"}, cfg.CORS.AllowMethods)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "mongo with uri", cfg: &Config{Storage: StorageConfig{Driver: StorageDriverMongo}, Mongo: &MongoConfig{URI: "mongodb://x"}}},
		{name: "mongo without uri", cfg: &Config{Storage: StorageConfig{Driver: StorageDriverMongo}, Mongo: &MongoConfig{}}, wantErr: true},
		{name: "postgres without config", cfg: &Config{Storage: StorageConfig{Driver: StorageDriverPostgres}}, wantErr: true},
		{name: "memory", cfg: &Config{Storage: StorageConfig{Driver: StorageDriverMemory}}},
		{name: "unknown driver", cfg: &Config{Storage: StorageConfig{Driver: "redis"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}
