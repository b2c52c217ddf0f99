package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/config"
	dbpkg "github.com/gessopro/gesseiros-api/internal/db"
	"github.com/gessopro/gesseiros-api/internal/routes"
)

var testDBSeq int64

// SetupDB abre um banco sqlite em memória exclusivo do teste, com foreign
// keys ligadas, e aplica as migrações.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:gesso_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return gdb
}

// TestConfig devolve uma configuração isolada, com uploads num diretório
// temporário do teste.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		JWTSecret:     "test-secret",
		ServerPort:    "0",
		TokenTTL:      168 * time.Hour,
		UploadDir:     t.TempDir(),
		MaxUploadSize: 5 * 1024 * 1024,
	}
}

// SetupRouter monta o router completo da API sobre o banco dado.
func SetupRouter(t *testing.T, gdb *gorm.DB, cfg *config.Config) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg)
	return r
}
