//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"rent-elegance/cmd/bootstrap"
	"rent-elegance/cmd/bootstrap/components"
	"rent-elegance/internal/infra/db"
	"rent-elegance/internal/pkg/config"
	"rent-elegance/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var migrationFiles = []string{
	"migrations/001_device_storage.sql",
}

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動
// ------------------------------------------------------------
func sharedContainer(t *testing.T) (string, nat.Port) {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// デバイスストレージは小さいのでRAM上で十分
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=128m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "rent-elegance-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err, "コンテナホストの取得に失敗")
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err, "コンテナポートの取得に失敗")
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// ------------------------------------------------------------
// テストプロセス毎にデータベースを作成してマイグレーション
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, host string, port nat.Port) (*pgxpool.Pool, config.DBConfig) {
	dbName := "rent_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cleanup, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", dbName, "error", err)
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err)
		}
	})

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
	}

	pool, closePool, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	for _, file := range migrationFiles {
		sql, err := readFromRepoRoot(file)
		require.NoError(t, err, "マイグレーションファイルの読み込みに失敗")
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "マイグレーションの実行に失敗: %s", file)
	}

	return pool, dbConfig
}

// readFromRepoRoot walks up from the package directory `go test` runs in.
func readFromRepoRoot(rel string) ([]byte, error) {
	dir := rel
	for range 4 {
		if b, err := os.ReadFile(dir); err == nil {
			return b, nil
		}
		dir = filepath.Join("..", dir)
	}
	return nil, fmt.Errorf("%s not found above the working directory", rel)
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築
// ------------------------------------------------------------
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	var router *gin.Engine
	var cfg config.Config

	app := fx.New(
		fx.Module("testdb", fx.Provide(func() *pgxpool.Pool { return pool })),
		fx.Module("testconfig", fx.Provide(func() config.Config {
			c := config.NewTestConfig()
			c.Storage.Driver = config.StorageDriverPostgres
			c.DB = dbConfig
			return c
		})),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StorageModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err)
		}
	})
	return router, cfg
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := sharedContainer(t)
	pool, dbConfig := prepareDatabase(t, host, port)
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbConfig)
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")

	slog.Info("E2E環境の準備が完了しました", "postgres_host", host, "postgres_port", port.Port())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
