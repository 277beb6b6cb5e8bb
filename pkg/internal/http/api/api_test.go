package api

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/plumepress/plume/pkg/internal/auth"
	localCache "github.com/plumepress/plume/pkg/internal/cache"
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret        = "test-secret"
	testLoginEndpoint = "https://id.example.com/login"
)

// testApp wires the public controllers the way the server bootstrap
// does, on top of a fresh in-memory store.
func testApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.Set("paginator.page_size", 10)
	viper.Set("security.jwt_secret", testSecret)
	viper.Set("security.login_endpoint", testLoginEndpoint)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	require.NoError(t, localCache.NewStore())
	database.C = db

	app := fiber.New()
	app.Use(auth.ContextMiddleware)
	MapControllers(app, "")

	return app
}

func bearerFor(t *testing.T, name, nick string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Nick: nick,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return "Bearer " + signed
}
