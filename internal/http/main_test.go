package http

import (
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/example/kyoushitsu/internal/database"
	"github.com/example/kyoushitsu/internal/entities"
)

// setupTestDB opens a throwaway SQLite database for a controller test.
func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func seedChapter(t *testing.T, db *database.Database, title string) *entities.Chapter {
	t.Helper()
	chapter := &entities.Chapter{Title: title}
	require.NoError(t, db.DB.Create(chapter).Error)
	return chapter
}
