package shopserver

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxReportedTables = 10

// SystemAPI serves the liveness and database diagnostics endpoints.
type SystemAPI struct {
	db *gorm.DB
}

// NewSystemAPI creates a SystemAPI. db may be nil when the process runs
// without a database.
func NewSystemAPI(db *gorm.DB) SystemAPI {
	return SystemAPI{db: db}
}

// Get /
// Liveness message
func (api *SystemAPI) ReadRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Shopping API is running"})
}

// databaseDiagnostics is the /test response payload.
type databaseDiagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Get /test
// Report backend and database availability
func (api *SystemAPI) TestDatabase(c *gin.Context) {
	response := databaseDiagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if strings.TrimSpace(os.Getenv("POSTGRES_DSN")) != "" {
		response.DatabaseURL = "set"
	}
	if api.db == nil {
		c.JSON(http.StatusOK, response)
		return
	}
	response.Database = "available"
	sqlDB, err := api.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		c.JSON(http.StatusOK, response)
		return
	}
	response.ConnectionStatus = "connected"
	tables, err := api.db.Migrator().GetTables()
	if err != nil {
		response.Database = "connected but errored: " + truncateDetail(err.Error())
		c.JSON(http.StatusOK, response)
		return
	}
	if len(tables) > maxReportedTables {
		tables = tables[:maxReportedTables]
	}
	response.Database = "connected and working"
	response.Collections = tables
	c.JSON(http.StatusOK, response)
}

func truncateDetail(detail string) string {
	const limit = 50
	if len(detail) <= limit {
		return detail
	}
	return detail[:limit]
}
