package testutil

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

// SetTestEnvironment forces GO_ENV to "test". Call it from TestMain or a
// suite SetupSuite before loading configuration so tests never pick up a
// development .env file.
func SetTestEnvironment() {
	os.Setenv("GO_ENV", "test")
}

// RequireTestEnvironment fails the test immediately unless GO_ENV is "test".
// This prevents accidental execution of destructive tests against a
// development or production database.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: tests must run with GO_ENV=test. Current GO_ENV=%q.", env)
	}
}

// SetMockAdminContext marks a Gin context as authenticated the same way the
// admin JWT middleware does.
func SetMockAdminContext(c *gin.Context, username string) {
	c.Set("admin_user", username)
}

// CreateTestContext creates a test Gin context
func CreateTestContext() (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	c, engine := gin.CreateTestContext(nil)
	return c, engine
}
