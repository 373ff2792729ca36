// tracking.go - privacy-conscious visit logging
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

// visitTracker logs page views with salted, truncated IP hashes. Nothing is
// stored; the salt changes on every start.
type visitTracker struct {
	logger hclog.Logger
	salt   string
}

func newVisitTracker(logger hclog.Logger) (*visitTracker, error) {
	salt, err := randomToken()
	if err != nil {
		return nil, err
	}
	return &visitTracker{logger: logger, salt: salt}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable per IP for the lifetime of the process.
func (t *visitTracker) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func skipTracking(path string) bool {
	for _, prefix := range []string{"/static/", "/images/", "/favicon", "/healthz"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// middleware logs one line per tracked visit. Requests with DNT: 1 are
// skipped.
func (t *visitTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipTracking(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		c.Next()
		t.logger.Info("visit",
			"visitor", t.hashIP(c.ClientIP()),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"user_agent", c.GetHeader("User-Agent"),
		)
	}
}
