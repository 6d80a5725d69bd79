package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"starfaves/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// respondErr is the single error boundary: every failing handler path
// funnels through here. Constraint violations map to client errors;
// anything unrecognized becomes a generic 500 so storage detail never
// reaches the response body.
func respondErr(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isConstraint(err, "23505", "UNIQUE constraint failed") {
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
		return
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || isConstraint(err, "23503", "FOREIGN KEY constraint failed") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenced record does not exist"})
		return
	}
	log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// isConstraint matches a postgres error code or, for the sqlite
// fallback store, the driver's constraint message.
func isConstraint(err error, pgCode, sqliteMsg string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCode
	}
	return strings.Contains(err.Error(), sqliteMsg)
}
