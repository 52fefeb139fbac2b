package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
)

// AuditWriter defines how audit records are persisted.
type AuditWriter interface {
	WriteAudit(ctx context.Context, entry *domain.AuditLog) error
}

// auditWriteTimeout bounds a single background audit insert.
const auditWriteTimeout = 5 * time.Second

// AuditMiddleware records every request. Writes happen in the background
// and never affect the response.
func AuditMiddleware(writer AuditWriter) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		// Capture request data BEFORE handler execution (Fiber reuses context objects)
		method := c.Method()
		path := strings.Clone(c.Path())
		ip := strings.Clone(c.IP())
		userAgent := strings.Clone(c.Get(fiber.HeaderUserAgent))
		reqID := strings.Clone(requestid.FromContext(c))

		err := c.Next()

		actor := domain.AnonymousActor
		if p := GetPrincipal(c); p != nil && p.Email != "" {
			actor = p.Email
		}

		entry := &domain.AuditLog{
			RequestID:  reqID,
			Actor:      actor,
			Action:     auditAction(method, path),
			Method:     method,
			Path:       path,
			Status:     c.Response().StatusCode(),
			DurationMS: time.Since(start).Milliseconds(),
			IP:         ip,
			UserAgent:  userAgent,
			CreatedAt:  start.UTC(),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
			defer cancel()
			if writeErr := writer.WriteAudit(ctx, entry); writeErr != nil {
				slog.Error("failed to write audit log", "error", writeErr)
			}
		}()

		return err
	}
}

func auditAction(method, path string) string {
	switch {
	case method == fiber.MethodPost && path == "/jwt":
		return domain.AuditActionTokenIssued
	case method == fiber.MethodPatch && (strings.HasPrefix(path, "/users/admin/") || strings.HasPrefix(path, "/users/instructor/")):
		return domain.AuditActionRoleChange
	case method == fiber.MethodPost && (path == "/payments" || path == "/create-payment-intent"):
		return domain.AuditActionPayment
	default:
		return domain.AuditActionRequest
	}
}
