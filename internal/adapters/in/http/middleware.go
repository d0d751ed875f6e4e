package http

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"
)

// RequestLogger logs one entry per request. Server errors are logged at
// error level, client errors at warn, everything else at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			status := ctx.Response().Status
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", ctx.Path()),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("tenant_id", req.Header.Get(HeaderTenantID)),
			}

			switch {
			case status >= 500:
				log.Error("Request failed", fields...)
			case status >= 400:
				log.Warn("Request rejected", fields...)
			default:
				log.Info("Request handled", fields...)
			}

			return nil
		}
	}
}

func tenantFrom(ctx echo.Context) (kernel.TenantID, error) {
	raw := ctx.Request().Header.Get(HeaderTenantID)
	if raw == "" {
		return kernel.TenantID{}, errs.NewValueIsRequiredError(HeaderTenantID)
	}
	return kernel.TenantIDFromString(raw)
}

func actorFrom(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(HeaderUserID)
	}
	return bindUUID(runtime.ParamLocationHeader, HeaderUserID, raw)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return bindUUID(runtime.ParamLocationPath, "id", ctx.Param("id"))
}

// bindUUID decodes a simple-style UUID parameter. The nil UUID is rejected.
func bindUUID(in runtime.ParamLocation, name, value string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, value, &raw, runtime.BindStyledParameterOptions{
		ParamLocation: in,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromGoogle(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
