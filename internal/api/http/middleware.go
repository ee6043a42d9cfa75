package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"go.uber.org/zap"

	"github.com/spec-kit/user-management/internal/observability"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

// MiddlewareConfig bundles options for the global middleware chain.
type MiddlewareConfig struct {
	Timeout     time.Duration
	RateLimiter fiber.Handler
	DevMode     bool
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg MiddlewareConfig) {
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Content-Type,Authorization,X-Requested-With,Accept",
		MaxAge:       86400,
	}))
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics, cfg.DevMode))
	if cfg.RateLimiter != nil {
		app.Use(cfg.RateLimiter)
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware translates taxonomy errors to the response
// envelope and shields internal detail: unexpected errors are logged with
// full context server-side and surface as a generic message unless DevMode.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, devMode bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

				message := domainErr.Message
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
					if devMode && domainErr.Err != nil {
						message = domainErr.Err.Error()
					}
				}

				response := fiber.Map{
					"success": false,
					"message": message,
				}
				if len(domainErr.Details) > 0 {
					response["details"] = domainErr.Details
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}
