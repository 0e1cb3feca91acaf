package middleware

import (
	"errors"
	"fmt"

	"github.com/AzielCF/az-learn/domains/remote"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			res := utils.ResponseData{
				Status:  fiber.StatusInternalServerError,
				Code:    "INTERNAL_SERVER_ERROR",
				Message: fmt.Sprintf("%v", recovered),
			}

			if err, ok := recovered.(error); ok {
				if generic, ok := pkgError.As(err); ok {
					res.Status = generic.StatusCode()
					res.Code = generic.ErrCode()
					res.Message = generic.Error()
				} else if errors.Is(err, remote.ErrUnavailable) {
					res.Status = fiber.StatusServiceUnavailable
					res.Code = "REMOTE_UNAVAILABLE"
				}
			}

			if res.Status >= fiber.StatusInternalServerError {
				logrus.Errorf("[REST] Panic recovered in middleware: %v", recovered)
			} else {
				logrus.Debugf("[REST] Request rejected: %v", recovered)
			}

			_ = ctx.Status(res.Status).JSON(res)
		}()

		return ctx.Next()
	}
}
