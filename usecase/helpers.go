package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AzielCF/az-learn/domains/remote"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
)

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return pkgError.ValidationError("user id is required")
	}
	return nil
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgError.ValidationError(kind + " id is required")
	}
	return nil
}

// notFound maps remote.ErrNotFound to the REST-facing NotFoundError.
func notFound(err error, kind, id string) error {
	if errors.Is(err, remote.ErrNotFound) {
		return pkgError.NotFoundError(fmt.Sprintf("%s %s not found", kind, id))
	}
	return err
}

// intField reads a numeric document field; JSON numbers decode as float64.
func intField(data map[string]any, key string) int {
	switch n := data[key].(type) {
	case float64:
		return int(n)
	case float32:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	}
	return 0
}
