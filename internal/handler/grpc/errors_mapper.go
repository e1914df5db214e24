package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrUnauthorized:     codes.Unauthenticated,
	service.ErrWrongPassword:    codes.Unauthenticated,
	service.ErrTokenIsExpired:   codes.Unauthenticated,
	service.ErrTokenIsMalformed: codes.Unauthenticated,
	service.ErrUserIsDisabled:   codes.PermissionDenied,
	service.ErrValidation:       codes.InvalidArgument,
	service.ErrEnrichmentFailed: codes.Unavailable,

	store.ErrLoginAlreadyExists: codes.AlreadyExists,
	store.ErrNoUserWasFound:     codes.Unauthenticated,
	store.ErrTodoNotFound:       codes.NotFound,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// toStatus converts a service error into a gRPC status. Internal failures
// are logged and reported without detail.
func toStatus(ctx context.Context, err error) error {
	code := codeFromError(err)
	if code == codes.Internal {
		logger.FromContext(ctx).Err(err).Msg("internal error")
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
