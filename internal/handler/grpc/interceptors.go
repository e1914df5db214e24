package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

// publicMethods are served without a bearer token.
var publicMethods = map[string]struct{}{
	fullMethod(methodIssueToken): {},
}

func recoverUnary(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Any("reason", r).
					Bytes("stack", debug.Stack()).
					Str("method", info.FullMethod).
					Msg("panic")
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return next(ctx, req)
	}
}

// loggingUnary attaches a trace-scoped logger to the context and writes one
// entry per call. Payloads are never logged.
func loggingUnary(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		traceID := firstMetadataValue(ctx, traceIDKey)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		l := log.WithTraceID(traceID)
		ctx = l.WithContext(ctx)

		start := time.Now()
		resp, err := next(ctx, req)

		var remote string
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			remote = p.Addr.String()
		}

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Str("peer", remote).
			Send()
		return resp, err
	}
}

func authUnary(auth service.AuthService) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if _, ok := publicMethods[info.FullMethod]; ok {
			return next(ctx, req)
		}

		header := firstMetadataValue(ctx, authorizationKey)
		if header == "" {
			return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
		}

		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization metadata")
		}

		identity, err := auth.Verify(ctx, token)
		if err != nil {
			return nil, toStatus(ctx, err)
		}

		return next(utils.WithIdentity(ctx, identity), req)
	}
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
