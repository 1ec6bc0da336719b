package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingInterceptor records every unary call with its outcome and latency.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	args := []any{
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"code", status.Code(err).String(),
	}

	if err != nil {
		s.logger.Warn(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request handled", args...)
	}

	return resp, err
}
