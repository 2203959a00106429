package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nakamauwu/hirechat/activity"
	"github.com/nakamauwu/hirechat/auth"
	"github.com/nakamauwu/hirechat/config"
	"github.com/nakamauwu/hirechat/realtime"
	"github.com/nakamauwu/hirechat/service"
)

func newVerifier(cfg config.Config) (auth.Verifier, error) {
	switch cfg.TokenFormat {
	case "branca":
		return &auth.BrancaVerifier{Key: cfg.TokenKey, TTL: cfg.TokenTTL}, nil
	case "jwt":
		return &auth.JWTVerifier{Secret: []byte(cfg.JWTSecret), Issuer: cfg.JWTIssuer}, nil
	}
	return nil, fmt.Errorf("unknown token format %q", cfg.TokenFormat)
}

func newBroker(ctx context.Context, cfg config.Config) (realtime.Broker, error) {
	switch cfg.Broker {
	case "memory":
		return realtime.NewMemoryBroker(), nil
	case "nats":
		b, err := realtime.NewNATSBroker(cfg.NATSURL)
		if err != nil {
			return nil, fmt.Errorf("create nats broker: %w", err)
		}
		return b, nil
	case "redis":
		b, err := realtime.NewRedisBroker(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("create redis broker: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown broker %q", cfg.Broker)
}

type activitySink interface {
	service.ActivitySink
	io.Closer
}

type logSink struct {
	activity.LogSink
}

func (logSink) Close() error { return nil }

func newActivitySink(cfg config.Config, logger *slog.Logger) (activitySink, error) {
	switch cfg.ActivityQueue {
	case "log":
		return logSink{activity.LogSink{Logger: logger}}, nil
	case "asynq":
		s, err := activity.NewAsynqSink(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("create asynq activity sink: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown activity queue %q", cfg.ActivityQueue)
}

func logBackfillRuns(runs <-chan service.BackfillRun, infoLogger, errLogger *slog.Logger) {
	for run := range runs {
		if run.Err != nil {
			errLogger.Error("scheduled backfill", "err", run.Err, "took", run.Took)
			continue
		}

		infoLogger.Info("scheduled backfill",
			"seeded", run.Result.Seeded,
			"attributed", run.Result.Attributed,
			"took", run.Took,
		)
	}
}
