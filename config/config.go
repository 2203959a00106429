package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type Config struct {
	CockroachURL      string        `ff:"long: cockroach-url, default: postgresql://root@127.0.0.1:26257/defaultdb?sslmode=disable, usage: URL for the CockroachDB database"`
	Port              uint32        `ff:"long: port, short: p, default: 4444, usage: Port for the HTTP server"`
	TokenFormat       string        `ff:"long: token-format, default: branca, usage: Access token format (branca or jwt)"`
	TokenKey          string        `ff:"long: token-key, default: supersecretkeyyoushouldnotcommit, usage: 32 bytes key to verify branca tokens"`
	TokenTTL          time.Duration `ff:"long: token-ttl, default: 336h, usage: Max age accepted for branca tokens"`
	JWTSecret         string        `ff:"long: jwt-secret, usage: HMAC secret to verify JWTs"`
	JWTIssuer         string        `ff:"long: jwt-issuer, usage: Expected JWT issuer"`
	Broker            string        `ff:"long: broker, default: memory, usage: Real-time broker (memory or nats or redis)"`
	NATSURL           string        `ff:"long: nats-url, default: nats://127.0.0.1:4222, usage: NATS server URL"`
	RedisURL          string        `ff:"long: redis-url, default: redis://127.0.0.1:6379/0, usage: Redis URL for the broker and the activity queue"`
	ActivityQueue     string        `ff:"long: activity-queue, default: log, usage: Application activity sink (log or asynq)"`
	AllowedOrigins    string        `ff:"long: allowed-origins, usage: Comma separated origins allowed to open websockets (empty allows same host)"`
	BackgroundTimeout time.Duration `ff:"long: background-timeout, default: 15s, usage: Timeout for background fan-out and notifications"`
	BackfillInterval  time.Duration `ff:"long: backfill-interval, default: 0s, usage: Interval for the system wide backfill (0 disables it)"`
	ShutdownTimeout   time.Duration `ff:"long: shutdown-timeout, default: 10s, usage: Timeout for graceful shutdown"`
}

func (cfg Config) Origins() []string {
	var out []string
	for o := range strings.SplitSeq(cfg.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	fs := ff.NewFlagSetFrom("hirechat", &cfg)
	err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("HIRECHAT"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		os.Exit(0)
	}

	if err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	switch cfg.TokenFormat {
	case "branca":
		if len(cfg.TokenKey) != 32 {
			return errors.New("token-key must be 32 bytes long")
		}
	case "jwt":
		if cfg.JWTSecret == "" {
			return errors.New("jwt-secret is required for jwt tokens")
		}
	default:
		return fmt.Errorf("unknown token format %q", cfg.TokenFormat)
	}

	switch cfg.Broker {
	case "memory", "nats", "redis":
	default:
		return fmt.Errorf("unknown broker %q", cfg.Broker)
	}

	switch cfg.ActivityQueue {
	case "log", "asynq":
	default:
		return fmt.Errorf("unknown activity queue %q", cfg.ActivityQueue)
	}

	return nil
}
