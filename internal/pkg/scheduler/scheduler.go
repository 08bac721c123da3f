package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/config"
)

const (
	TypeExpireSlot = "slot:expire"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFuncs []func(ctx context.Context, t *asynq.Task) error) {
	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Password, DB: cfg.DB},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)

	mux := asynq.NewServeMux()
	for i, taskType := range taskTypes {
		mux.HandleFunc(taskType, handlerFuncs[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Ctx(context.Background()).Error(fmt.Sprintf("error running scheduler handler: %v", err))
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Password, DB: cfg.DB},
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		s.Log.Ctx(context.Background()).Error(fmt.Sprintf("error running scheduler monitoring: %v", err))
	}
}
