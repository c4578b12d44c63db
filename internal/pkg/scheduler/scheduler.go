package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"turf-booking-service/config"
	"turf-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeReconcileTransaction = "reconcile_transaction"
)

type ReconcilePayload struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

type Scheduler struct {
	Log log.Logger
	Cfg *config.SchedulerConfig
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig) {
	ctx := context.Background()
	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Password, DB: cfg.DB},
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+s.Cfg.MonitoringPort, mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// StartHandler blocks running the task server.
func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Password, DB: cfg.DB},
		asynq.Config{
			Concurrency: s.Cfg.Concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux.HandleFunc(taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Reconciler schedules settlement re-attempts.
type Reconciler struct {
	client   enqueuer
	maxRetry int
}

func NewReconciler(client *asynq.Client, maxRetry int) *Reconciler {
	return &Reconciler{client: client, maxRetry: maxRetry}
}

// ScheduleReconciliation enqueues one re-attempt per transaction id. An already queued
// task for the same id is not an error.
func (r *Reconciler) ScheduleReconciliation(ctx context.Context, transactionID string, delay time.Duration) error {
	payload, err := json.Marshal(ReconcilePayload{TransactionID: transactionID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReconcileTransaction, payload)
	_, err = r.client.EnqueueContext(ctx, task,
		asynq.ProcessIn(delay),
		asynq.MaxRetry(r.maxRetry),
		asynq.TaskID("reconcile:"+transactionID),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}
