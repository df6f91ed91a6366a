package worker

import (
	"context"
	"fmt"

	"partylink/internal/queue"
	"partylink/internal/service"
	"partylink/pkg/logger"

	"go.uber.org/zap"
)

type AuditWorker interface {
	// 訂閱異動紀錄隊列並寫入資料庫
	Start(ctx context.Context) error
	// Done 在訂閱結束、最後一筆處理完後關閉
	Done() <-chan struct{}
}

type AuditWorkerImpl struct {
	service service.AuditService
	queue   queue.AuditQueue
	done    chan struct{}
}

func NewAuditWorker(service service.AuditService, queue queue.AuditQueue) AuditWorker {
	return &AuditWorkerImpl{
		service: service,
		queue:   queue,
		done:    make(chan struct{}),
	}
}

func (w *AuditWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeAudit(ctx)
	if err != nil {
		close(w.done)
		return fmt.Errorf("subscribe audit queue: %w", err)
	}

	go func() {
		defer close(w.done)
		log := logger.WithComponent("worker")

		for msg := range msgs {
			if err := w.service.Persist(ctx, msg.Data); err != nil {
				// 資料庫暫時失敗，交回隊列重試
				log.Warn("failed to persist audit entry",
					zap.String("action", string(msg.Data.Action)),
					zap.Error(err),
				)
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

func (w *AuditWorkerImpl) Done() <-chan struct{} {
	return w.done
}
