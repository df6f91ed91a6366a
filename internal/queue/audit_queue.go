package queue

import (
	"context"

	"partylink/internal/model"
)

type Delivery struct {
	Data *model.AuditEntry
	Ack  func()
	Nack func(requeue bool)
}

type AuditQueue interface {
	// 發送異動紀錄到隊列
	PublishAudit(ctx context.Context, entry *model.AuditEntry) error
	// 訂閱異動紀錄隊列
	SubscribeAudit(ctx context.Context) (<-chan Delivery, error)
}

type AuditQueueImpl struct {
	// 使用 Go channel 的記憶體版隊列，測試與單機開發使用
	ch chan *model.AuditEntry
}

func NewAuditQueue(bufferSize int) AuditQueue {
	return &AuditQueueImpl{
		ch: make(chan *model.AuditEntry, bufferSize),
	}
}

func (q *AuditQueueImpl) PublishAudit(ctx context.Context, entry *model.AuditEntry) error {
	select {
	case q.ch <- entry:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *AuditQueueImpl) SubscribeAudit(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: entry,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// 非阻塞重回隊列，滿了就丟棄
							select {
							case q.ch <- entry:
							default:
							}
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
