package stream

import (
	"context"
	"strings"
	"time"

	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	// go-redis omits BLOCK for negative durations; zero would block forever.
	noBlock = -1

	fieldDeadLetterReason = "reason"
	fieldDeadLetterSource = "sourceId"
)

type Message struct {
	ID     string
	Values map[string]any
}

// Queue is a consumer-group reader over one Redis stream. All readers share
// one consumer name, so the pending list is shared between them too.
type Queue struct {
	client     redis.UniversalClient
	stream     string
	deadLetter string
	group      string
	consumer   string
}

func NewQueue(client redis.UniversalClient, cfg config.SeckillConfig) *Queue {
	return &Queue{
		client:     client,
		stream:     cfg.Stream,
		deadLetter: cfg.DeadLetter,
		group:      cfg.Group,
		consumer:   cfg.Consumer,
	}
}

// EnsureGroup creates the group at the start of the stream, so entries
// admitted before the first worker ever ran are still delivered.
func (q *Queue) EnsureGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return infra.WrapRepoErr("failed to create consumer group", err, infra.KindCacheFailure)
	}
	return nil
}

// ReadNew waits up to block for one never-delivered entry. It returns nil on
// timeout. A non-positive block polls without waiting; anything under a
// millisecond waits one millisecond.
func (q *Queue) ReadNew(ctx context.Context, block time.Duration) (*Message, error) {
	switch {
	case block <= 0:
		block = noBlock
	case block < time.Millisecond:
		// BLOCK is sent in whole milliseconds; rounding down to 0 would block forever
		block = time.Millisecond
	}
	return q.read(ctx, ">", block)
}

// ReadPending returns the oldest delivered-but-unacknowledged entry, or nil.
func (q *Queue) ReadPending(ctx context.Context) (*Message, error) {
	return q.read(ctx, "0", noBlock)
}

func (q *Queue) read(ctx context.Context, id string, block time.Duration) (*Message, error) {
	res, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: q.consumer,
		Streams:  []string{q.stream, id},
		Count:    1,
		Block:    block,
	}).Result()
	if errs.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read order stream", err, infra.KindCacheFailure)
	}
	for _, s := range res {
		if len(s.Messages) > 0 {
			m := s.Messages[0]
			return &Message{ID: m.ID, Values: m.Values}, nil
		}
	}
	return nil, nil
}

func (q *Queue) Ack(ctx context.Context, id string) error {
	if err := q.client.XAck(ctx, q.stream, q.group, id).Err(); err != nil {
		return infra.WrapRepoErr("failed to ack "+id, err, infra.KindCacheFailure)
	}
	return nil
}

// DeadLetter moves msg to the dead-letter stream and acknowledges it in one transaction.
func (q *Queue) DeadLetter(ctx context.Context, msg *Message, reason string) error {
	values := make(map[string]any, len(msg.Values)+2)
	for k, v := range msg.Values {
		values[k] = v
	}
	values[fieldDeadLetterReason] = reason
	values[fieldDeadLetterSource] = msg.ID

	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{Stream: q.deadLetter, Values: values})
		pipe.XAck(ctx, q.stream, q.group, msg.ID)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to dead-letter "+msg.ID, err, infra.KindCacheFailure)
	}
	return nil
}
