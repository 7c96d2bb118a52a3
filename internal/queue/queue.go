// Package queue serializes concurrent coordination.Submission values
// through Redis before they ever reach pkg/coordination's pure
// Ledger.Record/IsDuplicate check. The core itself holds no queue and no
// lock (spec.md §5); this is where that discipline is enforced from the
// caller's side.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/northwood-systems/govkernel/pkg/coordination"
)

// FairnessQueue pushes submissions onto a Redis list in arrival order and
// pops them back off in the same order, giving the caller a single
// serialized stream to feed into coordination.Ledger.Record one at a
// time.
type FairnessQueue struct {
	client *redis.Client
	key    string
}

// NewFairnessQueue wraps an already-configured Redis client, queuing
// under key.
func NewFairnessQueue(client *redis.Client, key string) *FairnessQueue {
	return &FairnessQueue{client: client, key: key}
}

// Push enqueues a submission for later, ordered processing.
func (q *FairnessQueue) Push(ctx context.Context, sub coordination.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	if err := q.client.RPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("queue push: %w", err)
	}
	return nil
}

// Pop blocks until a submission is available (or ctx is done) and
// returns the oldest one still queued.
func (q *FairnessQueue) Pop(ctx context.Context) (coordination.Submission, error) {
	result, err := q.client.BLPop(ctx, 0, q.key).Result()
	if err != nil {
		return coordination.Submission{}, fmt.Errorf("queue pop: %w", err)
	}
	if len(result) != 2 {
		return coordination.Submission{}, fmt.Errorf("queue pop: unexpected result shape")
	}

	var sub coordination.Submission
	if err := json.Unmarshal([]byte(result[1]), &sub); err != nil {
		return coordination.Submission{}, fmt.Errorf("unmarshal submission: %w", err)
	}
	return sub, nil
}

// Len reports how many submissions are currently queued.
func (q *FairnessQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("queue len: %w", err)
	}
	return n, nil
}
