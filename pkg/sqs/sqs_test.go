package sqs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type fakeSQS struct {
	mu       sync.Mutex
	sent     []string
	batches  int
	deleted  []string
	inbox    []types.Message
	received chan struct{}
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	if aws.ToString(params.QueueName) == "missing" {
		return nil, errors.New("queue does not exist")
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/" + aws.ToString(params.QueueName))}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, aws.ToString(params.MessageBody))
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQS) SendMessageBatch(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches++
	out := &sqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		f.sent = append(f.sent, aws.ToString(entry.MessageBody))
		out.Successful = append(out.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return out, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	messages := f.inbox
	f.inbox = nil
	f.mu.Unlock()

	if len(messages) == 0 {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &sqs.ReceiveMessageOutput{Messages: messages}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSendMessageSerializesJSON(t *testing.T) {
	client := &fakeSQS{}
	if err := NewSender(client).SendMessage(context.Background(), "refresh", map[string]string{"city": "Paris"}); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if len(client.sent) != 1 || client.sent[0] != `{"city":"Paris"}` {
		t.Errorf("sent = %v", client.sent)
	}

	if err := NewSender(client).SendMessage(context.Background(), "missing", "x"); err == nil {
		t.Error("expected queue lookup error")
	}
}

func TestSendMessageBatchSplitsIntoTens(t *testing.T) {
	client := &fakeSQS{}
	messages := make([]BatchMessage, 23)
	for i := range messages {
		messages[i] = BatchMessage{MessageID: fmt.Sprintf("m%d", i), Body: map[string]int{"n": i}}
	}

	result, err := NewSender(client).SendMessageBatch(context.Background(), "refresh", messages)
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if client.batches != 3 {
		t.Errorf("batches = %d, want 3", client.batches)
	}
	if len(result.Successful) != 23 || len(result.Failed) != 0 {
		t.Errorf("result = %d ok / %d failed", len(result.Successful), len(result.Failed))
	}

	empty, err := NewSender(client).SendMessageBatch(context.Background(), "refresh", nil)
	if err != nil || len(empty.Successful) != 0 {
		t.Errorf("empty batch = %+v, %v", empty, err)
	}
}

func TestNewWorkerValidatesConfig(t *testing.T) {
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })
	tests := []struct {
		name   string
		config *WorkerConfig
	}{
		{"too many messages", &WorkerConfig{MaxNumberOfMessages: 11}},
		{"wait too long", &WorkerConfig{WaitTimeSeconds: 21}},
		{"negative pool", &WorkerConfig{PoolSize: -1}},
	}
	for _, tt := range tests {
		if _, err := NewWorker(context.Background(), &fakeSQS{}, "refresh", handler, tt.config); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	if _, err := NewWorker(context.Background(), &fakeSQS{}, "missing", handler, nil); err == nil {
		t.Error("expected queue lookup error")
	}
}

func TestWorkerDeletesOnlyHandledMessages(t *testing.T) {
	client := &fakeSQS{inbox: []types.Message{
		{MessageId: aws.String("1"), ReceiptHandle: aws.String("r1"), Body: aws.String("ok")},
		{MessageId: aws.String("2"), ReceiptHandle: aws.String("r2"), Body: aws.String("fail")},
		{MessageId: aws.String("3"), ReceiptHandle: aws.String("r3"), Body: aws.String("ok")},
	}}

	handler := HandlerFunc(func(_ context.Context, msg types.Message) error {
		if aws.ToString(msg.Body) == "fail" {
			return errors.New("boom")
		}
		return nil
	})

	worker, err := NewWorker(context.Background(), client, "refresh", handler, &WorkerConfig{PoolSize: 1})
	if err != nil {
		t.Fatalf("NewWorker() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	worker.Start(ctx)

	client.mu.Lock()
	defer client.mu.Unlock()
	sort.Strings(client.deleted)
	if len(client.deleted) != 2 || client.deleted[0] != "r1" || client.deleted[1] != "r3" {
		t.Errorf("deleted = %v, want [r1 r3]", client.deleted)
	}
}

func TestWorkerHealthCheck(t *testing.T) {
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })
	worker, err := NewWorker(context.Background(), &fakeSQS{}, "refresh", handler, &WorkerConfig{PoolSize: 2})
	if err != nil {
		t.Fatalf("NewWorker() error = %v", err)
	}

	if got := worker.HealthCheck(); got.Status != StatusDown {
		t.Errorf("stopped worker status = %s", got.Status)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for worker.HealthCheck().Status != StatusUp && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	health := worker.HealthCheck()
	if health.Status != StatusUp || health.Details["pool_size"] != "2" {
		t.Errorf("running worker health = %+v", health)
	}

	cancel()
	<-done
	if got := worker.HealthCheck(); got.Status != StatusDown {
		t.Errorf("cancelled worker status = %s", got.Status)
	}
}
