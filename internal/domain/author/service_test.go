package author

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workFunc func(ctx context.Context, name string) (*string, error)

func (f workFunc) MostKnownWork(ctx context.Context, name string) (*string, error) {
	return f(ctx, name)
}

type summaryFunc func(ctx context.Context, name string) (string, error)

func (f summaryFunc) ShortSummary(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

func strPtr(s string) *string { return &s }

func TestGetAuthorInfo_Merge(t *testing.T) {
	svc := NewService(
		workFunc(func(_ context.Context, name string) (*string, error) {
			assert.Equal(t, "Frank Herbert", name)
			return strPtr("Dune"), nil
		}),
		summaryFunc(func(_ context.Context, _ string) (string, error) {
			return "American science-fiction author.", nil
		}),
	)

	p, err := svc.GetAuthorInfo(context.Background(), "Frank Herbert")
	require.NoError(t, err)
	assert.True(t, p.Found())
	assert.Equal(t, "Frank Herbert", p.Name)
	assert.Equal(t, "Dune", *p.MostKnownWork)
	assert.Equal(t, "American science-fiction author.", p.ShortSummary)
}

func TestGetAuthorInfo_NotFoundStillFetchesSummary(t *testing.T) {
	var summaryCalled bool
	svc := NewService(
		workFunc(func(context.Context, string) (*string, error) { return nil, nil }),
		summaryFunc(func(context.Context, string) (string, error) {
			summaryCalled = true
			return SummaryNotFound, nil
		}),
	)

	p, err := svc.GetAuthorInfo(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.False(t, p.Found())
	assert.Equal(t, SummaryNotFound, p.ShortSummary)
	assert.True(t, summaryCalled)
}

// 两个查询都必须在对方返回之前启动,否则测试会超时
func TestGetAuthorInfo_RunsConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)
	bothStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(bothStarted)
	}()

	wait := func(ctx context.Context) error {
		started.Done()
		select {
		case <-bothStarted:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("lookups were not concurrent")
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	svc := NewService(
		workFunc(func(ctx context.Context, _ string) (*string, error) {
			if err := wait(ctx); err != nil {
				return nil, err
			}
			return strPtr("Emma"), nil
		}),
		summaryFunc(func(ctx context.Context, _ string) (string, error) {
			if err := wait(ctx); err != nil {
				return "", err
			}
			return "English novelist.", nil
		}),
	)

	p, err := svc.GetAuthorInfo(context.Background(), "Jane Austen")
	require.NoError(t, err)
	assert.Equal(t, "Emma", *p.MostKnownWork)
}

func TestGetAuthorInfo_ErrorPropagates(t *testing.T) {
	boom := errors.New("wikipedia: 503 Service Unavailable")
	svc := NewService(
		workFunc(func(context.Context, string) (*string, error) { return strPtr("Dune"), nil }),
		summaryFunc(func(context.Context, string) (string, error) { return "", boom }),
	)

	p, err := svc.GetAuthorInfo(context.Background(), "Frank Herbert")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, boom)
}
