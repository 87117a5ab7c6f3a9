package author

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "bookcatalog/author"

// Service 作者信息聚合
// 设计说明:
// 1. 两个外部查询互不依赖,并发执行(errgroup),总耗时≈较慢的那个
// 2. 必须两个都返回后才合并结果,不返回部分结果
// 3. 任一查询失败即整体失败,不重试
// 4. 不校验入参,name为空由调用方处理
type Service interface {
	GetAuthorInfo(ctx context.Context, name string) (*Profile, error)
}

type service struct {
	works     WorkSearcher
	summaries SummaryFetcher
}

// NewService 创建作者信息聚合服务
func NewService(works WorkSearcher, summaries SummaryFetcher) Service {
	return &service{works: works, summaries: summaries}
}

func (s *service) GetAuthorInfo(ctx context.Context, name string) (*Profile, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "author.GetAuthorInfo")
	defer span.End()
	span.SetAttributes(attribute.String("author.name", name))

	var (
		work    *string
		summary string
	)

	// fan-out:各自写入独立变量,Wait之后才读取,无需加锁
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := s.works.MostKnownWork(gctx, name)
		if err != nil {
			return err
		}
		work = w
		return nil
	})
	g.Go(func() error {
		sm, err := s.summaries.ShortSummary(gctx, name)
		if err != nil {
			return err
		}
		summary = sm
		return nil
	})

	// join
	if err := g.Wait(); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Bool("author.found", work != nil))
	return &Profile{
		Name:          name,
		MostKnownWork: work,
		ShortSummary:  summary,
	}, nil
}
