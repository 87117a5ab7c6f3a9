package author

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 作者信息接口的错误消息
var (
	ErrNameRequired = apperrors.BadRequest("Author name not provided")
	ErrNoAuthorInfo = apperrors.NotFound("No information found for the specified author")
)

// GetAuthorInfoUseCase 作者信息聚合用例
// 设计说明:
// 1. 两个外部查询总是都执行(领域服务并发fan-out/join)
// 2. join之后只根据目录检索结果判定404:most_known_work为null即"没有该作者的信息"
// 3. 外部调用失败统一转换为500
type GetAuthorInfoUseCase struct {
	authorService author.Service
	logger        *zap.Logger
}

// NewGetAuthorInfoUseCase 创建作者信息用例
func NewGetAuthorInfoUseCase(authorService author.Service, logger *zap.Logger) *GetAuthorInfoUseCase {
	return &GetAuthorInfoUseCase{
		authorService: authorService,
		logger:        logger,
	}
}

// GetAuthorInfoResponse 作者信息响应DTO
type GetAuthorInfoResponse struct {
	AuthorName    string  `json:"author_name"`
	MostKnownWork *string `json:"most_known_work"`
	ShortSummary  string  `json:"short_summary"`
}

// Execute 执行作者信息聚合
func (uc *GetAuthorInfoUseCase) Execute(ctx context.Context, name string) (*GetAuthorInfoResponse, error) {
	// 1. 入参校验(聚合服务本身不校验)
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	// 2. 并发查询并合并
	profile, err := uc.authorService.GetAuthorInfo(ctx, name)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to fetch author information")
	}

	// 3. 目录检索没有结果
	if !profile.Found() {
		uc.logger.Debug("作者信息未找到", zap.String("author", name))
		return nil, ErrNoAuthorInfo
	}

	return &GetAuthorInfoResponse{
		AuthorName:    name,
		MostKnownWork: profile.MostKnownWork,
		ShortSummary:  profile.ShortSummary,
	}, nil
}
