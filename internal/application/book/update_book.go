package book

import (
	"context"
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// UpdateBookUseCase 部分更新图书
// 设计说明:
// 1. 请求体是任意JSON对象,只接受title/author/summary/genre四个字符串字段
// 2. 存在性检查与UPDATE在同一个事务内,id不存在时返回404且不写入
// 3. 更新成功后发布book.updated事件
type UpdateBookUseCase struct {
	bookService book.Service
	txManager   *store.TxManager
	events      *event.Emitter
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, txManager *store.TxManager, events *event.Emitter) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		events:      events,
	}
}

// UpdateBookRequest 更新请求DTO
type UpdateBookRequest struct {
	ID     uint
	Fields map[string]interface{}
	// BodyErr 请求体无法解析为JSON对象时由接口层传入,存在性检查之后返回
	BodyErr error
}

// Execute 执行更新
// 错误优先级:404(图书不存在) > 400(字段非法) > 500(存储失败)
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) error {
	var (
		changes  book.Changes
		parseErr = req.BodyErr
	)
	if parseErr == nil {
		changes, parseErr = ParseChanges(req.Fields)
	}

	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if parseErr != nil {
			if err := uc.bookService.EnsureExists(ctx, req.ID); err != nil {
				return err
			}
			return parseErr
		}
		return uc.bookService.UpdateBook(ctx, req.ID, changes)
	})
	if err != nil {
		return apperrors.Internal(err, "Failed to update book")
	}

	uc.events.Emit(ctx, event.BookUpdated, event.BookPayload{
		BookID: req.ID,
		Fields: fieldNames(req.Fields),
	})
	return nil
}

// errNotString 字段值必须是JSON字符串
var errNotString = errors.New("must be a string")

var stringValue = validation.By(func(value interface{}) error {
	if _, ok := value.(string); !ok {
		return errNotString
	}
	return nil
})

// ParseChanges 将JSON对象转换为book.Changes
// 规则(ozzo-validation的Map规则):
// 1. 只允许title、author、summary、genre,出现其他键返回400
// 2. 值必须是字符串(null、数字、对象都拒绝)
// 3. 空对象与清空title/author由领域层判定
func ParseChanges(fields map[string]interface{}) (book.Changes, error) {
	err := validation.Validate(fields, validation.Map(
		validation.Key("title", stringValue).Optional(),
		validation.Key("author", stringValue).Optional(),
		validation.Key("summary", stringValue).Optional(),
		validation.Key("genre", stringValue).Optional(),
	))
	if err != nil {
		return book.Changes{}, apperrors.BadRequest(fmt.Sprintf("Invalid book fields: %s", err.Error()))
	}

	var changes book.Changes
	for key, value := range fields {
		s := value.(string)
		switch key {
		case "title":
			changes.Title = &s
		case "author":
			changes.Author = &s
		case "summary":
			changes.Summary = &s
		case "genre":
			changes.Genre = &s
		}
	}
	return changes, nil
}

func fieldNames(fields map[string]interface{}) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
