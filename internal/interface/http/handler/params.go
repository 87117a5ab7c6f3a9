package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// parseID 解析路径中的整数ID,非法时返回400
func parseID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, apperrors.BadRequest(fmt.Sprintf("Invalid book ID: %q", raw))
	}
	return uint(id), nil
}

// bindError 将JSON绑定错误转换为400
// 对象中某个字段类型不对时指出字段名,其余情况(非对象、语法错误、空请求体)统一为ErrInvalidJSON
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.BadRequest(fmt.Sprintf("Invalid type for field %q: expected %s", typeErr.Field, typeErr.Type))
	}
	return apperrors.ErrInvalidJSON
}
