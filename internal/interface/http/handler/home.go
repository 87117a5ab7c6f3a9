package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// Home 根路径
// @Summary  根路径
// @Tags     系统
// @Produce  plain
// @Success  200 {string} string "Hello world"
// @Router   / [get]
func Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello world")
}

// Ping 健康检查
// @Summary  健康检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} dto.PingResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	response.OK(c, dto.PingResponse{Message: "pong", Status: "healthy"})
}
