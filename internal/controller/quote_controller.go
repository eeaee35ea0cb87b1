package controller

import (
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	QuoteService *service.QuoteService
}

func NewQuoteController(quoteService *service.QuoteService) *QuoteController {
	return &QuoteController{QuoteService: quoteService}
}

// @Summary 获取当前名言
// @Description 获取当前展示的哲学名言，超过轮换周期时自动换一条
// @Tags 名言
// @Produce json
// @Success 200 {object} util.Response
// @Router /quote [get]
func (c *QuoteController) GetCurrentQuote(ctx *gin.Context) {
	quote, err := c.QuoteService.GetCurrentQuote()
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, quote)
}
