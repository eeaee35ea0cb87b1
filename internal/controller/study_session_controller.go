package controller

import (
	"errors"

	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudySessionController struct {
	StudyService *service.StudySessionService
}

func NewStudySessionController(studyService *service.StudySessionService) *StudySessionController {
	return &StudySessionController{StudyService: studyService}
}

// @Summary 获取学习会话
// @Description 返回当前过滤条件下的卡片视图、游标与进度
// @Tags 学习卡片
// @Produce json
// @Success 200 {object} util.Response
// @Router /study/session [get]
func (c *StudySessionController) GetSession(ctx *gin.Context) {
	view, err := c.StudyService.Session()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取过滤后的卡片
// @Description 依次应用类别、难度、模式过滤后的卡片序列，可能为空
// @Tags 学习卡片
// @Produce json
// @Success 200 {object} util.Response
// @Router /study/cards [get]
func (c *StudySessionController) GetFilteredCards(ctx *gin.Context) {
	cards, err := c.StudyService.FilteredView()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"cards": cards, "total": len(cards)})
}

// @Summary 下一张卡片
// @Description 游标前进一张，越过末尾回绕到第一张；空视图为空操作
// @Tags 学习卡片
// @Produce json
// @Success 200 {object} util.Response
// @Router /study/next [post]
func (c *StudySessionController) NextCard(ctx *gin.Context) {
	card, err := c.StudyService.Next()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"card": card, "cursor": c.StudyService.Progress().Cursor})
}

// @Summary 上一张卡片
// @Description 游标后退一张，越过开头跳到最后一张；空视图为空操作
// @Tags 学习卡片
// @Produce json
// @Success 200 {object} util.Response
// @Router /study/previous [post]
func (c *StudySessionController) PreviousCard(ctx *gin.Context) {
	card, err := c.StudyService.Previous()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"card": card, "cursor": c.StudyService.Progress().Cursor})
}

// @Summary 设置过滤条件
// @Description 更新类别/难度/学习模式，任一变更都会将游标归零
// @Tags 学习卡片
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /study/filters [put]
func (c *StudySessionController) UpdateFilters(ctx *gin.Context) {
	var req struct {
		Category   *string `json:"category"`
		Difficulty *string `json:"difficulty"`
		Mode       *string `json:"mode"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Category != nil {
		if err := c.StudyService.SetCategoryFilter(*req.Category); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}
	if req.Difficulty != nil {
		if err := c.StudyService.SetDifficultyFilter(*req.Difficulty); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}
	if req.Mode != nil {
		if err := c.StudyService.SetMode(*req.Mode); err != nil {
			if errors.Is(err, util.ErrInvalidMode) {
				util.BadRequest(ctx, err.Error())
				return
			}
			util.LogInternalError(ctx, err)
			return
		}
	}

	util.Success(ctx, c.StudyService.Progress())
}

// @Summary 标记已掌握
// @Description 卡片移入已掌握集合并从复习集合移除
// @Tags 学习卡片
// @Produce json
// @Param id path string true "卡片ID"
// @Success 200 {object} util.Response
// @Router /study/cards/{id}/master [post]
func (c *StudySessionController) MarkMastered(ctx *gin.Context) {
	if err := c.StudyService.MarkMastered(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrCardNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, c.StudyService.Progress())
}

// @Summary 标记待复习
// @Description 卡片移入复习集合并从已掌握集合移除
// @Tags 学习卡片
// @Produce json
// @Param id path string true "卡片ID"
// @Success 200 {object} util.Response
// @Router /study/cards/{id}/review [post]
func (c *StudySessionController) MarkForReview(ctx *gin.Context) {
	if err := c.StudyService.MarkForReview(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrCardNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, c.StudyService.Progress())
}

// @Summary 重置学习进度
// @Description 清空掌握/复习集合并将游标归零，过滤条件不变
// @Tags 学习卡片
// @Produce json
// @Success 200 {object} util.Response
// @Router /study/reset [post]
func (c *StudySessionController) ResetProgress(ctx *gin.Context) {
	c.StudyService.ResetProgress()
	util.Success(ctx, c.StudyService.Progress())
}
