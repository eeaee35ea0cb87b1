package controller

import (
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	StreakService *service.StreakService
}

func NewStreakController(streakService *service.StreakService) *StreakController {
	return &StreakController{StreakService: streakService}
}

// @Summary 获取连续学习状态
// @Description 当前/最高连续天数与活动总数
// @Tags 连续学习
// @Produce json
// @Success 200 {object} util.Response
// @Router /streak [get]
func (c *StreakController) GetStreak(ctx *gin.Context) {
	state := c.StreakService.State()
	util.Success(ctx, gin.H{
		"currentStreak":    state.CurrentStreak,
		"highestStreak":    state.HighestStreak,
		"lastActivityDate": state.LastActivityDate,
		"totalActivities":  c.StreakService.TotalActivities(),
	})
}

// @Summary 获取活动日历
// @Description 全部有活动记录的日期及计数；带 date 参数时只查单日
// @Tags 连续学习
// @Produce json
// @Param date query string false "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /streak/calendar [get]
func (c *StreakController) GetCalendar(ctx *gin.Context) {
	if date := ctx.Query("date"); date != "" {
		if _, err := util.ParseDate(date); err != nil {
			util.BadRequest(ctx, "invalid date format, expected YYYY-MM-DD")
			return
		}
		activity, ok := c.StreakService.ActivityForDate(date)
		util.Success(ctx, gin.H{"date": date, "activity": activity, "recorded": ok})
		return
	}

	util.Success(ctx, gin.H{"calendar": c.StreakService.State().Calendar})
}

// @Summary 记录一次学习活动
// @Description 今日对应计数器加 count（默认 1）并重算连续天数
// @Tags 连续学习
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /streak/activity [post]
func (c *StreakController) RecordActivity(ctx *gin.Context) {
	var req struct {
		Kind  string `json:"kind" binding:"required"`
		Count int    `json:"count"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.StreakService.RecordActivity(req.Kind, req.Count); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.StreakService.State())
}

// @Summary 重置连续学习记录
// @Description 清空连续天数与整个日历
// @Tags 连续学习
// @Produce json
// @Success 200 {object} util.Response
// @Router /streak/reset [post]
func (c *StreakController) ResetStreak(ctx *gin.Context) {
	c.StreakService.ResetAll()
	util.Success(ctx, c.StreakService.State())
}
