package controller

import (
	"studytrack_backend/internal/model"
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PomodoroController struct {
	PomodoroService *service.PomodoroService
}

func NewPomodoroController(pomodoroService *service.PomodoroService) *PomodoroController {
	return &PomodoroController{PomodoroService: pomodoroService}
}

// @Summary 获取番茄钟状态
// @Description 当前阶段、剩余秒数、运行标志与配置
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /pomodoro/state [get]
func (c *PomodoroController) GetState(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"state":    c.PomodoroService.State(),
		"settings": c.PomodoroService.Settings(),
	})
}

// @Summary 启动计时
// @Description 只翻转运行标志，不改变阶段与剩余时间
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /pomodoro/start [post]
func (c *PomodoroController) Start(ctx *gin.Context) {
	util.Success(ctx, c.PomodoroService.Start())
}

// @Summary 暂停计时
// @Description 只翻转运行标志，不改变阶段与剩余时间
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /pomodoro/pause [post]
func (c *PomodoroController) Pause(ctx *gin.Context) {
	util.Success(ctx, c.PomodoroService.Pause())
}

// @Summary 重置计时
// @Description 剩余时间重置为当前阶段的配置时长并暂停，完成节数不变
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /pomodoro/reset [post]
func (c *PomodoroController) Reset(ctx *gin.Context) {
	util.Success(ctx, c.PomodoroService.Reset())
}

// @Summary 更新番茄钟配置
// @Description 暂停且变更时长属于当前阶段时立即生效，否则下次切换生效
// @Tags 番茄钟
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /pomodoro/settings [put]
func (c *PomodoroController) UpdateSettings(ctx *gin.Context) {
	var req model.PomodoroSettings

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PomodoroService.UpdateSettings(req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{
		"state":    c.PomodoroService.State(),
		"settings": c.PomodoroService.Settings(),
	})
}
