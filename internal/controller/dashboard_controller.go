package controller

import (
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	Notifier         *service.LogNotifier
}

func NewDashboardController(dashboardService *service.DashboardService, notifier *service.LogNotifier) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, Notifier: notifier}
}

// @Summary 获取学习看板
// @Description 跨四个状态机聚合的只读概览
// @Tags 看板
// @Produce json
// @Success 200 {object} util.Response
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.DashboardService.GetDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// @Summary 获取最近提醒
// @Description 最近的番茄钟等提醒，新的在前
// @Tags 看板
// @Produce json
// @Success 200 {object} util.Response
// @Router /notifications [get]
func (c *DashboardController) GetNotifications(ctx *gin.Context) {
	util.Success(ctx, gin.H{"notifications": c.Notifier.Recent()})
}
