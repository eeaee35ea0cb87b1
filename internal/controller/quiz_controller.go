package controller

import (
	"errors"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/service"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary 获取每日测验
// @Description 返回今日题目、作答向量与完成状态，题目当日内稳定
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /quiz/daily [get]
func (c *QuizController) GetDailyQuiz(ctx *gin.Context) {
	questions, err := c.QuizService.DailyQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions":      questions,
		"answers":        c.QuizService.SelectedAnswers(),
		"completedToday": c.QuizService.IsDailyQuizCompletedToday(),
		"lastScore":      c.QuizService.LastDailyScore(),
	})
}

// @Summary 提交单题作答
// @Description 幂等写入作答向量，重复提交覆盖之前的选择
// @Tags 测验
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /quiz/daily/answer [post]
func (c *QuizController) SelectAnswer(ctx *gin.Context) {
	var req struct {
		QuestionIndex *int `json:"questionIndex" binding:"required"`
		OptionIndex   *int `json:"optionIndex" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizService.SelectAnswer(*req.QuestionIndex, *req.OptionIndex); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"answers": c.QuizService.SelectedAnswers()})
}

// @Summary 完成每日测验
// @Description 按当前作答计分并盖上今日完成戳
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /quiz/daily/complete [post]
func (c *QuizController) CompleteDailyQuiz(ctx *gin.Context) {
	questions, err := c.QuizService.DailyQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	score, correct := service.ComputeScore(questions, c.QuizService.SelectedAnswers())
	c.QuizService.CompleteDailyQuiz(score)

	util.Success(ctx, gin.H{
		"score":        score,
		"correctCount": correct,
		"totalCount":   len(questions),
	})
}

// @Summary 获取自建测验列表
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /quiz/custom [get]
func (c *QuizController) ListCustomQuizzes(ctx *gin.Context) {
	util.Success(ctx, gin.H{"quizzes": c.QuizService.CustomQuizzes()})
}

// @Summary 创建自建测验
// @Description 题目在创建时快照，之后题库变更不影响已建测验
// @Tags 测验
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /quiz/custom [post]
func (c *QuizController) CreateCustomQuiz(ctx *gin.Context) {
	var req struct {
		Title     string               `json:"title" binding:"required,min=1,max=100"`
		Questions []model.QuizQuestion `json:"questions" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateCustomQuiz(req.Title, req.Questions)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, quiz)
}

// @Summary 删除自建测验
// @Description 测验及其全部成绩历史一并删除，不可恢复
// @Tags 测验
// @Produce json
// @Param id path string true "测验ID"
// @Success 200 {object} util.Response
// @Router /quiz/custom/{id} [delete]
func (c *QuizController) DeleteCustomQuiz(ctx *gin.Context) {
	if err := c.QuizService.DeleteCustomQuiz(ctx.Param("id")); err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "quiz deleted"})
}

// @Summary 记录测验成绩
// @Description 向指定测验的成绩历史追加一条记录
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path string true "测验ID"
// @Success 201 {object} util.Response
// @Router /quiz/custom/{id}/attempts [post]
func (c *QuizController) RecordAttempt(ctx *gin.Context) {
	var req struct {
		Score        int `json:"score" binding:"min=0,max=100"`
		CorrectCount int `json:"correctCount" binding:"min=0"`
		TotalCount   int `json:"totalCount" binding:"required,min=1"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.RecordAttempt(ctx.Param("id"), req.Score, req.CorrectCount, req.TotalCount)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, attempt)
}

// @Summary 测验成绩统计
// @Description 最高分、平均分与次数，由成绩历史现算
// @Tags 测验
// @Produce json
// @Param id path string true "测验ID"
// @Success 200 {object} util.Response
// @Router /quiz/custom/{id}/stats [get]
func (c *QuizController) GetAttemptStats(ctx *gin.Context) {
	stats, err := c.QuizService.AttemptStats(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, stats)
}
