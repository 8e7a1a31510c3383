package controller

import (
	"net/http"
	"strconv"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// CreateQuiz godoc
// @Summary Create a new quiz
// @Description Creates a quiz; only the title is required. Set notify=true to email verified students of the matching branch and semester.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz to create"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing title or malformed body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.CreateQuiz(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Lists quizzes in the minified shape, newest start date first. Optional semester/branch query filters.
// @Tags Quizzes
// @Produce json
// @Param semester query string false "Filter by semester"
// @Param branch query string false "Filter by branch"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	semester := ctx.Query("semester")
	branch := ctx.Query("branch")

	var (
		quizzes []dto.QuizSummaryDTO
		err     error
	)
	switch {
	case semester != "" && branch != "":
		quizzes, err = c.quizService.ListQuizzesBySemesterAndBranch(ctx.Request.Context(), semester, branch)
	case semester != "":
		quizzes, err = c.quizService.ListQuizzesBySemester(ctx.Request.Context(), semester)
	case branch != "":
		quizzes, err = c.quizService.ListQuizzesByBranch(ctx.Request.Context(), branch)
	default:
		quizzes, err = c.quizService.ListQuizzes(ctx.Request.Context())
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// ListQuizzesBySemesterAndBranch godoc
// @Summary List quizzes for a semester and branch
// @Tags Quizzes
// @Produce json
// @Param semester path string true "Semester"
// @Param branch path string true "Branch"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/semester/{semester}/branch/{branch} [get]
func (c *QuizController) ListQuizzesBySemesterAndBranch(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzesBySemesterAndBranch(ctx.Request.Context(), ctx.Param("semester"), ctx.Param("branch"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// ListQuizzesByTitle godoc
// @Summary List quizzes matching a title
// @Tags Quizzes
// @Produce json
// @Param title path string true "Quiz title"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/title/{title} [get]
func (c *QuizController) ListQuizzesByTitle(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzesByTitle(ctx.Request.Context(), ctx.Param("title"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// ListUpcomingQuizzes godoc
// @Summary List the most recent quizzes
// @Tags Quizzes
// @Produce json
// @Param limit query int false "Maximum quizzes to return" default(5)
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/upcoming [get]
func (c *QuizController) ListUpcomingQuizzes(ctx *gin.Context) {
	limit := int64(5)
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit"})
			return
		}
		limit = val
	}

	quizzes, err := c.quizService.ListUpcomingQuizzes(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// CountQuizzes godoc
// @Summary Count all quizzes
// @Tags Quizzes
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/count [get]
func (c *QuizController) CountQuizzes(ctx *gin.Context) {
	count, err := c.quizService.CountQuizzes(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Description Returns the full document including questions. Use ?minified=true to drop description and questions.
// @Tags Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Param minified query bool false "Return the minified shape"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	minified := ctx.Query("minified") == "true"

	quiz, err := c.quizService.GetQuiz(ctx.Request.Context(), ctx.Param("id"), minified)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Partial field merge; absent fields are left untouched and the id is immutable.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz body dto.QuizUpdateDTO true "Fields to merge"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	count, err := c.quizService.UpdateQuiz(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz updated successfully"})
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes the quiz document. Submissions referencing it are left in place.
// @Tags Quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	count, err := c.quizService.DeleteQuiz(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz deleted"})
}
