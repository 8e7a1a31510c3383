package controller

import (
	"net/http"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Records a submission for the quiz. A student may submit each quiz once.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param submission body dto.SubmissionCreateDTO true "Student id and answers"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Student already submitted this quiz"
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/quiz/{quizId} [post]
func (c *SubmissionController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmissionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.submissionService.SubmitQuiz(ctx.Request.Context(), ctx.Param("quizId"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSubmission godoc
// @Summary Get a submission by id
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	submission, err := c.submissionService.GetSubmission(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// ListSubmissionsByQuiz godoc
// @Summary List submissions for a quiz
// @Description Use ?minified=true to drop the answers payload from each submission.
// @Tags Submissions
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param minified query bool false "Return the minified shape"
// @Success 200 {array} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/quiz/{quizId} [get]
func (c *SubmissionController) ListSubmissionsByQuiz(ctx *gin.Context) {
	minified := ctx.Query("minified") == "true"

	submissions, err := c.submissionService.ListSubmissionsByQuiz(ctx.Request.Context(), ctx.Param("quizId"), minified)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// ListSubmissionsByStudent godoc
// @Summary List submissions by a student
// @Tags Submissions
// @Produce json
// @Param studentId path string true "Student ID"
// @Param minified query bool false "Return the minified shape"
// @Success 200 {array} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/student/{studentId} [get]
func (c *SubmissionController) ListSubmissionsByStudent(ctx *gin.Context) {
	minified := ctx.Query("minified") == "true"

	submissions, err := c.submissionService.ListSubmissionsByStudent(ctx.Request.Context(), ctx.Param("studentId"), minified)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// ListSubmissionsByQuizAndStudent godoc
// @Summary List a student's submissions for one quiz
// @Tags Submissions
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param studentId path string true "Student ID"
// @Success 200 {array} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/quiz/{quizId}/student/{studentId} [get]
func (c *SubmissionController) ListSubmissionsByQuizAndStudent(ctx *gin.Context) {
	submissions, err := c.submissionService.ListSubmissionsByQuizAndStudent(ctx.Request.Context(), ctx.Param("quizId"), ctx.Param("studentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// CountSubmissions godoc
// @Summary Count all submissions
// @Tags Submissions
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/count [get]
func (c *SubmissionController) CountSubmissions(ctx *gin.Context) {
	count, err := c.submissionService.CountSubmissions(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
