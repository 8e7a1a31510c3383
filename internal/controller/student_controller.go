package controller

import (
	"net/http"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent godoc
// @Summary Register a student
// @Description Creates a student record with pending verification. The registration number must be unique.
// @Tags Students
// @Accept json
// @Produce json
// @Param student body dto.StudentCreateDTO true "Student biodata"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Registration number already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegisterStudent: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.studentService.RegisterStudent(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListStudents godoc
// @Summary List all students
// @Description Minified listing: name, email, registration number, branch, semester, verification status.
// @Tags Students
// @Produce json
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListStudentsByVerification godoc
// @Summary List students by verification status
// @Tags Students
// @Produce json
// @Param status path string true "pending | verified | rejected"
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/verification/{status} [get]
func (c *StudentController) ListStudentsByVerification(ctx *gin.Context) {
	students, err := c.studentService.ListStudentsByVerification(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListStudentsBySemester godoc
// @Summary List students by semester
// @Tags Students
// @Produce json
// @Param semester path string true "Semester"
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/semester/{semester} [get]
func (c *StudentController) ListStudentsBySemester(ctx *gin.Context) {
	students, err := c.studentService.ListStudentsBySemester(ctx.Request.Context(), ctx.Param("semester"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListStudentsByBranch godoc
// @Summary List students by branch
// @Tags Students
// @Produce json
// @Param branch path string true "Branch"
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/branch/{branch} [get]
func (c *StudentController) ListStudentsByBranch(ctx *gin.Context) {
	students, err := c.studentService.ListStudentsByBranch(ctx.Request.Context(), ctx.Param("branch"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListStudentsByBranchAndSemester godoc
// @Summary List students by branch and semester
// @Tags Students
// @Produce json
// @Param branch path string true "Branch"
// @Param semester path string true "Semester"
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/branch/{branch}/semester/{semester} [get]
func (c *StudentController) ListStudentsByBranchAndSemester(ctx *gin.Context) {
	students, err := c.studentService.ListStudentsByBranchAndSemester(ctx.Request.Context(), ctx.Param("branch"), ctx.Param("semester"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CountStudents godoc
// @Summary Count all students
// @Tags Students
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/count [get]
func (c *StudentController) CountStudents(ctx *gin.Context) {
	count, err := c.studentService.CountStudents(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// CountStudentsByVerification godoc
// @Summary Count students by verification status
// @Tags Students
// @Produce json
// @Param status path string true "pending | verified | rejected"
// @Success 200 {object} dto.CountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/count/{status} [get]
func (c *StudentController) CountStudentsByVerification(ctx *gin.Context) {
	count, err := c.studentService.CountStudentsByVerification(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetStudent godoc
// @Summary Get a student by id
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// GetStudentByEmail godoc
// @Summary Get a student by email
// @Tags Students
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/email/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// GetStudentByRegdNo godoc
// @Summary Get a student by registration number
// @Description The registration number is uppercased before lookup.
// @Tags Students
// @Produce json
// @Param regdNo path string true "Registration number"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/regdno/{regdNo} [get]
func (c *StudentController) GetStudentByRegdNo(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByRegdNo(ctx.Request.Context(), ctx.Param("regdNo"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// UpdateBioData godoc
// @Summary Replace a student's biodata
// @Description Replaces the embedded biodata record and resets verification to pending.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param bioData body dto.BioDataDTO true "New biodata"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/biodata [put]
func (c *StudentController) UpdateBioData(ctx *gin.Context) {
	var req dto.BioDataDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateBioData: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	count, err := c.studentService.UpdateBioData(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student updated"})
}

// UpdateVerification godoc
// @Summary Set a student's verification status
// @Description Accepts only pending, verified or rejected.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param status body dto.VerificationUpdateDTO true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/verification [put]
func (c *StudentController) UpdateVerification(ctx *gin.Context) {
	var req dto.VerificationUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateVerification: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	count, err := c.studentService.UpdateVerification(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student verification updated"})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	count, err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted"})
}
