package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/app/services"
	"github.com/yigit/coursereg/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func studentInput(req dto.StudentRequest) services.StudentInput {
	return services.StudentInput{
		RollNumber: req.RollNumber.String(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CourseIDs:  req.CourseIDs,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student, optionally enrolling it in the given courses
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} models.Student "Student created successfully"
// @Failure 400 {object} dto.ErrorDetail "Missing required field or unknown course"
// @Failure 409 {object} dto.ErrorDetail "Roll number already exists"
// @Failure 500 {object} dto.ErrorDetail "Internal server error"
// @Router /student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), studentInput(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageCreated)
	ctx.JSON(http.StatusCreated, student)
}

// GetAllStudents retrieves all students
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ErrorDetail "Internal server error"
// @Router /student [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageRequestSuccessful)
	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorDetail "Invalid student ID"
// @Failure 404 {object} dto.ErrorDetail "Student not found"
// @Router /student/{student_id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageRequestSuccessful)
	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent replaces a student's fields
// @Summary Update a student
// @Description Replaces every field of a student. When course_ids is present the student's enrollments are replaced too.
// @Tags students
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorDetail "Missing required field"
// @Failure 404 {object} dto.ErrorDetail "Student not found"
// @Failure 409 {object} dto.ErrorDetail "Roll number belongs to another student"
// @Router /student/{student_id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, studentInput(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageUpdated)
	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student and its enrollments
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorDetail "Student not found"
// @Router /student/{student_id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageDeleted)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MessageDeleted})
}
