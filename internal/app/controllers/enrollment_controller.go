package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/app/services"
	"github.com/yigit/coursereg/internal/middleware"
)

// EnrollmentController handles enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetStudentEnrollments lists a student's enrollments
// @Summary List a student's enrollments
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} models.Enrollment
// @Failure 400 {object} dto.ErrorDetail "Student does not exist"
// @Failure 404 {object} dto.ErrorDetail "Student is not enrolled in any course"
// @Router /student/{student_id}/course [get]
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageRequestSuccessful)
	ctx.JSON(http.StatusOK, enrollments)
}

// Enroll enrolls a student in a course
// @Summary Enroll a student in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorDetail "Student or course does not exist"
// @Failure 409 {object} dto.ErrorDetail "Student is already enrolled in this course"
// @Router /student/{student_id}/course [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), studentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageCreated)
	ctx.JSON(http.StatusCreated, enrollment)
}

// Withdraw removes a student from a course
// @Summary Withdraw a student from a course
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorDetail "Student or course does not exist"
// @Failure 404 {object} dto.ErrorDetail "Enrollment for the student not found"
// @Router /student/{student_id}/course/{course_id} [delete]
func (c *EnrollmentController) Withdraw(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	courseID, ok := middleware.ParseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	if err := c.enrollmentService.Withdraw(ctx.Request.Context(), studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageDeleted)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MessageDeleted})
}

// GetCourseEnrollments lists the enrollments in a course
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} models.Enrollment
// @Failure 400 {object} dto.ErrorDetail "Course does not exist"
// @Failure 404 {object} dto.ErrorDetail "No students enrolled in this course"
// @Router /course/{course_id}/student [get]
func (c *EnrollmentController) GetCourseEnrollments(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetCourseEnrollments(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageRequestSuccessful)
	ctx.JSON(http.StatusOK, enrollments)
}
