package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/app/services"
	"github.com/yigit/coursereg/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

func courseInput(req dto.CourseRequest) services.CourseInput {
	return services.CourseInput{
		Name:        req.CourseName,
		Code:        req.CourseCode,
		Description: req.CourseDescription,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} models.Course
// @Failure 400 {object} dto.ErrorDetail "Missing required field"
// @Failure 409 {object} dto.ErrorDetail "Course code already exists"
// @Router /course [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), courseInput(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageCreated)
	ctx.JSON(http.StatusCreated, course)
}

// GetAllCourses retrieves all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /course [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageRequestSuccessful)
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorDetail "Course not found"
// @Router /course/{course_id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageRequestSuccessful)
	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse replaces a course's fields
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorDetail "Missing required field"
// @Failure 404 {object} dto.ErrorDetail "Course not found"
// @Failure 409 {object} dto.ErrorDetail "Course code belongs to another course"
// @Router /course/{course_id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, courseInput(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageUpdated)
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course and its enrollments
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorDetail "Course not found"
// @Router /course/{course_id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header(messageHeader, dto.MessageDeleted)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MessageDeleted})
}
