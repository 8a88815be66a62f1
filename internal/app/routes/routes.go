package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursereg/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	healthController *controllers.HealthController,
) {
	router.GET("/ping", healthController.Ping)

	api := router.Group("/api")
	api.GET("/health", healthController.Health)

	// Student routes, including the student's enrollments
	students := api.Group("/student")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:student_id", studentController.GetStudentByID)
		students.PUT("/:student_id", studentController.UpdateStudent)
		students.DELETE("/:student_id", studentController.DeleteStudent)

		students.GET("/:student_id/course", enrollmentController.GetStudentEnrollments)
		students.POST("/:student_id/course", enrollmentController.Enroll)
		students.DELETE("/:student_id/course/:course_id", enrollmentController.Withdraw)
	}

	// Course routes
	courses := api.Group("/course")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:course_id", courseController.GetCourseByID)
		courses.PUT("/:course_id", courseController.UpdateCourse)
		courses.DELETE("/:course_id", courseController.DeleteCourse)

		courses.GET("/:course_id/student", enrollmentController.GetCourseEnrollments)
	}
}
