package dto

// CourseRequest is the body of course create and update requests
type CourseRequest struct {
	CourseName        string  `json:"course_name" binding:"max=100" example:"CS101"`
	CourseCode        string  `json:"course_code" binding:"max=100" example:"C1"`
	CourseDescription *string `json:"course_description,omitempty" binding:"omitempty,max=100" example:"Introduction to programming"`
}
