package dto

// StudentRequest is the body of student create and update requests.
// Presence of required fields is checked by the service so every missing
// field can be reported at once; binding tags only bound lengths.
type StudentRequest struct {
	RollNumber FlexString `json:"roll_number" binding:"max=100" example:"A1"`
	FirstName  string     `json:"first_name" binding:"max=100" example:"Ada"`
	LastName   *string    `json:"last_name,omitempty" binding:"omitempty,max=100" example:"Lovelace"`
	// CourseIDs, when present, enrolls the student in exactly these courses
	CourseIDs []int64 `json:"course_ids,omitempty"`
}
