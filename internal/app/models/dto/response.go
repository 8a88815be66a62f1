package dto

// Messages sent in the X-Message header of successful responses
const (
	MessageRequestSuccessful = "Request Successful"
	MessageCreated           = "Successfully Created"
	MessageUpdated           = "Successfully updated"
	MessageDeleted           = "Successfully Deleted"
)

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Successfully Deleted"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
