package request

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required" example:"Carlos Souza"`
}
