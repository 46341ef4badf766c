package dto

type RegisterUserRequest struct {
	DisplayName string `json:"displayName" validate:"max=100"`
}
