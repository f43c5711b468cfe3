package dto

import (
	"airline/internal/domains/employee/model"
	gDto "airline/shared/dto"
	gModel "airline/shared/model"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100" example:"Carlos"`
	Email    string `json:"email"    validate:"required,email"         example:"carlos@airline.com"`
	Password string `json:"password" validate:"required,min=8"         example:"1234567890"`
}

func (c *CreateEmployeeRequest) ToModel(user, hashedPassword string) model.Employee {
	return model.Employee{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdateEmployeeRequest struct {
	ID       string `json:"id"                       validate:"required,uuid"`
	Name     string `json:"name"     db:"name"       validate:"required,min=1,max=100"`
	Email    string `json:"email"    db:"email"      validate:"required,email"`
	Password string `json:"password" db:"password"   validate:"required,min=8"`
}

type EmployeeResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Metadata gDto.Metadata `json:"metadata"`
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

func ToResponse(model model.Employee) EmployeeResponse {
	res := EmployeeResponse{}
	res.FromModel(model)

	return res
}

type GetEmployeesResponse = gDto.Page[EmployeeResponse]
