package model

import "airline/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

type Employee struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	model.Metadata
}
