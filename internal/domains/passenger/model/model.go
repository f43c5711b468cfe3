package model

import "airline/shared/model"

const (
	TableName  = "passengers"
	EntityName = "passenger"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
)

type Passenger struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Phone    string `db:"phone"`
	model.Metadata
}
