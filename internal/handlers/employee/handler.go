package employee

import (
	"airline/infras/otel"
	"airline/internal/domains/employee/model/dto"
	"airline/internal/domains/employee/service"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/validator"
	"airline/transport/http/request"
	"airline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/byEmail", handler.GetEmployeeByEmail)
		routerGroup.Get("/byName", handler.SearchByName)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Put("/", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetEmployees lists employees page by page.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse]
// @Router /api/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	employees, err := handler.service.GetAll(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to get employees")

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 404 {object} response.Error
// @Router /api/employees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid employee id")

		return
	}

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get employee by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// GetEmployeeByEmail retrieves an employee by email.
// @Summary Get an employee by email
// @Tags Employee
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 404 {object} response.Error
// @Router /api/employees/byEmail [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByEmail")
	defer scope.End()

	email, err := request.Required(r, "email")
	if err != nil {
		handler.fail(w, scope, err, "missing email")

		return
	}

	employee, err := handler.service.GetByEmail(ctx, email)
	if err != nil {
		handler.fail(w, scope, err, "failed to get employee by email")

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// SearchByName lists employees whose name contains the given text.
// @Summary Search employees by name
// @Tags Employee
// @Produce json
// @Param name query string true "Name"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse]
// @Router /api/employees/byName [get]
// @Security BearerAuth
func (handler *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchEmployeesByName")
	defer scope.End()

	name, err := request.Required(r, "name")
	if err != nil {
		handler.fail(w, scope, err, "missing name")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	employees, err := handler.service.SearchByName(ctx, name, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search employees by name")

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// CreateEmployee handles the creation of a new employee.
// @Summary Create a new employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	employee, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create employee")

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithJSON(w, http.StatusCreated, employee)
}

// UpdateEmployee replaces the employee identified in the body.
// @Summary Update an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.UpdateEmployeeRequest true "Employee"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/employees [put]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	req := dto.UpdateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	employee, err := handler.service.Update(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update employee")

		return
	}

	scope.AddEvent("Employee updated successfully")

	response.WithJSON(w, http.StatusOK, employee)
}

// DeleteEmployee deletes an employee.
// @Summary Delete an employee
// @Tags Employee
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /api/employees/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid employee id")

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to delete employee")

		return
	}

	scope.AddEvent("Employee deleted successfully")

	response.WithNoContent(w)
}
