package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"airline/config"
	"airline/infras/jwt"
	jwtMocks "airline/infras/jwt/mocks"
	"airline/infras/otel/mocks"
	"airline/internal/domains/auth/model/dto"
	"airline/internal/domains/auth/service"
	employeeMocks "airline/internal/domains/employee/mocks"
	employeeModel "airline/internal/domains/employee/model"
	passengerMocks "airline/internal/domains/passenger/mocks"
	passengerModel "airline/internal/domains/passenger/model"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/password"
	passwordMocks "airline/shared/password/mocks"
)

type fixture struct {
	svc           service.Auth
	passengerRepo *passengerMocks.MockPassenger
	employeeRepo  *employeeMocks.MockEmployee
	hasher        *passwordMocks.MockHasher
	jwt           *jwtMocks.MockJWT
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		passengerRepo: passengerMocks.NewMockPassenger(ctrl),
		employeeRepo:  employeeMocks.NewMockEmployee(ctrl),
		hasher:        passwordMocks.NewMockHasher(ctrl),
		jwt:           jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.passengerRepo, f.employeeRepo, f.hasher, f.jwt, mocks.NewOtel())

	return f
}

func TestAuthService_PassengerLogin(t *testing.T) {
	req := dto.LoginRequest{Email: "isabel@example.com", Password: "1234567890"}
	stored := passengerModel.Passenger{ID: "p-1", Name: "Isabel", Email: "isabel@example.com", Password: "$2a$10$hash"}
	expiresAt := time.Now().Add(2 * time.Hour)

	tests := []struct {
		name        string
		setup       func(f fixture)
		wantOutcome dto.Outcome
		wantCode    int
	}{
		{
			name: "unknown email is not found",
			setup: func(f fixture) {
				f.passengerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(passengerModel.Passenger{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "wrong password is a sentinel",
			setup: func(f fixture) {
				f.passengerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.hasher.EXPECT().Matches("1234567890", "$2a$10$hash").Return(false)
			},
			wantOutcome: dto.OutcomeInvalidCredentials,
		},
		{
			name: "success issues a USER token",
			setup: func(f fixture) {
				f.passengerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.hasher.EXPECT().Matches("1234567890", "$2a$10$hash").Return(true)
				f.jwt.EXPECT().Issue("p-1", "isabel@example.com", constant.RoleUser).Return("token", nil)
				f.jwt.EXPECT().ExpirationOf("token").Return(expiresAt, nil)
			},
			wantOutcome: dto.OutcomeSuccess,
		},
		{
			name: "signing failure",
			setup: func(f fixture) {
				f.passengerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.hasher.EXPECT().Matches(gomock.Any(), gomock.Any()).Return(true)
				f.jwt.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("no secret"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.PassengerLogin(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, res.Outcome)

			if tt.wantOutcome == dto.OutcomeSuccess {
				assert.Equal(t, "Isabel", res.Name)
				assert.Equal(t, "token", res.Token)
			}
		})
	}
}

func TestAuthService_EmployeeLogin(t *testing.T) {
	f := newFixture(t)
	stored := employeeModel.Employee{ID: "e-1", Name: "Carlos", Email: "carlos@airline.com", Password: "$2a$10$hash"}

	f.employeeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
	f.hasher.EXPECT().Matches("1234567890", "$2a$10$hash").Return(true)
	f.jwt.EXPECT().Issue("e-1", "carlos@airline.com", constant.RoleAdmin).Return("token", nil)
	f.jwt.EXPECT().ExpirationOf("token").Return(time.Now().Add(time.Hour), nil)

	res, err := f.svc.EmployeeLogin(context.Background(), dto.LoginRequest{Email: "carlos@airline.com", Password: "1234567890"})
	require.NoError(t, err)
	assert.Equal(t, dto.OutcomeSuccess, res.Outcome)

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)

		f.employeeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employeeModel.Employee{}, nil)

		_, err := f.svc.EmployeeLogin(context.Background(), dto.LoginRequest{Email: "nobody@airline.com", Password: "x"})
		assert.EqualError(t, err, "Email not found.")
	})
}

func TestAuthService_PassengerRegister(t *testing.T) {
	req := dto.PassengerRegisterRequest{Name: "Isabel", Email: "isabel@example.com", Password: "1234567890", Phone: "+1987654321"}

	t.Run("email taken is a sentinel", func(t *testing.T) {
		f := newFixture(t)

		f.passengerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		res, err := f.svc.PassengerRegister(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeEmailTaken, res.Outcome)
		assert.Empty(t, res.Token)
	})

	t.Run("registers and logs in with a real token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		passengerRepo := passengerMocks.NewMockPassenger(ctrl)

		cfg := &config.Config{}
		cfg.App.Name = "airline"
		cfg.JWT.Secret = "test-secret"
		cfg.JWT.ExpireMin = 120

		tokens := jwt.New(cfg)
		svc := service.New(passengerRepo, employeeMocks.NewMockEmployee(ctrl), password.NewWithCost(4), tokens, mocks.NewOtel())

		var registered passengerModel.Passenger

		passengerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		passengerRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p passengerModel.Passenger) error {
				registered = p

				return nil
			})

		res, err := svc.PassengerRegister(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeSuccess, res.Outcome)
		assert.Equal(t, "Isabel", res.Name)
		assert.True(t, res.ExpiresAt.After(time.Now()))
		assert.NotEqual(t, "1234567890", registered.Password)

		claims, err := tokens.Validate(res.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.Subject)
		assert.Equal(t, constant.RoleUser, claims.Role)
	})
}

func TestAuthService_EmployeeRegister(t *testing.T) {
	req := dto.EmployeeRegisterRequest{Name: "Carlos", Email: "carlos@airline.com", Password: "1234567890"}

	t.Run("email taken is a sentinel", func(t *testing.T) {
		f := newFixture(t)

		f.employeeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		res, err := f.svc.EmployeeRegister(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeEmailTaken, res.Outcome)
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.employeeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.hasher.EXPECT().Hash("1234567890").Return("$2a$10$hash", nil)
		f.employeeRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.jwt.EXPECT().Issue(gomock.Any(), "carlos@airline.com", constant.RoleAdmin).Return("token", nil)
		f.jwt.EXPECT().ExpirationOf("token").Return(time.Now().Add(time.Hour), nil)

		res, err := f.svc.EmployeeRegister(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "token", res.Token)
	})
}
