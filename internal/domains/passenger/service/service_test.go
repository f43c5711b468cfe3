package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"airline/config"
	"airline/infras/otel/mocks"
	passengerMocks "airline/internal/domains/passenger/mocks"
	"airline/internal/domains/passenger/model"
	"airline/internal/domains/passenger/model/dto"
	"airline/internal/domains/passenger/service"
	cacheMocks "airline/shared/cache/mocks"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	passwordMocks "airline/shared/password/mocks"
)

type fixture struct {
	svc    service.Passenger
	repo   *passengerMocks.MockPassenger
	hasher *passwordMocks.MockHasher
	cache  *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:   passengerMocks.NewMockPassenger(ctrl),
		hasher: passwordMocks.NewMockHasher(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.hasher, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func samplePassenger() model.Passenger {
	return model.Passenger{
		ID:       "p-1",
		Name:     "Isabel",
		Email:    "isabel@example.com",
		Password: "$2a$10$hash",
		Phone:    "+1987654321",
	}
}

func TestPassengerService_Create(t *testing.T) {
	req := dto.CreatePassengerRequest{
		Name:     "Isabel",
		Email:    "isabel@example.com",
		Password: "1234567890",
		Phone:    "+1987654321",
	}

	tests := []struct {
		name        string
		emailTaken  bool
		phoneTaken  bool
		hashErr     error
		insertErr   error
		wantMessage string
		wantKind    failure.Kind
	}{
		{name: "email taken", emailTaken: true, wantMessage: "Email already exists.", wantKind: failure.KindDataIntegrity},
		{name: "phone taken", phoneTaken: true, wantMessage: "Phone already exists.", wantKind: failure.KindDataIntegrity},
		{name: "hash failure", hashErr: errors.New("boom"), wantKind: failure.KindInternal},
		{name: "insert failure", insertErr: errors.New("db down"), wantKind: failure.KindInternal},
		{name: "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.emailTaken, nil)

			if !tt.emailTaken {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.phoneTaken, nil)
			}

			if !tt.emailTaken && !tt.phoneTaken {
				f.hasher.EXPECT().Hash("1234567890").Return("$2a$10$hash", tt.hashErr)
			}

			if !tt.emailTaken && !tt.phoneTaken && tt.hashErr == nil {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p model.Passenger) error {
						assert.Equal(t, "$2a$10$hash", p.Password)
						assert.Equal(t, "guest", p.CreatedBy)

						return tt.insertErr
					})
			}

			res, err := f.svc.Create(context.Background(), req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				if tt.wantMessage != "" {
					assert.EqualError(t, err, tt.wantMessage)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "isabel@example.com", res.Email)
			assert.NotNil(t, res.Metadata)
		})
	}
}

func TestPassengerService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Passenger{}, nil)

		_, err := f.svc.Get(context.Background(), "p-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Passenger not found with id p-9")
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(samplePassenger(), nil)

		res, err := f.svc.Get(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Isabel", res.Name)
		assert.Nil(t, res.Metadata)
	})
}

func TestPassengerService_Search(t *testing.T) {
	tests := []struct {
		name        string
		query       dto.ContactQuery
		found       bool
		wantWhere   string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "no criteria",
			query:       dto.ContactQuery{},
			wantCode:    http.StatusBadRequest,
			wantMessage: "At least one parameter (phone or email) must be provided.",
		},
		{
			name:      "phone wins over email",
			query:     dto.ContactQuery{Phone: "+1987654321", Email: "isabel@example.com"},
			found:     true,
			wantWhere: "(passengers.phone = :phone)",
		},
		{
			name:      "email only",
			query:     dto.ContactQuery{Email: "isabel@example.com"},
			found:     true,
			wantWhere: "(passengers.email = :email)",
		},
		{
			name:        "phone not found",
			query:       dto.ContactQuery{Phone: "+100"},
			wantWhere:   "(passengers.phone = :phone)",
			wantCode:    http.StatusNotFound,
			wantMessage: "Passenger not found with phone +100",
		},
		{
			name:        "email not found",
			query:       dto.ContactQuery{Email: "nobody@example.com"},
			wantWhere:   "(passengers.email = :email)",
			wantCode:    http.StatusNotFound,
			wantMessage: "Passenger not found with email nobody@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantWhere != "" {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Passenger, error) {
					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.wantWhere, where)

					if tt.found {
						return samplePassenger(), nil
					}

					return model.Passenger{}, nil
				})
			}

			res, err := f.svc.Search(context.Background(), tt.query)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.EqualError(t, err, tt.wantMessage)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "p-1", res.ID)
		})
	}
}

func TestPassengerService_SearchByName(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "LOWER(passengers.name) LIKE LOWER(:name)")
		assert.Equal(t, "%isa%", args["name"])

		return 1, nil
	})
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Passenger{samplePassenger()}, nil)

	res, err := f.svc.SearchByName(context.Background(), "isa", params)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Content, 1)
}

func TestPassengerService_Update(t *testing.T) {
	req := dto.UpdatePassengerRequest{
		ID:       "p-1",
		Name:     "Isabel M",
		Email:    "isabel@example.com",
		Password: "newpassword",
		Phone:    "+1987654321",
	}

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Passenger not found with id p-1")
	})

	t.Run("email held by another passenger", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			where, _ := filter.GetWhereClause()
			assert.Equal(t, "(passengers.email = :email AND passengers.id != :id)", where)

			return true, nil
		})

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Email already exists.")
	})

	t.Run("success stores the hash", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		f.hasher.EXPECT().Hash("newpassword").Return("$2a$10$new", nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "$2a$10$new", fields[model.FieldPassword])
				assert.Equal(t, "Isabel M", fields[model.FieldName])
				assert.NotContains(t, fields, model.FieldID)

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "reservation:*").Return(nil)
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(samplePassenger(), nil)

		res, err := f.svc.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "p-1", res.ID)
	})
}

func TestPassengerService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "p-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("restricted by reservations", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.DataIntegrity("Passenger is still referenced."))

		err := f.svc.Delete(context.Background(), "p-1")
		assert.True(t, failure.IsKind(err, failure.KindDataIntegrity))
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), "p-1"))
	})
}
