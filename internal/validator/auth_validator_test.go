package validator_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestValidateRegister(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		existing *model.User
		wantErr  string
	}{
		{"ok", "cashier01", "longenough", nil, ""},
		{"empty username", "", "longenough", nil, "required"},
		{"empty password", "cashier01", "", nil, "required"},
		{"username too short", "ab", "longenough", nil, "invalid username"},
		{"username bad chars", "cashier 01", "longenough", nil, "invalid username"},
		{"password too short", "cashier01", "short", nil, "password too short"},
		{"duplicate", "cashier01", "longenough", &model.User{ID: 1, Username: "cashier01"}, "already used"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := new(userRepoMock)
			users.On("FindByUsername", mock.Anything, mock.Anything).Return(tc.existing, nil).Maybe()

			v := validator.NewAuthValidator(users)
			err := v.ValidateRegister(context.Background(), tc.username, tc.password)

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			he, ok := usecase.AsHTTPError(err)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			assert.Contains(t, he.Message, tc.wantErr)
		})
	}
}

func TestValidateRegister_DuplicateIsConflict(t *testing.T) {
	users := new(userRepoMock)
	users.On("FindByUsername", mock.Anything, "cashier01").
		Return(&model.User{ID: 1, Username: "cashier01"}, nil)

	v := validator.NewAuthValidator(users)
	err := v.ValidateRegister(context.Background(), "cashier01", "longenough")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator(new(userRepoMock))

	assert.NoError(t, v.ValidateLogin(context.Background(), "cashier01", "whatever"))
	assert.Error(t, v.ValidateLogin(context.Background(), "", "whatever"))
	assert.Error(t, v.ValidateLogin(context.Background(), "cashier01", ""))
}
