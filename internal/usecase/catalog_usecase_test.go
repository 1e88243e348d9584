package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogLoad(t *testing.T) {
	menu := new(MenuRepoMock)
	uc := usecase.NewCatalogUsecase(menu)

	// repoが返す名前昇順をそのまま保持する
	items := []model.MenuItem{
		{ID: 3, Name: "Burger", Price: 5.00},
		{ID: 1, Name: "Fries", Price: 2.50},
		{ID: 2, Name: "Shake", Price: 3.25},
	}
	menu.On("ListByName", mock.Anything).Return(items, nil)

	cat, err := uc.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, items, cat.Items)

	got, ok := cat.Find(2)
	assert.True(t, ok)
	assert.Equal(t, "Shake", got.Name)

	_, ok = cat.Find(999)
	assert.False(t, ok)
}

func TestCatalogLoad_EmptyMenu(t *testing.T) {
	menu := new(MenuRepoMock)
	uc := usecase.NewCatalogUsecase(menu)

	menu.On("ListByName", mock.Anything).Return([]model.MenuItem{}, nil)

	cat, err := uc.Load(context.Background())

	// 空メニューは読み取り成功。選択時にinvalidになるだけ。
	assert.NoError(t, err)
	assert.Empty(t, cat.Items)
}

func TestCatalogLoad_ReadFailure(t *testing.T) {
	menu := new(MenuRepoMock)
	uc := usecase.NewCatalogUsecase(menu)

	menu.On("ListByName", mock.Anything).Return(nil, errors.New("relation menu does not exist"))

	_, err := uc.Load(context.Background())

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Contains(t, he.Message, "could not fetch menu data")
	assert.Contains(t, he.Message, "relation menu does not exist")
}
