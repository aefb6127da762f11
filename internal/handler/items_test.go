package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
)

// MockItemService mocks item.Service
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.MagicItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MagicItem), args.Error(1)
}

func (m *MockItemService) CreateItems(ctx context.Context, reqs []domain.CreateItemRequest) ([]domain.MagicItem, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MagicItem), args.Error(1)
}

func (m *MockItemService) GetAllItems(ctx context.Context) ([]domain.MagicItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MagicItem), args.Error(1)
}

func (m *MockItemService) GetItemByID(ctx context.Context, id int) (*domain.MagicItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MagicItem), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, id int, req domain.UpdateItemRequest) (*domain.MagicItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MagicItem), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, id int) (*domain.MagicItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MagicItem), args.Error(1)
}

func (m *MockItemService) AdjustStock(ctx context.Context, id, quantity int, dir domain.StockDirection) (*domain.MagicItem, error) {
	args := m.Called(ctx, id, quantity, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MagicItem), args.Error(1)
}

func (m *MockItemService) SearchItems(ctx context.Context, criteria domain.SearchCriteria) ([]domain.MagicItem, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MagicItem), args.Error(1)
}

func (m *MockItemService) GetInventoryStatistics(ctx context.Context) (*domain.InventoryStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryStatistics), args.Error(1)
}

// newItemsRouter mounts the item handlers the way the server does
func newItemsRouter(svc *MockItemService) http.Handler {
	r := chi.NewRouter()
	r.Route("/items", func(r chi.Router) {
		r.Get("/", HandleWelcome())
		r.Get("/all", HandleGetAllItems(svc))
		r.Get("/statistics", HandleGetStatistics(svc))
		r.Get("/search", HandleSearchItems(svc))
		r.Post("/create", HandleCreateItems(svc))
		r.Put("/update_item/{id}", HandleUpdateItem(svc))
		r.Delete("/delete/{id}", HandleDeleteItem(svc))
		r.Get("/{id}", HandleGetItem(svc))
		r.Post("/{id}/increase_stock", HandleAdjustStock(svc, domain.StockIncrease))
		r.Post("/{id}/decrease_stock", HandleAdjustStock(svc, domain.StockDecrease))
	})
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func sampleItem(id int, name string) *domain.MagicItem {
	return &domain.MagicItem{
		ID:             id,
		Name:           name,
		Value:          intPtr(100),
		Stock:          1,
		RarityValue:    12.5,
		RarityCategory: domain.RarityCommon,
		Weight:         2.5,
		Durability:     0.4,
	}
}

func TestHandleWelcome(t *testing.T) {
	w := serve(newItemsRouter(&MockItemService{}), http.MethodGet, "/items/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to my Magic Items inventory! "}`, w.Body.String())
}

func TestHandleCreateItems(t *testing.T) {
	t.Run("single object yields object", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("CreateItem", mock.Anything, domain.CreateItemRequest{Name: "Sword", Value: intPtr(100)}).
			Return(sampleItem(1, "Sword"), nil)

		w := serve(newItemsRouter(svc), http.MethodPost, "/items/create", `{"name":"Sword","value":100}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got domain.MagicItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.ID)
		assert.Equal(t, domain.RarityCommon, got.RarityCategory)
		svc.AssertExpectations(t)
	})

	t.Run("array yields array", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("CreateItems", mock.Anything, []domain.CreateItemRequest{{Name: "A"}, {Name: "B"}}).
			Return([]domain.MagicItem{*sampleItem(1, "A"), *sampleItem(2, "B")}, nil)

		w := serve(newItemsRouter(svc), http.MethodPost, "/items/create", "  \n[{\"name\":\"A\"},{\"name\":\"B\"}]")

		assert.Equal(t, http.StatusCreated, w.Code)
		var got []domain.MagicItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		svc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := &MockItemService{}

		w := serve(newItemsRouter(svc), http.MethodPost, "/items/create", `{"level":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Contains(t, resp.Fields, "name")
		assert.Contains(t, resp.Fields, "level")
		svc.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("validation failure inside array", func(t *testing.T) {
		svc := &MockItemService{}

		w := serve(newItemsRouter(svc), http.MethodPost, "/items/create", `[{"name":"ok"},{"stock":-2}]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "1.name")
		assert.Contains(t, resp.Fields, "1.stock")
		svc.AssertNotCalled(t, "CreateItems", mock.Anything, mock.Anything)
	})

	t.Run("malformed and empty bodies", func(t *testing.T) {
		svc := &MockItemService{}
		router := newItemsRouter(svc)

		w := serve(router, http.MethodPost, "/items/create", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serve(router, http.MethodPost, "/items/create", "   ")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEmptyRequestBody)
	})

	t.Run("database failure hides details", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("CreateItem", mock.Anything, mock.Anything).
			Return(nil, domain.NewDatabaseError("failed to insert item", errors.New("pq: secret detail")))

		w := serve(newItemsRouter(svc), http.MethodPost, "/items/create", `{"name":"Sword"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
		assert.Contains(t, w.Body.String(), ErrMsgDatabaseError)
	})
}

func TestHandleGetAllItems(t *testing.T) {
	svc := &MockItemService{}
	svc.On("GetAllItems", mock.Anything).Return([]domain.MagicItem{}, nil)

	w := serve(newItemsRouter(svc), http.MethodGet, "/items/all", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandleGetItem(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*MockItemService)
		wantStatus int
	}{
		{
			name: "found",
			path: "/items/1",
			setup: func(s *MockItemService) {
				s.On("GetItemByID", mock.Anything, 1).Return(sampleItem(1, "Sword"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/items/99",
			setup: func(s *MockItemService) {
				s.On("GetItemByID", mock.Anything, 99).Return(nil, domain.ErrItemNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-integer id",
			path:       "/items/abc",
			setup:      func(s *MockItemService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unclassified error",
			path: "/items/2",
			setup: func(s *MockItemService) {
				s.On("GetItemByID", mock.Anything, 2).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockItemService{}
			tt.setup(svc)

			w := serve(newItemsRouter(svc), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleUpdateItem(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc := &MockItemService{}
		want := domain.UpdateItemRequest{Level: intPtr(4)}
		svc.On("UpdateItem", mock.Anything, 1, want).Return(sampleItem(1, "Sword"), nil)

		w := serve(newItemsRouter(svc), http.MethodPut, "/items/update_item/1", `{"level":4,"name":null}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("UpdateItem", mock.Anything, 5, mock.Anything).Return(nil, domain.ErrItemNotFound)

		w := serve(newItemsRouter(svc), http.MethodPut, "/items/update_item/5", `{"name":"x"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid field", func(t *testing.T) {
		svc := &MockItemService{}

		w := serve(newItemsRouter(svc), http.MethodPut, "/items/update_item/5", `{"value":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleAdjustStock(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*MockItemService)
		wantStatus int
	}{
		{
			name: "increase",
			path: "/items/1/increase_stock?quantity=3",
			setup: func(s *MockItemService) {
				s.On("AdjustStock", mock.Anything, 1, 3, domain.StockIncrease).Return(sampleItem(1, "Sword"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "decrease",
			path: "/items/1/decrease_stock?quantity=2",
			setup: func(s *MockItemService) {
				s.On("AdjustStock", mock.Anything, 1, 2, domain.StockDecrease).Return(sampleItem(1, "Sword"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing item",
			path: "/items/8/increase_stock?quantity=1",
			setup: func(s *MockItemService) {
				s.On("AdjustStock", mock.Anything, 8, 1, domain.StockIncrease).Return(nil, domain.ErrItemNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{"missing quantity", "/items/1/increase_stock", func(*MockItemService) {}, http.StatusBadRequest},
		{"non-integer quantity", "/items/1/increase_stock?quantity=lots", func(*MockItemService) {}, http.StatusBadRequest},
		{"zero quantity", "/items/1/decrease_stock?quantity=0", func(*MockItemService) {}, http.StatusBadRequest},
		{"negative quantity", "/items/1/increase_stock?quantity=-4", func(*MockItemService) {}, http.StatusBadRequest},
		{"non-integer id", "/items/x/increase_stock?quantity=1", func(*MockItemService) {}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockItemService{}
			tt.setup(svc)

			w := serve(newItemsRouter(svc), http.MethodPost, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleDeleteItem(t *testing.T) {
	svc := &MockItemService{}
	svc.On("DeleteItem", mock.Anything, 1).Return(sampleItem(1, "Sword"), nil)
	svc.On("DeleteItem", mock.Anything, 2).Return(nil, domain.ErrItemNotFound)
	router := newItemsRouter(svc)

	w := serve(router, http.MethodDelete, "/items/delete/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string           `json:"message"`
		Data    domain.MagicItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, MsgItemDeleted, resp.Message)
	assert.Equal(t, "Sword", resp.Data.Name)

	w = serve(router, http.MethodDelete, "/items/delete/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSearchItems(t *testing.T) {
	t.Run("parses every filter", func(t *testing.T) {
		svc := &MockItemService{}
		want := domain.SearchCriteria{
			Name:     strPtr("Sword"),
			Category: strPtr("weapon"),
			MinLevel: intPtr(1),
			MaxValue: intPtr(500),
			MinStock: intPtr(0),
		}
		svc.On("SearchItems", mock.Anything, want).Return([]domain.MagicItem{*sampleItem(1, "Sword")}, nil)

		w := serve(newItemsRouter(svc), http.MethodGet,
			"/items/search?name=Sword&category=weapon&type=&min_level=1&max_value=500&min_stock=0", "")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("bad integer", func(t *testing.T) {
		svc := &MockItemService{}

		w := serve(newItemsRouter(svc), http.MethodGet, "/items/search?min_level=high", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "min_level")
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := &MockItemService{}
		svc.On("SearchItems", mock.Anything, mock.Anything).
			Return(nil, domain.SearchCriteria{MinStock: intPtr(5), MaxStock: intPtr(1)}.Validate())

		w := serve(newItemsRouter(svc), http.MethodGet, "/items/search?min_stock=5&max_stock=1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetStatistics(t *testing.T) {
	svc := &MockItemService{}
	svc.On("GetInventoryStatistics", mock.Anything).Return(&domain.InventoryStatistics{}, nil)

	w := serve(newItemsRouter(svc), http.MethodGet, "/items/statistics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total_items": 0,
		"total_stock": 0,
		"total_value": 0,
		"most_expensive_item": null,
		"cheapest_item": null,
		"most_stocked_item": null,
		"highest_level_item": null
	}`, w.Body.String())
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil", nil, http.StatusInternalServerError},
		{"not found", domain.ErrItemNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), domain.ErrItemNotFound), http.StatusNotFound},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"empty update", domain.ErrEmptyUpdate, http.StatusBadRequest},
		{"database", domain.NewDatabaseError("op", errors.New("x")), http.StatusInternalServerError},
		{"unknown", errors.New("?"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	t.Run("encodes payload with status", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondJSON(w, http.StatusCreated, SuccessResponse{Message: "ok"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
	})

	t.Run("unencodable payload becomes 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondJSON(w, http.StatusOK, map[string]any{"ch": make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}
