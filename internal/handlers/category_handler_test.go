package handlers

import (
	"net/http"
	"testing"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
)

func setupCategoryRouter(svc services.CategoryServicer, userID uint) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	handler := NewCategoryHandler(svc, noopAudit{})

	group := router.Group("/api/categories", injectUserID(userID))
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
	return router
}

func TestCategoryHandler_Create(t *testing.T) {
	svc := &mockCategoryService{
		createFn: func(userID uint, input services.CategoryInput) (*models.Category, error) {
			cat := &models.Category{UserID: userID, Name: input.Name, Color: input.Color}
			cat.ID = 1
			return cat, nil
		},
	}
	router := setupCategoryRouter(svc, 42)

	w := doRequest(t, router, http.MethodPost, "/api/categories", gin.H{"name": "Groceries"})
	assertStatus(t, w, http.StatusOK)

	var resp CategoryResponse
	parseJSON(t, w, &resp)
	if resp.Name != "Groceries" {
		t.Errorf("expected Groceries, got %s", resp.Name)
	}
	if resp.Color != models.DefaultCategoryColor {
		t.Errorf("expected default color, got %s", resp.Color)
	}
	if resp.UserID != 42 {
		t.Errorf("expected owner 42, got %d", resp.UserID)
	}
}

func TestCategoryHandler_Create_OwnerFieldIgnored(t *testing.T) {
	svc := &mockCategoryService{
		createFn: func(userID uint, input services.CategoryInput) (*models.Category, error) {
			cat := &models.Category{UserID: userID, Name: input.Name, Color: input.Color}
			cat.ID = 1
			return cat, nil
		},
	}
	router := setupCategoryRouter(svc, 42)

	// A client-supplied user_id must not override the authenticated owner.
	w := doRequest(t, router, http.MethodPost, "/api/categories", gin.H{
		"name": "Sneaky", "user_id": 7,
	})
	assertStatus(t, w, http.StatusOK)

	var resp CategoryResponse
	parseJSON(t, w, &resp)
	if resp.UserID != 42 {
		t.Errorf("expected owner 42, got %d", resp.UserID)
	}
}

func TestCategoryHandler_Create_Validation(t *testing.T) {
	svc := &mockCategoryService{}
	router := setupCategoryRouter(svc, 42)

	w := doRequest(t, router, http.MethodPost, "/api/categories", gin.H{"color": "#fff"})
	assertErrorCode(t, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	w = doRequest(t, router, http.MethodPost, "/api/categories", gin.H{"name": "X", "color": "red"})
	assertErrorCode(t, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestCategoryHandler_List(t *testing.T) {
	var gotParams pagination.Params
	svc := &mockCategoryService{
		listFn: func(userID uint, params pagination.Params) ([]models.Category, error) {
			gotParams = params
			return []models.Category{
				{UserID: userID, Name: "A", Color: "#111111"},
				{UserID: userID, Name: "B", Color: "#222222"},
			}, nil
		},
	}
	router := setupCategoryRouter(svc, 42)

	w := doRequest(t, router, http.MethodGet, "/api/categories", nil)
	assertStatus(t, w, http.StatusOK)

	if gotParams.Skip != 0 || gotParams.Limit != pagination.DefaultLimit {
		t.Errorf("expected default pagination, got %+v", gotParams)
	}

	var resp []CategoryResponse
	parseJSON(t, w, &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resp))
	}

	w = doRequest(t, router, http.MethodGet, "/api/categories?skip=5&limit=10", nil)
	assertStatus(t, w, http.StatusOK)
	if gotParams.Skip != 5 || gotParams.Limit != 10 {
		t.Errorf("expected skip=5 limit=10, got %+v", gotParams)
	}
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	svc := &mockCategoryService{
		getByIDFn: func(userID, id uint) (*models.Category, error) {
			return nil, apperrors.ErrCategoryNotFound
		},
	}
	router := setupCategoryRouter(svc, 42)

	w := doRequest(t, router, http.MethodGet, "/api/categories/99", nil)
	assertErrorCode(t, w, http.StatusNotFound, "CATEGORY_NOT_FOUND")
}

func TestCategoryHandler_Get_InvalidID(t *testing.T) {
	svc := &mockCategoryService{}
	router := setupCategoryRouter(svc, 42)

	w := doRequest(t, router, http.MethodGet, "/api/categories/abc", nil)
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
}

func TestCategoryHandler_Update_DefaultColorReapplied(t *testing.T) {
	var gotInput services.CategoryInput
	svc := &mockCategoryService{
		updateFn: func(userID, id uint, input services.CategoryInput) (*models.Category, error) {
			gotInput = input
			cat := &models.Category{UserID: userID, Name: input.Name, Color: input.Color}
			cat.ID = id
			return cat, nil
		},
	}
	router := setupCategoryRouter(svc, 42)

	// Replacement without a color must reset it to the default, not keep
	// the stored value.
	w := doRequest(t, router, http.MethodPut, "/api/categories/7", gin.H{"name": "Renamed"})
	assertStatus(t, w, http.StatusOK)

	if gotInput.Color != models.DefaultCategoryColor {
		t.Errorf("expected default color in replacement input, got %s", gotInput.Color)
	}
}

func TestCategoryHandler_Delete(t *testing.T) {
	svc := &mockCategoryService{
		deleteFn: func(userID, id uint) error { return nil },
	}
	router := setupCategoryRouter(svc, 42)

	w := doRequest(t, router, http.MethodDelete, "/api/categories/7", nil)
	assertStatus(t, w, http.StatusOK)

	var resp map[string]string
	parseJSON(t, w, &resp)
	if resp["message"] != "Category deleted successfully" {
		t.Errorf("unexpected message %q", resp["message"])
	}
}
