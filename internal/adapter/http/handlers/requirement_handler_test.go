package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buildconnect/internal/adapter/http/handlers/mocks"
	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase"
	"buildconnect/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// asActor injects an authenticated caller the way the auth middleware does.
func asActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func homeownerActor() entities.Actor {
	return entities.Actor{Role: entities.RoleHomeowner, UserID: "owner-1"}
}

func companyActor() entities.Actor {
	return entities.Actor{Role: entities.RoleCompanyAdmin, UserID: "user-1"}
}

func TestRequirementHandler_CreateRequirement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements", h.CreateRequirement)

		req := httptest.NewRequest(http.MethodPost, "/v1/requirements", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements", asActor(homeownerActor()), h.CreateRequirement)

		req := httptest.NewRequest(http.MethodPost, "/v1/requirements", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements", asActor(homeownerActor()), h.CreateRequirement)

		req := httptest.NewRequest(http.MethodPost, "/v1/requirements", bytes.NewBufferString(`{"title":"Villa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bidder role is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements", asActor(companyActor()), h.CreateRequirement)

		uc.EXPECT().Create(gomock.Any(), companyActor(), gomock.Any()).Return(entities.Requirement{}, usecase.ErrRequirementForbidden)

		body := `{"title":"Villa","description":"3 BHK villa","budget":3000000,"location":"Pune","building_type":"Villa"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requirements", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements", asActor(homeownerActor()), h.CreateRequirement)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), homeownerActor(), gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, in usecase.CreateRequirementInput) (entities.Requirement, error) {
				if in.Title != "Villa" || in.Budget != 3000000 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Requirement{
					ID:        "req-1",
					Homeowner: "owner-1",
					Title:     in.Title,
					Budget:    in.Budget,
					Status:    entities.RequirementStatusOpen,
					IsActive:  true,
					Quotes:    []string{},
					CreatedAt: now,
					UpdatedAt: now,
				}, nil
			})

		body := `{"title":"Villa","description":"3 BHK villa","budget":3000000,"location":"Pune","building_type":"Villa"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requirements", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["id"] != "req-1" || resp["status"] != "open" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestRequirementHandler_SelectQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements/:id/select", asActor(homeownerActor()), h.SelectQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/requirements/req-1/select", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already selected maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements/:id/select", asActor(homeownerActor()), h.SelectQuote)

		uc.EXPECT().SelectQuote(gomock.Any(), homeownerActor(), "req-1", "q-1").Return(entities.Requirement{}, entities.Quote{}, usecase.ErrAlreadySelected)

		req := httptest.NewRequest(http.MethodPost, "/v1/requirements/req-1/select", bytes.NewBufferString(`{"quote_id":"q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns requirement and winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.POST("/v1/requirements/:id/select", asActor(homeownerActor()), h.SelectQuote)

		uc.EXPECT().SelectQuote(gomock.Any(), homeownerActor(), "req-1", "q-1").Return(
			entities.Requirement{ID: "req-1", Status: entities.RequirementStatusCompanySelected, SelectedQuote: "q-1", Quotes: []string{"q-1"}},
			entities.Quote{ID: "q-1", Requirement: "req-1", Status: entities.QuoteStatusAccepted},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/requirements/req-1/select", bytes.NewBufferString(`{"quote_id":"q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Requirement struct {
				Status        string `json:"status"`
				SelectedQuote string `json:"selected_quote"`
			} `json:"requirement"`
			Quote struct {
				Status string `json:"status"`
			} `json:"quote"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Requirement.Status != "company_selected" || resp.Quote.Status != "accepted" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestRequirementHandler_ListOpenRequirements(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards filters and pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.GET("/v1/requirements/open", asActor(companyActor()), h.ListOpenRequirements)

		uc.EXPECT().ListOpen(gomock.Any(), companyActor(), interfaces.RequirementFilter{
			BuildingType: entities.BuildingTypeVilla,
			Location:     "Pune",
		}, 2, 5).Return([]entities.Requirement{{ID: "req-1", Status: entities.RequirementStatusOpen}}, 11, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requirements/open?building_type=Villa&location=Pune&page=2&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Total != 11 || resp.Page != 2 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("bad pagination falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.GET("/v1/requirements/open", asActor(companyActor()), h.ListOpenRequirements)

		uc.EXPECT().ListOpen(gomock.Any(), companyActor(), interfaces.RequirementFilter{}, 1, 20).Return(nil, 0, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requirements/open?page=-3&limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequirementHandler_GetRequirement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bidder gets the public view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.GET("/v1/requirements/:id", asActor(companyActor()), h.GetRequirement)

		uc.EXPECT().GetPublic(gomock.Any(), companyActor(), "req-1").Return(entities.Requirement{ID: "req-1", Status: entities.RequirementStatusOpen}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requirements/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("homeowner miss maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.GET("/v1/requirements/:id", asActor(homeownerActor()), h.GetRequirement)

		uc.EXPECT().GetByID(gomock.Any(), homeownerActor(), "req-404").Return(entities.Requirement{}, usecase.ErrRequirementNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requirements/req-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRequirementHandler_UpdateRequirementStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requirements/:id/status", asActor(homeownerActor()), h.UpdateRequirementStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), homeownerActor(), "req-1", entities.RequirementStatusCompleted).Return(entities.Requirement{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requirements/req-1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requirements/:id/status", asActor(homeownerActor()), h.UpdateRequirementStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), homeownerActor(), "req-1", entities.RequirementStatusInProgress).Return(entities.Requirement{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/requirements/req-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestRequirementHandler_CancelRequirement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.DELETE("/v1/requirements/:id", asActor(homeownerActor()), h.CancelRequirement)

		uc.EXPECT().Cancel(gomock.Any(), homeownerActor(), "req-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/requirements/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("foreign requirement maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)

		r := gin.New()
		r.DELETE("/v1/requirements/:id", asActor(homeownerActor()), h.CancelRequirement)

		uc.EXPECT().Cancel(gomock.Any(), homeownerActor(), "req-1").Return(usecase.ErrRequirementForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/v1/requirements/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
