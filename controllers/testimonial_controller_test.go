package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaultpay/models"

	"github.com/gin-gonic/gin"
)

func doForm(t *testing.T, router *gin.Engine, method, path, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	writer.Close()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTestimonialWithoutAvatar(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)

	w := doForm(t, router, http.MethodPost, "/admin/testimonials", tokenFor(t, admin), map[string]string{
		"name":    "Alex P.",
		"comment": "Withdrawals arrive the same day.",
		"rating":  "5",
		"role":    "Verified member",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody(t, w)["testimonial"].(map[string]interface{})
	if got["rating"].(float64) != 5 {
		t.Errorf("expected rating 5, got %v", got["rating"])
	}
	if got["isActive"] != true {
		t.Error("new testimonials should default to active")
	}
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	token := tokenFor(t, admin)

	for _, rating := range []string{"0", "6"} {
		w := doForm(t, router, http.MethodPost, "/admin/testimonials", token, map[string]string{
			"name":    "Alex P.",
			"comment": "Too good to be true.",
			"rating":  rating,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating %s: expected 400, got %d", rating, w.Code)
		}
	}

	var count int64
	db.Model(&models.Testimonial{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows after rejected submissions, got %d", count)
	}
}

func TestPublicTestimonialsActiveOnly(t *testing.T) {
	router, db := setupTest(t)

	db.Create(&models.Testimonial{Name: "Visible", Comment: "Great", Rating: 5, IsActive: true})
	db.Create(&models.Testimonial{Name: "Hidden", Comment: "Meh", Rating: 2, IsActive: false})

	w := doRequest(t, router, http.MethodGet, "/testimonials?activeOnly=true", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	testimonials := decodeBody(t, w)["testimonials"].([]interface{})
	if len(testimonials) != 1 {
		t.Fatalf("expected 1 active testimonial, got %d", len(testimonials))
	}
	if testimonials[0].(map[string]interface{})["name"] != "Visible" {
		t.Errorf("inactive testimonial leaked: %v", testimonials[0])
	}
}

func TestAdminTestimonialsPaginated(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)

	db.Create(&models.Testimonial{Name: "Visible", Comment: "Great", Rating: 5, IsActive: true})
	db.Create(&models.Testimonial{Name: "Hidden", Comment: "Meh", Rating: 2, IsActive: false})

	w := doRequest(t, router, http.MethodGet, "/admin/testimonials", tokenFor(t, admin), nil)
	body := decodeBody(t, w)
	testimonials := body["testimonials"].([]interface{})
	if len(testimonials) != 2 {
		t.Fatalf("admin list should include inactive rows, got %d", len(testimonials))
	}
	pagination := body["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 2 || pagination["pages"].(float64) != 1 {
		t.Errorf("unexpected pagination: %v", pagination)
	}
}

func TestChangeTestimonialStatus(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)

	testimonial := models.Testimonial{Name: "Alex P.", Comment: "Great", Rating: 4, IsActive: true}
	db.Create(&testimonial)

	w := doRequest(t, router, http.MethodPut,
		"/admin/testimonials/1/status", tokenFor(t, admin), map[string]interface{}{"isActive": false})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded models.Testimonial
	db.First(&reloaded, testimonial.ID)
	if reloaded.IsActive {
		t.Error("expected testimonial to be hidden")
	}
}
