package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"vaultpay/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func seedDeposits(t *testing.T, db *gorm.DB, user models.User, n int, status string) []models.DepositRequest {
	t.Helper()
	requests := make([]models.DepositRequest, 0, n)
	for i := 0; i < n; i++ {
		r := models.DepositRequest{
			UserID:        user.ID,
			Amount:        100,
			PaymentMethod: "bKash",
			AccountNumber: "017000000",
			TransactionID: fmt.Sprintf("TX-%d-%d", user.ID, i),
			Status:        status,
		}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("failed to seed deposit request: %v", err)
		}
		requests = append(requests, r)
	}
	return requests
}

func TestGetDepositRequestsPagination(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	seedDeposits(t, db, user, 3, models.StatusPending)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodGet, "/admin/deposit-requests?status=pending&page=1&limit=10", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	items, ok := body["depositRequests"].([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 deposit requests, got %v", body["depositRequests"])
	}

	pagination := body["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 3 {
		t.Errorf("expected total 3, got %v", pagination["total"])
	}
	if pagination["page"].(float64) != 1 {
		t.Errorf("expected page 1, got %v", pagination["page"])
	}
	if pagination["limit"].(float64) != 10 {
		t.Errorf("expected limit 10, got %v", pagination["limit"])
	}
	if pagination["pages"].(float64) != 1 {
		t.Errorf("expected pages 1, got %v", pagination["pages"])
	}
}

func TestGetDepositRequestsSecondPage(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	seedDeposits(t, db, user, 15, models.StatusPending)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodGet, "/admin/deposit-requests?page=2&limit=10", token, nil)
	body := decodeBody(t, w)

	items := body["depositRequests"].([]interface{})
	if len(items) != 5 {
		t.Errorf("expected 5 items on page 2, got %d", len(items))
	}

	pagination := body["pagination"].(map[string]interface{})
	if pagination["pages"].(float64) != 2 {
		t.Errorf("expected pages 2, got %v", pagination["pages"])
	}
}

func TestApproveDepositRequest(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	requests := seedDeposits(t, db, user, 1, models.StatusPending)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/deposit-requests/%d", requests[0].ID), token, gin.H{
		"action":     "approve",
		"adminNotes": "verified",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "Deposit request approved successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	var updated models.DepositRequest
	db.First(&updated, requests[0].ID)
	if updated.Status != models.StatusApproved {
		t.Errorf("expected status approved, got %s", updated.Status)
	}
	if updated.ProcessedBy == nil || *updated.ProcessedBy != admin.ID {
		t.Error("expected processedBy to record the acting admin")
	}
	if updated.ProcessedAt == nil {
		t.Error("expected processedAt to be stamped")
	}
	if updated.AdminNotes != "verified" {
		t.Errorf("expected admin notes to be saved, got %q", updated.AdminNotes)
	}

	var updatedUser models.User
	db.First(&updatedUser, user.ID)
	if updatedUser.Balance != 100 || updatedUser.Deposit != 100 {
		t.Errorf("expected balance and deposit to be credited, got %.2f/%.2f", updatedUser.Balance, updatedUser.Deposit)
	}
}

func TestRejectDepositRequestLeavesBalance(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	requests := seedDeposits(t, db, user, 1, models.StatusPending)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/deposit-requests/%d", requests[0].ID), token, gin.H{
		"action":     "reject",
		"adminNotes": "no matching transfer",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["message"] != "Deposit request rejected successfully" {
		t.Errorf("unexpected message: %s", w.Body.String())
	}

	var updatedUser models.User
	db.First(&updatedUser, user.ID)
	if updatedUser.Balance != 0 {
		t.Errorf("rejected deposit must not credit balance, got %.2f", updatedUser.Balance)
	}
}

func TestProcessDepositRequestTwice(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	requests := seedDeposits(t, db, user, 1, models.StatusPending)
	token := tokenFor(t, admin)

	path := fmt.Sprintf("/admin/deposit-requests/%d", requests[0].ID)
	doRequest(t, router, http.MethodPut, path, token, gin.H{"action": "approve"})
	w := doRequest(t, router, http.MethodPut, path, token, gin.H{"action": "approve"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on double processing, got %d", w.Code)
	}

	// A second approve must never credit again.
	var updatedUser models.User
	db.First(&updatedUser, user.ID)
	if updatedUser.Balance != 100 {
		t.Errorf("expected balance 100 after one approval, got %.2f", updatedUser.Balance)
	}
}

func TestProcessDepositRequestInvalidAction(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	requests := seedDeposits(t, db, user, 1, models.StatusPending)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/deposit-requests/%d", requests[0].ID), token, gin.H{
		"action": "escalate",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", w.Code)
	}
}

func TestDepositStats(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	user := createUser(t, db, models.RoleUser)
	seedDeposits(t, db, user, 2, models.StatusPending)
	seedDeposits(t, db, user, 3, models.StatusApproved)
	seedDeposits(t, db, user, 1, models.StatusRejected)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodGet, "/admin/deposit-requests/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	stats := decodeBody(t, w)["stats"].(map[string]interface{})
	if stats["total"].(float64) != 6 {
		t.Errorf("expected total 6, got %v", stats["total"])
	}
	if stats["pending"].(float64) != 2 {
		t.Errorf("expected pending 2, got %v", stats["pending"])
	}
	if stats["approved"].(float64) != 3 {
		t.Errorf("expected approved 3, got %v", stats["approved"])
	}
	if stats["approvedAmount"].(float64) != 300 {
		t.Errorf("expected approved amount 300, got %v", stats["approvedAmount"])
	}
}

func TestCreateDepositRequest(t *testing.T) {
	router, db := setupTest(t)
	user := createUser(t, db, models.RoleUser)
	token := tokenFor(t, user)

	if err := db.Create(&models.PaymentMethod{MethodName: "bKash", AccountNumber: "017000000", IsActive: true}).Error; err != nil {
		t.Fatalf("failed to seed payment method: %v", err)
	}

	w := doRequest(t, router, http.MethodPost, "/user/deposit-requests", token, gin.H{
		"amount":        250.0,
		"paymentMethod": "bKash",
		"accountNumber": "0171111111",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var request models.DepositRequest
	if err := db.Where("user_id = ?", user.ID).First(&request).Error; err != nil {
		t.Fatalf("deposit request not stored: %v", err)
	}
	if request.Status != models.StatusPending {
		t.Errorf("new requests must be pending, got %s", request.Status)
	}
	if request.TransactionID == "" {
		t.Error("expected a generated transaction reference")
	}
}

func TestCreateDepositRequestInactiveMethod(t *testing.T) {
	router, db := setupTest(t)
	user := createUser(t, db, models.RoleUser)
	token := tokenFor(t, user)

	if err := db.Create(&models.PaymentMethod{MethodName: "Nagad", AccountNumber: "018000000", IsActive: false}).Error; err != nil {
		t.Fatalf("failed to seed payment method: %v", err)
	}

	w := doRequest(t, router, http.MethodPost, "/user/deposit-requests", token, gin.H{
		"amount":        250.0,
		"paymentMethod": "Nagad",
		"accountNumber": "0171111111",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inactive method, got %d", w.Code)
	}
}

func TestUserSeesOnlyOwnDeposits(t *testing.T) {
	router, db := setupTest(t)
	alice := createUser(t, db, models.RoleUser)
	bob := createUser(t, db, models.RoleUser)
	seedDeposits(t, db, alice, 2, models.StatusPending)
	seedDeposits(t, db, bob, 3, models.StatusPending)

	w := doRequest(t, router, http.MethodGet, "/user/deposit-requests", tokenFor(t, alice), nil)
	body := decodeBody(t, w)
	items := body["depositRequests"].([]interface{})
	if len(items) != 2 {
		t.Errorf("expected alice to see 2 requests, got %d", len(items))
	}
}
