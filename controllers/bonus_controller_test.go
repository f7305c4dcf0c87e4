package controllers_test

import (
	"net/http"
	"testing"

	"vaultpay/models"
)

func TestGetBonusSettingsCreatesDisabledSingleton(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)

	w := doRequest(t, router, http.MethodGet, "/admin/bonus-settings", tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	settings := decodeBody(t, w)["bonusSettings"].(map[string]interface{})
	if settings["isActive"] != false {
		t.Error("first access should create a disabled bonus")
	}
	if settings["amount"].(float64) != 0 {
		t.Errorf("expected zero amount, got %v", settings["amount"])
	}

	var count int64
	db.Model(&models.BonusSettings{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected singleton row, got %d", count)
	}
}

func TestUpdateBonusSettingsAppendsHistory(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodPut, "/admin/bonus-settings", token, map[string]interface{}{
		"amount":   100.0,
		"isActive": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodPut, "/admin/bonus-settings", token, map[string]interface{}{
		"amount":   75.0,
		"isActive": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var settingsCount, historyCount int64
	db.Model(&models.BonusSettings{}).Count(&settingsCount)
	db.Model(&models.BonusHistory{}).Count(&historyCount)
	if settingsCount != 1 {
		t.Errorf("expected singleton settings row, got %d", settingsCount)
	}
	if historyCount != 2 {
		t.Errorf("expected 2 history rows, got %d", historyCount)
	}

	var settings models.BonusSettings
	db.First(&settings)
	if settings.Amount != 75 {
		t.Errorf("expected amount 75, got %v", settings.Amount)
	}
	if settings.UpdatedBy != admin.Username {
		t.Errorf("expected updatedBy %q, got %q", admin.Username, settings.UpdatedBy)
	}

	// History rides along on the GET.
	w = doRequest(t, router, http.MethodGet, "/admin/bonus-settings", token, nil)
	got := decodeBody(t, w)["bonusSettings"].(map[string]interface{})
	history := got["history"].([]interface{})
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	latest := history[0].(map[string]interface{})
	if latest["amount"].(float64) != 75 {
		t.Errorf("expected latest history amount 75, got %v", latest["amount"])
	}
}

func TestUpdateBonusSettingsValidation(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)

	w := doRequest(t, router, http.MethodPut, "/admin/bonus-settings", tokenFor(t, admin),
		map[string]interface{}{"amount": 100.0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without isActive, got %d", w.Code)
	}
}
