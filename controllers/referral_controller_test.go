package controllers_test

import (
	"net/http"
	"testing"

	"vaultpay/models"
)

func TestGetReferralCodeAggregates(t *testing.T) {
	router, db := setupTest(t)
	referrer := createUser(t, db, models.RoleUser)
	first := createUser(t, db, models.RoleUser)
	second := createUser(t, db, models.RoleUser)

	db.Create(&models.ReferralSettings{ReferrerBonus: 20, ReferredBonus: 10, IsActive: true})
	db.Create(&models.Referral{ReferrerID: referrer.ID, ReferredID: first.ID, ReferrerBonus: 20, ReferredBonus: 10})
	db.Create(&models.Referral{ReferrerID: referrer.ID, ReferredID: second.ID, ReferrerBonus: 20, ReferredBonus: 10})

	w := doRequest(t, router, http.MethodGet, "/user/referral-code", tokenFor(t, referrer), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	info := decodeBody(t, w)["referralInfo"].(map[string]interface{})
	if info["referralCode"] != referrer.ReferralCode {
		t.Errorf("expected code %q, got %v", referrer.ReferralCode, info["referralCode"])
	}
	if info["totalReferrals"].(float64) != 2 {
		t.Errorf("expected 2 referrals, got %v", info["totalReferrals"])
	}
	if info["totalEarned"].(float64) != 40 {
		t.Errorf("expected 40 earned, got %v", info["totalEarned"])
	}
	if info["currentReferrerBonus"].(float64) != 20 {
		t.Errorf("expected current bonus 20, got %v", info["currentReferrerBonus"])
	}
}

func TestGetReferralHistoryScopedToCaller(t *testing.T) {
	router, db := setupTest(t)
	referrer := createUser(t, db, models.RoleUser)
	other := createUser(t, db, models.RoleUser)
	referred := createUser(t, db, models.RoleUser)

	db.Create(&models.Referral{ReferrerID: referrer.ID, ReferredID: referred.ID, ReferrerBonus: 15, ReferredBonus: 5})
	db.Create(&models.Referral{ReferrerID: other.ID, ReferredID: referrer.ID, ReferrerBonus: 15, ReferredBonus: 5})

	w := doRequest(t, router, http.MethodGet, "/user/referral-history", tokenFor(t, referrer), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	history := body["referralHistory"].([]interface{})
	if len(history) != 1 {
		t.Fatalf("expected 1 entry for referrer, got %d", len(history))
	}
	entry := history[0].(map[string]interface{})
	if entry["username"] != referred.Username {
		t.Errorf("expected referred username %q, got %v", referred.Username, entry["username"])
	}
	if entry["earned"].(float64) != 15 {
		t.Errorf("expected earned 15, got %v", entry["earned"])
	}
	pagination := body["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 1 {
		t.Errorf("expected total 1, got %v", pagination["total"])
	}
}

func TestUpdateReferralSettings(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, models.RoleAdmin)
	token := tokenFor(t, admin)

	w := doRequest(t, router, http.MethodPut, "/admin/referrals/settings", token, map[string]interface{}{
		"referrerBonus": 25.0,
		"referredBonus": 12.5,
		"isActive":      true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var settings models.ReferralSettings
	db.First(&settings)
	if settings.ReferrerBonus != 25 || settings.ReferredBonus != 12.5 || !settings.IsActive {
		t.Errorf("settings not persisted: %+v", settings)
	}

	// Admin overview reflects the stored values.
	w = doRequest(t, router, http.MethodGet, "/admin/referrals", token, nil)
	body := decodeBody(t, w)
	got := body["referralSettings"].(map[string]interface{})
	if got["referrerBonus"].(float64) != 25 {
		t.Errorf("expected referrerBonus 25, got %v", got["referrerBonus"])
	}
	if body["totalReferrals"].(float64) != 0 {
		t.Errorf("expected no referrals yet, got %v", body["totalReferrals"])
	}
}
