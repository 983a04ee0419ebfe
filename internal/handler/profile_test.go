package handler

import (
	"net/http"
	"testing"

	"github.com/iliyamo/train-booking-api/internal/model"
)

func TestGetProfileNullName(t *testing.T) {
	h := NewProfileHandler(newFakeUserStore())

	c, rec := newJSONContext(http.MethodGet, "/api/profile", "")
	withUser(c, model.User{ID: 7, Email: "u@x.com"})
	if err := h.Get(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["email"] != "u@x.com" {
		t.Fatalf("email = %v", body["email"])
	}
	if body["name"] != nil {
		t.Fatalf("unset name should be null, got %v", body["name"])
	}
}

func TestUpdateProfileAllFieldsEmpty(t *testing.T) {
	h := NewProfileHandler(newFakeUserStore())

	c, rec := newJSONContext(http.MethodPut, "/api/profile", `{}`)
	withUser(c, model.User{ID: 7})
	if err := h.Update(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	users := newFakeUserStore()
	h := NewProfileHandler(users)

	// Only city set: name and phone must be passed as nil so the stored
	// values survive.  An explicit empty string counts as absent.
	c, rec := newJSONContext(http.MethodPut, "/api/profile", `{"city":"Kazan","name":""}`)
	withUser(c, model.User{ID: 7})
	if err := h.Update(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if users.updatedID != 7 {
		t.Fatalf("updated user %d, want 7", users.updatedID)
	}
	if users.updatedName != nil || users.updatedPhone != nil {
		t.Fatal("name/phone must stay untouched")
	}
	if users.updatedCity == nil || *users.updatedCity != "Kazan" {
		t.Fatalf("city = %v, want Kazan", users.updatedCity)
	}
}
