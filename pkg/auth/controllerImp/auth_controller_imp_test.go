package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/auth/controller"
	farmerRepoImp "agrilink/pkg/farmer/repositoryImp"
	"agrilink/pkg/logger"
	"agrilink/pkg/token"
)

func setup(t *testing.T) (controller.AuthController, *token.Manager) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Farmer{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	tm := token.NewManager("test-secret", "agrilink_session", false)
	return New(farmerRepoImp.New(db), tm, logger.NewNop()), tm
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, tm *token.Manager) *http.Cookie {
	t.Helper()
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == tm.CookieName() {
			return ck
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

const registerBody = `{"email":"Asha@Example.com","password":"secret123","full_name":"Asha","phone":"98765","location":"Nashik"}`

func TestRegisterSignInMeRoundTrip(t *testing.T) {
	ctrl, tm := setup(t)

	rec := postJSON(t, ctrl.Register, registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	if created["email"] != "asha@example.com" {
		t.Errorf("email not normalised: %v", created["email"])
	}
	if _, ok := created["password_hash"]; ok {
		t.Errorf("password hash leaked in response")
	}
	ck := sessionCookie(t, rec, tm)
	if !ck.HttpOnly {
		t.Errorf("session cookie must be HttpOnly")
	}

	// Sign in with the same credentials, mixed-case email.
	rec = postJSON(t, ctrl.SignIn, `{"email":"ASHA@example.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sign-in code = %d, body = %s", rec.Code, rec.Body.String())
	}
	ck = sessionCookie(t, rec, tm)
	claims, err := tm.Parse(ck.Value)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	if claims.FarmerID != created["id"] {
		t.Errorf("session uid = %q, want %v", claims.FarmerID, created["id"])
	}

	// Me, with the uid the auth middleware would have set.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	meRec := httptest.NewRecorder()
	c := e.NewContext(req, meRec)
	c.Set("uid", claims.FarmerID)
	if err := ctrl.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	var me map[string]any
	_ = json.Unmarshal(meRec.Body.Bytes(), &me)
	if meRec.Code != http.StatusOK || me["full_name"] != "Asha" {
		t.Errorf("me: code=%d body=%s", meRec.Code, meRec.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl, _ := setup(t)

	if rec := postJSON(t, ctrl.Register, registerBody); rec.Code != http.StatusCreated {
		t.Fatalf("first register: %d", rec.Code)
	}
	if rec := postJSON(t, ctrl.Register, registerBody); rec.Code != http.StatusConflict {
		t.Errorf("duplicate register code = %d, want 409", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctrl, _ := setup(t)
	for _, body := range []string{
		`{"password":"x","full_name":"A"}`,
		`{"email":"a@b.c","full_name":"A"}`,
		`{"email":"a@b.c","password":"x"}`,
	} {
		if rec := postJSON(t, ctrl.Register, body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: code = %d, want 400", body, rec.Code)
		}
	}
}

func TestSignInWrongCredentials(t *testing.T) {
	ctrl, _ := setup(t)
	postJSON(t, ctrl.Register, registerBody)

	if rec := postJSON(t, ctrl.SignIn, `{"email":"asha@example.com","password":"wrong"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password code = %d, want 401", rec.Code)
	}
	if rec := postJSON(t, ctrl.SignIn, `{"email":"nobody@example.com","password":"secret123"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email code = %d, want 401", rec.Code)
	}
}

func TestSignOutClearsCookie(t *testing.T) {
	ctrl, tm := setup(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	if err := ctrl.SignOut(e.NewContext(req, rec)); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	ck := sessionCookie(t, rec, tm)
	if ck.Value != "" || ck.MaxAge != -1 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d", ck.Value, ck.MaxAge)
	}
}
