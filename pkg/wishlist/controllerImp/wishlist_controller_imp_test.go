package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	farmerRepoImp "agrilink/pkg/farmer/repositoryImp"
	"agrilink/pkg/logger"
)

func setup(t *testing.T) (*gorm.DB, *WishlistCtrl, *entities.Farmer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Farmer{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	repo := farmerRepoImp.New(db)
	f := &entities.Farmer{Email: "a@example.com", PasswordHash: "x", FullName: "A"}
	if err := repo.Create(f); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ctrl := New(repo, logger.NewNop()).(*WishlistCtrl)
	return db, ctrl, f
}

func toggle(t *testing.T, ctrl *WishlistCtrl, uid, cropID, action string) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	body := `{"cropId":"` + cropID + `","action":"` + action + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}
	if err := ctrl.Toggle(c); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func check(t *testing.T, ctrl *WishlistCtrl, uid, cropID string) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/wishlist/check?cropId="+cropID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}
	if err := ctrl.Check(c); err != nil {
		t.Fatalf("check: %v", err)
	}
	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func storedWishlist(t *testing.T, db *gorm.DB, id string) []string {
	t.Helper()
	var f entities.Farmer
	if err := db.First(&f, "id = ?", id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	return f.Wishlist
}

func TestToggleAddIsIdempotent(t *testing.T) {
	db, ctrl, f := setup(t)

	for i := 0; i < 2; i++ {
		code, out := toggle(t, ctrl, f.ID, "crop-1", "add")
		if code != http.StatusOK || out["success"] != true {
			t.Fatalf("add #%d: code=%d out=%v", i+1, code, out)
		}
	}
	if wl := storedWishlist(t, db, f.ID); !reflect.DeepEqual(wl, []string{"crop-1"}) {
		t.Errorf("wishlist = %v, want [crop-1]", wl)
	}
}

func TestToggleRemove(t *testing.T) {
	db, ctrl, f := setup(t)

	toggle(t, ctrl, f.ID, "crop-1", "add")
	code, out := toggle(t, ctrl, f.ID, "crop-1", "remove")
	if code != http.StatusOK || out["success"] != true {
		t.Fatalf("remove: code=%d out=%v", code, out)
	}
	if wl := storedWishlist(t, db, f.ID); len(wl) != 0 {
		t.Errorf("wishlist = %v, want empty", wl)
	}

	// Removing an id that is not there is a quiet success.
	code, out = toggle(t, ctrl, f.ID, "crop-9", "remove")
	if code != http.StatusOK || out["success"] != true {
		t.Errorf("absent remove: code=%d out=%v", code, out)
	}
}

func TestToggleRejectsBadAction(t *testing.T) {
	_, ctrl, f := setup(t)
	code, _ := toggle(t, ctrl, f.ID, "crop-1", "star")
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}

func TestCheckSoftFailsForAnonymous(t *testing.T) {
	_, ctrl, _ := setup(t)
	code, out := check(t, ctrl, "", "crop-1")
	if code != http.StatusOK || out["isInWishlist"] != false {
		t.Errorf("anonymous check: code=%d out=%v", code, out)
	}
}

func TestCheckReflectsMembership(t *testing.T) {
	_, ctrl, f := setup(t)

	code, out := check(t, ctrl, f.ID, "crop-1")
	if code != http.StatusOK || out["isInWishlist"] != false {
		t.Errorf("before add: code=%d out=%v", code, out)
	}

	toggle(t, ctrl, f.ID, "crop-1", "add")
	code, out = check(t, ctrl, f.ID, "crop-1")
	if code != http.StatusOK || out["isInWishlist"] != true {
		t.Errorf("after add: code=%d out=%v", code, out)
	}
}

func TestCheckRequiresCropID(t *testing.T) {
	_, ctrl, f := setup(t)
	code, _ := check(t, ctrl, f.ID, "")
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}
