package repositoryImp

import (
	"path/filepath"
	"reflect"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agrilink/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Farmer{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestWishlistRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := New(db)

	f := &entities.Farmer{Email: "a@example.com", PasswordHash: "x", FullName: "A"}
	if err := repo.Create(f); err != nil {
		t.Fatalf("create: %v", err)
	}

	wl, err := repo.Wishlist(f.ID)
	if err != nil {
		t.Fatalf("wishlist: %v", err)
	}
	if len(wl) != 0 {
		t.Errorf("fresh wishlist = %v, want empty", wl)
	}

	if err := repo.SetWishlist(f.ID, []string{"crop-1", "crop-2"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	wl, err = repo.Wishlist(f.ID)
	if err != nil {
		t.Fatalf("wishlist: %v", err)
	}
	if !reflect.DeepEqual(wl, []string{"crop-1", "crop-2"}) {
		t.Errorf("wishlist = %v", wl)
	}

	// Writing back an empty list must actually clear the column.
	if err := repo.SetWishlist(f.ID, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	wl, err = repo.Wishlist(f.ID)
	if err != nil {
		t.Fatalf("wishlist: %v", err)
	}
	if len(wl) != 0 {
		t.Errorf("cleared wishlist = %v, want empty", wl)
	}
}

func TestEmailTaken(t *testing.T) {
	db := testDB(t)
	repo := New(db)

	if err := repo.Create(&entities.Farmer{Email: "a@example.com", PasswordHash: "x", FullName: "A"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	taken, err := repo.EmailTaken("a@example.com")
	if err != nil || !taken {
		t.Errorf("EmailTaken(existing) = %v, %v", taken, err)
	}
	taken, err = repo.EmailTaken("b@example.com")
	if err != nil || taken {
		t.Errorf("EmailTaken(fresh) = %v, %v", taken, err)
	}
}

func TestNamesByIDs(t *testing.T) {
	db := testDB(t)
	repo := New(db)

	a := &entities.Farmer{Email: "a@example.com", PasswordHash: "x", FullName: "Asha"}
	b := &entities.Farmer{Email: "b@example.com", PasswordHash: "x", FullName: "Bhaskar"}
	for _, f := range []*entities.Farmer{a, b} {
		if err := repo.Create(f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	names, err := repo.NamesByIDs([]string{a.ID, b.ID, "missing"})
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if names[a.ID] != "Asha" || names[b.ID] != "Bhaskar" {
		t.Errorf("names = %v", names)
	}
	if _, ok := names["missing"]; ok {
		t.Errorf("unknown id should be absent from the map")
	}

	empty, err := repo.NamesByIDs(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("NamesByIDs(nil) = %v, %v", empty, err)
	}
}
