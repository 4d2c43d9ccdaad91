package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCropsCSV(t *testing.T) {
	csvPath := writeFile(t, t.TempDir(), "crops.csv",
		"Crop,Unit,Typical Price\nWheat,quintals,2200\nRice,quintals,1900\n,,\n")

	cat, err := LoadFromFiles(csvPath, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.Crops) != 2 {
		t.Fatalf("crops = %d, want 2 (blank row skipped)", len(cat.Crops))
	}
	if cat.Crops[0].Name != "Wheat" || cat.Crops[0].Unit != "quintals" || cat.Crops[0].TypicalPrice != 2200 {
		t.Errorf("first row = %+v", cat.Crops[0])
	}
}

func TestLoadTolerantHeaders(t *testing.T) {
	csvPath := writeFile(t, t.TempDir(), "crops.csv",
		"crop_name,sale_unit,price_per_unit\nMaize,kg,22.5\n")

	cat, err := LoadFromFiles(csvPath, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.Crops) != 1 || cat.Crops[0].Name != "Maize" || cat.Crops[0].TypicalPrice != 22.5 {
		t.Errorf("crops = %+v", cat.Crops)
	}
}

func TestLoadMissingNameColumn(t *testing.T) {
	csvPath := writeFile(t, t.TempDir(), "crops.csv", "foo,bar\n1,2\n")
	if _, err := LoadFromFiles(csvPath, ""); err == nil {
		t.Errorf("want error for catalog without a name column")
	}
}

func TestLoadMissingFilesTolerated(t *testing.T) {
	dir := t.TempDir()
	cat, err := LoadFromFiles(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "nope.xlsx"))
	if err != nil {
		t.Fatalf("missing files should not fail the load: %v", err)
	}
	if len(cat.Crops) != 0 || len(cat.Equipment) != 0 {
		t.Errorf("catalog = %+v, want empty", cat)
	}

	cat, err = LoadFromFiles("", "")
	if err != nil || cat == nil {
		t.Errorf("empty paths: cat=%v err=%v", cat, err)
	}
}
