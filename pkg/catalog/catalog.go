package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CropRef is one row of the crop reference sheet backing the listing form
// dropdowns: a crop name with its customary sale unit and an indicative
// price per unit.
type CropRef struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	TypicalPrice float64 `json:"typical_price"`
}

// EquipmentRef is one row of the equipment rate sheet: an equipment type
// with an indicative daily rental rate.
type EquipmentRef struct {
	Type        string  `json:"type"`
	TypicalRate float64 `json:"typical_rate_per_day"`
}

type Catalog struct {
	Crops     []CropRef
	Equipment []EquipmentRef
}

// LoadFromFiles reads the crop CSV and the equipment XLSX. Either path may
// be empty or point to a missing file; the catalog then simply serves fewer
// rows.
func LoadFromFiles(cropCSV, equipXLSX string) (*Catalog, error) {
	cat := &Catalog{}
	if cropCSV != "" {
		if err := cat.loadCropsCSV(cropCSV); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	if equipXLSX != "" {
		if err := cat.loadEquipmentXLSX(equipXLSX); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return cat, nil
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func (cat *Catalog) loadCropsCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("crop", "name", "crop_name")
	cUnit := findAny("unit", "sale_unit")
	cPrice := findAny("typical_price", "price", "price_per_unit")
	if cName == -1 {
		return errors.New("crop catalog missing a name column")
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		name := get(rec, cName)
		if name == "" {
			continue
		}
		price, _ := strconv.ParseFloat(get(rec, cPrice), 64)
		cat.Crops = append(cat.Crops, CropRef{
			Name:         name,
			Unit:         get(rec, cUnit),
			TypicalPrice: price,
		})
	}
	return nil
}

func (cat *Catalog) loadEquipmentXLSX(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return err
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	cType, okT := hmap["type"]
	cRate, okR := hmap["rateperday"]
	if !okR {
		cRate, okR = hmap["typicalrate"]
	}
	if !okT {
		return errors.New("equipment sheet missing a type column")
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	for _, rec := range rows[1:] {
		t := get(rec, cType)
		if t == "" {
			continue
		}
		rate := 0.0
		if okR {
			rate, _ = strconv.ParseFloat(get(rec, cRate), 64)
		}
		cat.Equipment = append(cat.Equipment, EquipmentRef{Type: t, TypicalRate: rate})
	}
	return nil
}
