package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nutriplan/nutriplan/internal/domain/food"
)

var catalogHeader = []string{"name", "kcal", "protein_g", "fat_g", "carb_g", "fiber_g", "source"}

// ParseCatalogFile reads a food-composition CSV and returns the parsed rows.
// The expected header is name,kcal,protein_g,fat_g,carb_g,fiber_g,source.
// Numeric columns may be empty, in which case the field is left unset.
func ParseCatalogFile(path string) ([]*food.CatalogFood, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	return ParseCatalog(f)
}

func ParseCatalog(r io.Reader) ([]*food.CatalogFood, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(catalogHeader) {
		return nil, fmt.Errorf("invalid header length: expected %d columns, got %d", len(catalogHeader), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != catalogHeader[i] {
			return nil, fmt.Errorf("invalid header: expected %s at position %d, got %s", catalogHeader[i], i, h)
		}
	}

	var foods []*food.CatalogFood
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line++

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: name is empty", line)
		}

		item := &food.CatalogFood{Name: name}
		for i, dst := range []**float64{&item.Kcal, &item.ProteinG, &item.FatG, &item.CarbG, &item.FiberG} {
			v, err := parseOptionalFloat(record[i+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %s: %w", line, catalogHeader[i+1], err)
			}
			*dst = v
		}
		if src := strings.TrimSpace(record[6]); src != "" {
			item.Source = &src
		}

		foods = append(foods, item)
	}

	return foods, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("value %v is negative", v)
	}
	return &v, nil
}
