package lem

import (
	"fmt"
	"log"

	"github.com/maseology/goHydro/grid"
)

// Structure holds the fixed grid topology of the model domain: a uniform
// raster addressed row-major, an outer perimeter, and cell geometry. Built
// once at initialization; never mutated during a run.
type Structure struct {
	GD     *grid.Definition // optional georeference, used by check-print writers
	Perim  []bool           // outer-perimeter flag
	Nr, Nc int
	Ncell  int
	Cw, Ca float64 // cell width, cell area
}

// NewStructure builds a synthetic (ungeoreferenced) uniform raster domain.
func NewStructure(nr, nc int, cw float64) (*Structure, error) {
	if nr < 3 || nc < 3 {
		return nil, fmt.Errorf("NewStructure: domain must be at least 3x3, got %dx%d", nr, nc)
	}
	if cw <= 0. {
		return nil, &ConfigError{"cell width", cw}
	}
	s := &Structure{
		Nr:    nr,
		Nc:    nc,
		Ncell: nr * nc,
		Cw:    cw,
		Ca:    cw * cw,
	}
	s.Perim = make([]bool, s.Ncell)
	for i := range s.Perim {
		r, c := i/nc, i%nc
		s.Perim[i] = r == 0 || r == nr-1 || c == 0 || c == nc-1
	}
	return s, nil
}

// StructureFromGDEF builds the model domain from a grid definition file.
func StructureFromGDEF(fp string) (*Structure, error) {
	gd, err := grid.ReadGDEF(fp, true)
	if err != nil {
		return nil, fmt.Errorf("StructureFromGDEF: %v", err)
	}
	s, err := NewStructure(gd.Nrow, gd.Ncol, gd.Cwidth)
	if err != nil {
		return nil, err
	}
	s.GD = gd
	return s, nil
}

// RowCol splits a row-major cell index.
func (s *Structure) RowCol(i int) (int, int) { return i / s.Nc, i % s.Nc }

// CellID joins a row/column pair to a row-major cell index.
func (s *Structure) CellID(r, c int) int { return r*s.Nc + c }

// Checkandprint dumps the structure as rasters for inspection.
func (s *Structure) Checkandprint(chkdirprfx string) {
	if s.GD == nil {
		log.Println(" Structure.Checkandprint: no grid definition attached, skipping")
		return
	}
	perim := s.GD.NullInt32(-9999)
	for i := range s.Perim {
		if s.Perim[i] {
			perim[i] = 1
		} else {
			perim[i] = 0
		}
	}
	writeInts(chkdirprfx+"structure.perim.bil", perim)
}
