package lem

// Partition is a disjoint land/sea split of the grid computed once per
// phase-group and passed in as a parameter, so no phase depends on another's
// in-place reclassification.
type Partition struct {
	Fixed []bool // fixed-value (non-erodible, flow sink) flag
	Sea   []int  // nodes below current sea level
	Land  []int  // core nodes
}

// partitionSeaLevel builds the pre-fluvial partition: every node below the
// current sea level is a fixed-value sink, as is the outer perimeter; all
// others are core (land). Sea lists strictly the submarine nodes —
// a perimeter node above water is fixed but not submarine.
func partitionSeaLevel(s *Structure, z []float64, sl float64) Partition {
	p := Partition{Fixed: make([]bool, s.Ncell)}
	for i, zz := range z {
		sea := zz < sl
		p.Fixed[i] = sea || s.Perim[i]
		if sea {
			p.Sea = append(p.Sea, i)
		}
		if !p.Fixed[i] {
			p.Land = append(p.Land, i)
		}
	}
	return p
}

// partitionPerimeter builds the post-fluvial partition: submarine nodes
// return to core and only the outer perimeter is held fixed, so diffusion
// runs across the whole domain.
func partitionPerimeter(s *Structure) Partition {
	p := Partition{Fixed: make([]bool, s.Ncell)}
	for i, prm := range s.Perim {
		p.Fixed[i] = prm
		if !prm {
			p.Land = append(p.Land, i)
		}
	}
	return p
}
