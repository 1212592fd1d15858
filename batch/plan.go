package batch

import (
	"path/filepath"
	"strings"
)

// Plan pairs a candidate with the output path it will be written to
type Plan struct {
	Candidate
	Dest string
}

// Collision lists inputs that map to the same output path; the last one
// processed wins.
type Collision struct {
	Dest  string
	Names []string
}

// OutputName swaps the extension of name for ext. Leading dots belong to the
// base name, so ".png" becomes ".png" + ext.
func OutputName(name, ext string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.Trim(stem, ".") == "" {
		stem = name
	}
	return stem + ext
}

// PlanOutputs derives the destination of every candidate and reports collisions
func PlanOutputs(cands []Candidate, outDir, ext string) ([]Plan, []Collision) {
	plans := make([]Plan, 0, len(cands))
	owners := make(map[string][]string)
	var order []string
	for _, c := range cands {
		dest := filepath.Join(outDir, OutputName(c.Name, ext))
		plans = append(plans, Plan{Candidate: c, Dest: dest})
		if _, ok := owners[dest]; !ok {
			order = append(order, dest)
		}
		owners[dest] = append(owners[dest], c.Name)
	}

	var collisions []Collision
	for _, dest := range order {
		if names := owners[dest]; len(names) > 1 {
			collisions = append(collisions, Collision{Dest: dest, Names: names})
		}
	}
	return plans, collisions
}
