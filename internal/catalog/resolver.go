package catalog

import (
	"fmt"
)

// Resolve computes the deduplicated set of specs to produce for the
// requested platforms and categories. Appearance variants matching the
// selection are always included. The result preserves the insertion order
// of first matches, but callers must treat it as a set.
//
// Resolve fails only when handed an unrecognized platform or category;
// both enums are closed, so that is a programmer error, not user input.
func Resolve(platforms []Platform, categories []Category) ([]AssetSpec, error) {
	for _, p := range platforms {
		if _, err := ParsePlatform(string(p)); err != nil {
			return nil, fmt.Errorf("resolve specs: %w", err)
		}
	}
	for _, c := range categories {
		if _, err := ParseCategory(string(c)); err != nil {
			return nil, fmt.Errorf("resolve specs: %w", err)
		}
	}

	base := All()
	variants := Variants()

	index := make(map[string]int)
	var resolved []AssetSpec

	add := func(spec AssetSpec) {
		if i, ok := index[spec.Name]; ok {
			// Last occurrence wins. Duplicate names never differ in
			// practice; the overwrite keeps the invariant explicit.
			resolved[i] = spec
			return
		}
		index[spec.Name] = len(resolved)
		resolved = append(resolved, spec)
	}

	for _, p := range platforms {
		for _, c := range categories {
			for _, spec := range base {
				if spec.Platform == p && spec.Category == c {
					add(spec)
				}
			}
			for _, spec := range variants {
				if spec.Platform == p && spec.Category == c {
					add(spec)
				}
			}
		}
	}

	return resolved, nil
}
