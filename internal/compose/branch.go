package compose

import (
	"strings"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

// Branch identifies one composition strategy. The engine holds exactly one
// handler per branch; selection is a pure function of the spec.
type Branch string

const (
	BranchStandard           Branch = "standard"
	BranchDark               Branch = "dark"
	BranchTinted             Branch = "tinted"
	BranchClearLight         Branch = "clear-light"
	BranchClearDark          Branch = "clear-dark"
	BranchAdaptiveBackground Branch = "adaptive-background"
	BranchAdaptiveForeground Branch = "adaptive-foreground"
	BranchMonochrome         Branch = "monochrome"
	BranchMaskable           Branch = "maskable"
	BranchLayeredBack        Branch = "layered-back"
	BranchLayeredFront       Branch = "layered-front"
)

// Branches enumerates every composition branch. The engine constructor
// asserts its handler table covers all of them.
var Branches = []Branch{
	BranchStandard,
	BranchDark,
	BranchTinted,
	BranchClearLight,
	BranchClearDark,
	BranchAdaptiveBackground,
	BranchAdaptiveForeground,
	BranchMonochrome,
	BranchMaskable,
	BranchLayeredBack,
	BranchLayeredFront,
}

// BranchFor selects the composition branch for a spec from its category,
// appearance mode, platform and name. Deterministic, no hidden state.
func BranchFor(spec catalog.AssetSpec) Branch {
	name := spec.Name

	if spec.Category == catalog.CategoryAdaptive {
		switch {
		case strings.Contains(name, "monochrome"):
			return BranchMonochrome
		case strings.Contains(name, "background"):
			return BranchAdaptiveBackground
		default:
			return BranchAdaptiveForeground
		}
	}

	if strings.Contains(name, "monochrome") {
		return BranchMonochrome
	}
	if strings.Contains(name, "maskable") {
		return BranchMaskable
	}

	if spec.Platform == catalog.PlatformTVOS && spec.Category == catalog.CategoryIcon {
		if strings.Contains(name, "-back") {
			return BranchLayeredBack
		}
		if strings.Contains(name, "-front") {
			return BranchLayeredFront
		}
	}

	switch spec.Mode() {
	case catalog.AppearanceDark:
		return BranchDark
	case catalog.AppearanceTinted:
		return BranchTinted
	case catalog.AppearanceClearLight:
		return BranchClearLight
	case catalog.AppearanceClearDark:
		return BranchClearDark
	}

	return BranchStandard
}
