// Package instructions formats post-generation integration notes. All
// functions are pure; nothing here feeds back into the pipeline.
package instructions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/config"
)

// FileName is the relative path of the instructions file inside the output
// directory.
const FileName = "INSTRUCTIONS.md"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

var platformNotes = map[catalog.Platform][]string{
	catalog.PlatformIOS: {
		"Copy `ios/AppIcon.appiconset/` into your Xcode asset catalog.",
		"Dark and tinted variants live under `ios/dark/` and `ios/tinted/`; Xcode picks them up through Contents.json.",
		"Add `ios/splash-2732x2732.png` as the universal launch storyboard image.",
	},
	catalog.PlatformAndroid: {
		"Copy the `android/mipmap-*` directories into `app/src/main/res/`.",
		"`android/mipmap-anydpi-v26/ic_launcher.xml` wires the adaptive background, foreground and monochrome layers.",
		"Merge `android/values/colors.xml` into your resources when present.",
	},
	catalog.PlatformWeb: {
		"Serve `web/favicon.ico` from the site root.",
		"Link `web/site.webmanifest` from your HTML head and serve the `web/icons/` directory alongside it.",
		"Reference `web/apple-touch-icon.png` with a `<link rel=\"apple-touch-icon\">` tag.",
	},
	catalog.PlatformTVOS: {
		"Import the `tvos/icon-back-*` and `tvos/icon-front-*` layers as a layered image stack in Xcode.",
		"Use `tvos/splash-1920x1080.png` for the top-shelf and launch images.",
	},
}

// Markdown renders the INSTRUCTIONS.md content for a run: one section per
// requested platform with its integration steps.
func Markdown(outputDir string, platforms []catalog.Platform, categories []catalog.Category, cfg *config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — generated assets\n\n", cfg.Name)
	fmt.Fprintf(&b, "Output directory: `%s`\n\n", outputDir)
	fmt.Fprintf(&b, "Categories: %s\n\n", joinCategories(categories))

	for _, p := range platforms {
		notes, ok := platformNotes[p]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", p)
		for _, note := range notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Summary renders a short styled console message pointing at the output.
func Summary(outputDir string, assetCount int, errCount int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Assets generated"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("output:"), pathStyle.Render(outputDir))
	fmt.Fprintf(&b, "%s %d\n", dimStyle.Render("assets:"), assetCount)
	if errCount > 0 {
		fmt.Fprintf(&b, "%s %d\n", dimStyle.Render("errors:"), errCount)
	}
	return b.String()
}

func joinCategories(categories []catalog.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
