package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

func newSpecsCmd() *cobra.Command {
	var platformsFlag, categoriesFlag []string

	cmd := &cobra.Command{
		Use:   "specs",
		Short: "List the asset specs a generation run would produce",
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, err := parsePlatforms(platformsFlag)
			if err != nil {
				return err
			}
			categories, err := parseCategories(categoriesFlag)
			if err != nil {
				return err
			}

			specs, err := catalog.Resolve(platforms, categories)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, spec := range specs {
				mode := ""
				if spec.Mode() != catalog.AppearanceLight {
					mode = "  [" + string(spec.Mode()) + "]"
				}
				fmt.Fprintf(out, "%-52s %5dx%-5d %s%s\n", spec.Name, spec.Width, spec.Height, spec.Category, mode)
			}
			fmt.Fprintf(out, "\n%d specs\n", len(specs))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&platformsFlag, "platforms", "p", nil, "Platforms to include (default all)")
	cmd.Flags().StringSliceVarP(&categoriesFlag, "categories", "k", nil, "Categories to include (default all)")

	return cmd
}

func parsePlatforms(values []string) ([]catalog.Platform, error) {
	if len(values) == 0 {
		return catalog.Platforms(), nil
	}
	out := make([]catalog.Platform, 0, len(values))
	for _, v := range values {
		p, err := catalog.ParsePlatform(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseCategories(values []string) ([]catalog.Category, error) {
	if len(values) == 0 {
		return catalog.Categories(), nil
	}
	out := make([]catalog.Category, 0, len(values))
	for _, v := range values {
		c, err := catalog.ParseCategory(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
