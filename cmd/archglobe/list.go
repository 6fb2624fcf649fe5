package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"archglobe/internal/catalog"
	"archglobe/internal/theme"
)

func newListCmd(a *app) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog, filtered like the map sidebar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			cat, err := parseCategoryFlag(category)
			if err != nil {
				return err
			}
			c, err := loadCatalog(a.cfg, a.log)
			if err != nil {
				return err
			}
			rows := c.Filter(catalog.Filter{Search: search, Category: cat})
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no buildings match")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(rows, theme.New(a.cfg.Theme.Dark).Palette()))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive name substring")
	cmd.Flags().StringVar(&category, "category", "", "category name; empty or \"all\" lists every category")
	return cmd
}

// parseCategoryFlag wraps catalog.ParseCategory with the flag name.
func parseCategoryFlag(s string) (catalog.Category, error) {
	c, err := catalog.ParseCategory(s)
	if err != nil {
		return "", fmt.Errorf("--category: %w", err)
	}
	return c, nil
}

func renderTable(bs []*catalog.Building, p theme.Palette) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.Border)).
		Headers("#", "Building", "Category", "Latitude", "Longitude").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, b := range bs {
		t.Row(
			strconv.Itoa(b.ID),
			b.Name,
			string(b.Category),
			strconv.FormatFloat(b.Lat, 'f', 4, 64),
			strconv.FormatFloat(b.Lon, 'f', 4, 64),
		)
	}
	return t.Render()
}
