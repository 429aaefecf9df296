package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cdinventory/internal/inventory"
)

// renderInventoryTable lays the records out in stored order with a count footer.
func renderInventoryTable(inv inventory.Inventory) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "ID", "Title", "Artist"})

	for i, record := range inv {
		tw.AppendRow(table.Row{i + 1, record.ID, record.Title, record.Artist})
	}
	tw.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d record(s)", inv.Len())})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
