package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/razeh/sketchucam-gcode-optimizer/optimize"
)

func renderStatsTable(results []optimize.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Pass", "Before", "After"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, r := range results {
		table.Append([]string{r.Pass, fmt.Sprintf("%d", r.Before), fmt.Sprintf("%d", r.After)})
	}

	if len(results) > 0 {
		table.SetFooter([]string{
			"Total",
			fmt.Sprintf("%d", results[0].Before),
			fmt.Sprintf("%d", results[len(results)-1].After),
		})
	}

	table.Render()

	return tableBuffer.String()
}
