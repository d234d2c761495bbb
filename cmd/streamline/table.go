package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/channel"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderChannelTable renders channels as one row each, in catalog order.
func renderChannelTable(channels []channel.Channel) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"ID", "Name", "Category", "URL"})
	for _, ch := range channels {
		tw.AppendRow(table.Row{ch.ID, ch.Name, ch.Category, ch.URL})
	}
	tw.AppendFooter(table.Row{"", "Total", strconv.Itoa(len(channels)), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
		{Number: 4, WidthMax: 60},
	})
	return tw.Render()
}

// renderCategoryTable renders channel counts with right-aligned numbers.
func renderCategoryTable(counts []application.CategoryCount) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Category", "Channels"})

	total := 0
	for _, c := range counts {
		tw.AppendRow(table.Row{c.Category.String(), c.Count})
		total += c.Count
	}
	tw.AppendFooter(table.Row{"Total", total})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
