// Package present renders aggregate tables and weekly trends as terminal
// charts.
package present

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdpolicano/go-corpustat/internal/pipeline"
	"github.com/jdpolicano/go-corpustat/internal/stats"
)

const (
	chartWidth      = 60
	chartHeight     = 12
	sparklineWidth  = 40
	sparklineHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))
)

// Renderer turns result tables into styled terminal output.
type Renderer struct{}

// NewRenderer constructs a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Facets renders one bar chart per metric in the table, each followed by the
// textual rows with CI bounds. Charts sort and facet by metric label, never
// by row insertion order.
func (r *Renderer) Facets(table stats.Table) string {
	var b strings.Builder
	for _, name := range table.Metrics() {
		rows := table.Select(name)
		b.WriteString(titleStyle.Render(name))
		b.WriteString("\n")
		b.WriteString(r.barChart(rows))
		b.WriteString("\n")
		b.WriteString(r.rowsTable(rows))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) barChart(rows []stats.Row) string {
	// The bar chart cannot draw negative heights, and several measures go
	// negative (correlation, Flesch-Kincaid on simple text). Shift every bar
	// by the most negative mean and note the baseline under the chart; the
	// textual rows keep the exact values.
	baseline := 0.0
	for _, row := range rows {
		if !math.IsNaN(row.Mean) && row.Mean < baseline {
			baseline = row.Mean
		}
	}

	data := make([]barchart.BarData, 0, len(rows))
	for _, row := range rows {
		if math.IsNaN(row.Mean) {
			continue
		}
		data = append(data, barchart.BarData{
			Label: row.Label,
			Values: []barchart.BarValue{
				{Name: row.Metric, Value: row.Mean - baseline, Style: barStyle},
			},
		})
	}
	if len(data) == 0 {
		return dimStyle.Render("no defined values") + "\n"
	}

	bc := barchart.New(chartWidth, chartHeight)
	bc.PushAll(data)
	bc.Draw()
	out := bc.View()
	if baseline < 0 {
		out += "\n" + dimStyle.Render(fmt.Sprintf("bars show mean relative to baseline %.3f", baseline)) + "\n"
	}
	return out
}

func (r *Renderer) rowsTable(rows []stats.Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s mean=%s sd=%s n=%d se=%s ci=[%s, %s]\n",
			labelStyle.Render(fmt.Sprintf("%-24s", row.Label)),
			formatValue(row.Mean),
			formatValue(row.SD),
			row.Count,
			formatValue(row.SE),
			formatValue(row.Lower),
			formatValue(row.Upper),
		))
	}
	return b.String()
}

// TrendSparklines renders one sparkline per author over its weekly scores,
// weeks in ascending order.
func (r *Renderer) TrendSparklines(points []pipeline.TrendPoint) string {
	byAuthor := make(map[string][]pipeline.TrendPoint)
	for _, p := range points {
		byAuthor[p.Author] = append(byAuthor[p.Author], p)
	}

	authors := make([]string, 0, len(byAuthor))
	for author := range byAuthor {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	var b strings.Builder
	for _, author := range authors {
		series := byAuthor[author]
		sort.Slice(series, func(i, j int) bool { return series[i].Week.Before(series[j].Week) })

		spark := sparkline.New(sparklineWidth, sparklineHeight)
		defined := 0
		for _, p := range series {
			if math.IsNaN(p.Value) {
				continue
			}
			spark.Push(p.Value)
			defined++
		}

		b.WriteString(titleStyle.Render(author))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d weeks)", defined)))
		b.WriteString("\n")
		if defined == 0 {
			b.WriteString(dimStyle.Render("no defined values"))
		} else {
			spark.Draw()
			b.WriteString(spark.View())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return dimStyle.Render("NA")
	}
	return fmt.Sprintf("%.3f", v)
}
