// Package output formats client responses for the terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/wesleyorama2/go-kairosdb/response"
)

// Formatter renders responses as text, optionally colored.
type Formatter struct {
	NoColor bool
}

// NewFormatter creates a formatter. Pass noColor true to disable ANSI
// colors, e.g. when stdout is not a terminal.
func NewFormatter(noColor bool) *Formatter {
	return &Formatter{NoColor: noColor}
}

func (f *Formatter) statusColor(code int) *color.Color {
	var c *color.Color
	switch {
	case code >= 200 && code < 300:
		c = color.New(color.FgGreen, color.Bold)
	case code >= 300 && code < 400:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	if f.NoColor {
		c.DisableColor()
	}
	return c
}

// FormatNames renders a name-list response, one name per line.
func (f *Formatter) FormatNames(resp *response.GetResponse) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("◀ STATUS: %s\n", f.statusColor(resp.StatusCode).Sprint(resp.StatusCode)))
	for _, name := range resp.Names {
		buf.WriteString("  " + name + "\n")
	}
	if resp.IsSuccess() {
		buf.WriteString(fmt.Sprintf("%d name(s)\n", len(resp.Names)))
	}

	return buf.String()
}

// FormatQuery renders a query response: per-metric tag sets, groups, and
// data points.
func (f *Formatter) FormatQuery(resp *response.QueryResponse) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("◀ STATUS: %s\n", f.statusColor(resp.StatusCode).Sprint(resp.StatusCode)))
	f.writeErrors(&buf, resp.Errors)

	nameColor := color.New(color.FgCyan, color.Bold)
	if f.NoColor {
		nameColor.DisableColor()
	}

	for _, result := range resp.Results {
		buf.WriteString(fmt.Sprintf("%s (%d points)\n", nameColor.Sprint(result.Name), len(result.Values)))
		for tag, values := range result.Tags {
			buf.WriteString(fmt.Sprintf("  tag %s: %s\n", tag, strings.Join(values, ", ")))
		}
		for _, group := range result.GroupResults {
			buf.WriteString(fmt.Sprintf("  group %s: %v\n", group.Name, group.Values))
		}
		for _, point := range result.Values {
			buf.WriteString(fmt.Sprintf("  %d %v\n", point.Timestamp, point.Value))
		}
	}

	return buf.String()
}

// FormatResponse renders a push/delete outcome.
func (f *Formatter) FormatResponse(resp *response.Response) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("◀ STATUS: %s\n", f.statusColor(resp.StatusCode).Sprint(resp.StatusCode)))
	f.writeErrors(&buf, resp.Errors)

	return buf.String()
}

func (f *Formatter) writeErrors(buf *strings.Builder, errors []string) {
	if len(errors) == 0 {
		return
	}

	errColor := color.New(color.FgRed)
	if f.NoColor {
		errColor.DisableColor()
	}
	for _, msg := range errors {
		buf.WriteString(fmt.Sprintf("  %s %s\n", errColor.Sprint("error:"), msg))
	}
}
