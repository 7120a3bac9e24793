package ui

import (
	"fmt"
	"strings"
)

// Table renders rows under a dimmed header with columns sized to fit
// the widest cell. Rows shorter than the header are padded with blanks.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(DimStyle.Render("  " + padRow(headers, widths)))
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("  " + strings.Repeat("─", rowWidth(widths))))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  " + padRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

// KeyValues renders aligned "key: value" detail rows.
func KeyValues(pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		if len(p[0]) > keyWidth {
			keyWidth = len(p[0])
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "  %s  %s\n",
			DimStyle.Render(fmt.Sprintf("%-*s", keyWidth, p[0])), p[1])
	}
	return b.String()
}

// StateBadge returns a colored power or install state label.
func StateBadge(state string) string {
	switch state {
	case "running", "installed":
		return ReadyStyle.Render(state)
	case "offline", "stopped":
		return FailedStyle.Render(state)
	case "starting", "stopping", "installing":
		return WarningStyle.Render(state)
	case "":
		return DimStyle.Render("unknown")
	default:
		return DimStyle.Render(state)
	}
}

// FormatMB renders a megabyte quantity, switching to GB past 1024.
// Zero means unlimited on the panel.
func FormatMB(mb int64) string {
	if mb == 0 {
		return "unlimited"
	}
	if mb >= 1024 {
		return fmt.Sprintf("%.1f GB", float64(mb)/1024)
	}
	return fmt.Sprintf("%d MB", mb)
}

// FormatBytes renders a byte quantity with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func padRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func rowWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += 2 * (len(widths) - 1)
	}
	return total
}
