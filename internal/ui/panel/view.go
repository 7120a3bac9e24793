package panel

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	if !m.HaveData {
		b.WriteString(dimStyle.Render("  " + currentSpinner(m.SpinnerFrame) + " fetching stats..."))
		b.WriteString("\n")
		renderFooter(&b, m)
		return b.String()
	}

	renderResources(&b, m)
	renderNetwork(&b, m)
	renderFeedback(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("pteroctl manage: %s", m.Name)))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s, %s mode)", m.Identifier, m.Mode)))
	b.WriteString("  ")

	switch {
	case m.Stats.Suspended:
		b.WriteString(offlineStyle.Render("suspended"))
	case m.Stats.State == "running":
		b.WriteString(runningStyle.Render("running"))
	case m.Stats.State == "offline":
		b.WriteString(offlineStyle.Render("offline"))
	case m.Stats.State == "starting" || m.Stats.State == "stopping":
		b.WriteString(transitionStyle.Render(currentSpinner(m.SpinnerFrame) + " " + m.Stats.State))
	default:
		b.WriteString(dimStyle.Render("..."))
	}
	b.WriteString("\n")
}

func renderResources(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Resources"))
	b.WriteString("\n")

	memRatio := 0.0
	memLabel := formatBytes(m.Stats.MemoryBytes)
	if m.Stats.MemoryLimit > 0 {
		memRatio = float64(m.Stats.MemoryBytes) / float64(m.Stats.MemoryLimit)
		memLabel += " / " + formatBytes(m.Stats.MemoryLimit)
	}

	fmt.Fprintf(b, "    %-8s %s %5.1f%%\n", "CPU", gauge(m.Stats.CPUPercent/100), m.Stats.CPUPercent)
	fmt.Fprintf(b, "    %-8s %s %s\n", "Memory", gauge(memRatio), memLabel)
	fmt.Fprintf(b, "    %-8s %s\n", "Disk", formatBytes(m.Stats.DiskBytes))
	if m.Stats.UptimeMillis > 0 {
		fmt.Fprintf(b, "    %-8s %s\n", "Uptime", formatUptime(m.Stats.UptimeMillis))
	}
}

func renderNetwork(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Network"))
	b.WriteString("\n")
	fmt.Fprintf(b, "    %-8s %s\n", "RX", formatBytes(m.Stats.NetworkRx))
	fmt.Fprintf(b, "    %-8s %s\n", "TX", formatBytes(m.Stats.NetworkTx))
}

func renderFeedback(b *strings.Builder, m Model) {
	if m.ConfirmingReinstall {
		b.WriteString("\n")
		b.WriteString("  " + transitionStyle.Render("reinstall wipes ALL server files. y: confirm  |  any other key: cancel"))
		b.WriteString("\n")
		return
	}

	if m.LastAction == "" && m.ActionErr == nil {
		return
	}
	b.WriteString("\n")
	switch {
	case m.ActionErr != nil:
		fmt.Fprintf(b, "  %s %v\n", offlineStyle.Render("[!!]"), m.ActionErr)
	case m.LastAction != "":
		fmt.Fprintf(b, "  %s sent %s\n", runningStyle.Render("[OK]"), activeStyle.Render(m.LastAction))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	b.WriteString(footerStyle.Render("  s: start  |  x: stop  |  r: restart  |  k: kill  |  i: reinstall  |  f: refresh  |  q: quit"))
	b.WriteString("\n")
}

// Helper functions

func gauge(ratio float64) string {
	const width = 20
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * width)
	style := gaugeFull
	if ratio > 0.85 {
		style = gaugeHot
	}
	return style.Render(strings.Repeat("█", filled)) + gaugeEmpty.Render(strings.Repeat("░", width-filled))
}

func formatBytes(n int64) string {
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

func formatUptime(millis int64) string {
	d := (time.Duration(millis) * time.Millisecond).Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}
