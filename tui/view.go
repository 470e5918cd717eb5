package tui

import (
	"fmt"
	"strings"

	"catdistribution/backend/catalog"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const help = "/ search  ←/→ page  s sort  r reverse  0-3 age  +/- size  space select  a add  e edit  d delete  g generate  L logs  q quit"

func (m *Model) View() string {
	if m.mode == modeLogs {
		return m.logsView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cat Distribution"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.filterSummary()))
	b.WriteString("\n\n")

	page := m.page()
	if len(page.Items) == 0 {
		b.WriteString(dimStyle.Render("  no cats match"))
		b.WriteString("\n")
	}
	for i, c := range page.Items {
		line := fmt.Sprintf("%-20s %3d yrs  %-18s %4.1f kg", c.Name, c.Age, c.Breed, c.Weight)
		marker := "  "
		if m.browser.Selection().IsSelected(c) {
			marker = "* "
			line = selectedStyle.Render(line)
		}
		if i == m.cursor {
			marker = cursorStyle.Render(">") + marker[1:]
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("page %d/%d  (%d of %d cats, %d per page)",
		page.CurrentPage, page.TotalPages, page.TotalItems, len(m.browser.Records()), page.PageSize))
	if m.driver.Running() {
		b.WriteString("  " + statusStyle.Render("generating"))
	}
	b.WriteString("\n")

	stats := catalog.Summarize(m.browser.Records())
	b.WriteString(dimStyle.Render(fmt.Sprintf("kittens %d  adults %d  seniors %d  avg age %.1f  avg weight %.1f kg",
		stats.Kittens, stats.Adults, stats.Seniors, stats.AverageAge, stats.AverageWeight)))
	b.WriteString("\n")

	if sel := m.browser.Selection().Current(); sel != nil {
		b.WriteString(selectedStyle.Render("selected: " + sel.Name))
		if sel.Description != "" {
			b.WriteString(dimStyle.Render("  " + sel.Description))
		}
		b.WriteString("\n")
	}

	switch m.mode {
	case modeSearch, modeEditAge, modeAdd:
		b.WriteString(m.input.View() + "\n")
	default:
		if m.status != "" {
			b.WriteString(statusStyle.Render(m.status) + "\n")
		}
		b.WriteString(dimStyle.Render(help))
	}
	return b.String()
}

func (m *Model) filterSummary() string {
	var parts []string
	f := m.browser.Filter()
	if strings.TrimSpace(f.SearchTerm) != "" {
		parts = append(parts, fmt.Sprintf("search %q", strings.TrimSpace(f.SearchTerm)))
	}
	if f.Ages != nil {
		parts = append(parts, fmt.Sprintf("age %d-%d", f.Ages.Min, f.Ages.Max))
	}
	if s := m.browser.Sort(); s != nil {
		parts = append(parts, fmt.Sprintf("sort %s %s", s.Field, s.Direction))
	}
	if len(parts) == 0 {
		return "all cats"
	}
	return strings.Join(parts, " · ")
}

func (m *Model) logsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Operation logs"))
	b.WriteString("\n\n")
	if len(m.logEntries) == 0 {
		b.WriteString(dimStyle.Render("  no logs"))
		b.WriteString("\n")
	}
	for _, l := range m.logEntries {
		b.WriteString(fmt.Sprintf("%s  %-8s %-12s %s\n", l.Timestamp.Local().Format("2006-01-02 15:04:05"), l.Action, l.UserID, l.Details))
	}
	b.WriteString("\n" + dimStyle.Render("any key to return"))
	return b.String()
}
