package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"catdistribution/backend/models"

	tea "github.com/charmbracelet/bubbletea"
)

type catsLoadedMsg struct {
	cats []models.Cat
	err  error
}

type catSavedMsg struct {
	cat    models.Cat
	action string
	err    error
}

type catDeletedMsg struct {
	cat models.Cat
	err error
}

type generatedMsg struct {
	cat models.Cat
}

type logsLoadedMsg struct {
	logs []models.OperationLog
}

type logAddedMsg struct {
	entry *models.OperationLog
}

func (m *Model) loadCats() tea.Cmd {
	cats := m.cats
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		list, err := cats.List(ctx)
		return catsLoadedMsg{cats: list, err: err}
	}
}

// saveCat creates c on the server; action is the log entry written afterwards
func (m *Model) saveCat(c models.Cat, action string) tea.Cmd {
	cats := m.cats
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		created, err := cats.Create(ctx, c)
		if err != nil {
			return catSavedMsg{cat: c, action: action, err: err}
		}
		return catSavedMsg{cat: *created, action: action}
	}
}

func (m *Model) updateCat(c models.Cat) tea.Cmd {
	cats := m.cats
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		updated, err := cats.Update(ctx, c.ID, c)
		if err != nil {
			return catSavedMsg{cat: c, action: models.ActionUpdate, err: err}
		}
		return catSavedMsg{cat: *updated, action: models.ActionUpdate}
	}
}

func (m *Model) deleteCat(c models.Cat) tea.Cmd {
	cats := m.cats
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return catDeletedMsg{cat: c, err: cats.Delete(ctx, c.ID)}
	}
}

func (m *Model) addLog(action, details string) tea.Cmd {
	logs, user := m.logs, m.user
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return logAddedMsg{entry: logs.AddLog(ctx, user, models.OperationLog{Action: action, Details: details})}
	}
}

func (m *Model) fetchLogs() tea.Cmd {
	logs := m.logs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return logsLoadedMsg{logs: logs.FetchLogs(ctx)}
	}
}

// waitForGenerated delivers the next locally generated cat to the event loop.
// It yields no message once the model has shut down.
func (m *Model) waitForGenerated() tea.Cmd {
	ch := m.generated
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return generatedMsg{cat: c}
	}
}

func (m *Model) submitAge(value string) tea.Cmd {
	target := m.target()
	if target == nil {
		return nil
	}

	age, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || age < 0 || age > models.MaxCatAge {
		m.status = fmt.Sprintf("Age must be a number between 0 and %d", models.MaxCatAge)
		return nil
	}

	c := *target
	c.Age = age
	return m.updateCat(c)
}

// submitNew parses "name, age[, breed]"
func (m *Model) submitNew(value string) tea.Cmd {
	c, err := parseNewCat(value)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	return m.saveCat(c, models.ActionAdd)
}

func parseNewCat(value string) (models.Cat, error) {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 || parts[0] == "" {
		return models.Cat{}, fmt.Errorf("expected \"name, age, breed\"")
	}

	age, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Cat{}, fmt.Errorf("invalid age %q", parts[1])
	}

	c := models.Cat{Name: parts[0], Age: age}
	if len(parts) > 2 {
		c.Breed = parts[2]
	}
	if err := c.Validate(); err != nil {
		return models.Cat{}, err
	}
	return c, nil
}

func describeAction(action string, c models.Cat) string {
	switch action {
	case models.ActionAdd:
		return "Added cat " + c.Name
	case models.ActionUpdate:
		return fmt.Sprintf("Updated cat %s (age %d)", c.Name, c.Age)
	case models.ActionDelete:
		return "Deleted cat " + c.Name
	case models.ActionGenerate:
		return "Generated cat " + c.Name
	}
	return c.Name
}
