// Package tui is the terminal catalog view: a paged, filterable, sortable
// list of cats with selection, CRUD, operation logs and live generation.
package tui

import (
	"context"
	"sync"
	"time"

	"catdistribution/backend/catalog"
	"catdistribution/backend/generator"
	"catdistribution/backend/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// CatStore persists cats; client.CatClient satisfies it
type CatStore interface {
	List(ctx context.Context) ([]models.Cat, error)
	Create(ctx context.Context, cat models.Cat) (*models.Cat, error)
	Update(ctx context.Context, id string, cat models.Cat) (*models.Cat, error)
	Delete(ctx context.Context, id string) error
}

// LogStore records operation logs; client.LogClient satisfies it
type LogStore interface {
	FetchLogs(ctx context.Context) []models.OperationLog
	AddLog(ctx context.Context, user string, entry models.OperationLog) *models.OperationLog
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEditAge
	modeAdd
	modeLogs
)

// generatedBuffer bounds how many generated cats may wait for the event loop
const generatedBuffer = 16

const requestTimeout = 10 * time.Second

// Options configures New
type Options struct {
	User     string
	PageSize int
	// Interval and Factory drive local generation; a nil Factory disables it
	Interval time.Duration
	Factory  generator.Factory
}

type Model struct {
	browser *catalog.Browser
	cats    CatStore
	logs    LogStore
	user    string

	driver    *generator.Driver
	factory   generator.Factory
	interval  time.Duration
	generated chan models.Cat
	closeOnce sync.Once
	closed    bool

	mode       mode
	input      textinput.Model
	cursor     int
	logEntries []models.OperationLog
	status     string
	width      int
}

func New(cats CatStore, logs LogStore, opts Options) *Model {
	input := textinput.New()
	input.CharLimit = 64

	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}

	return &Model{
		browser:   catalog.NewBrowser(opts.PageSize),
		cats:      cats,
		logs:      logs,
		user:      opts.User,
		driver:    &generator.Driver{},
		factory:   opts.Factory,
		interval:  interval,
		generated: make(chan models.Cat, generatedBuffer),
		input:     input,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCats(), m.waitForGenerated())
}

// Shutdown stops local generation and releases the pending wait on generated
// cats; safe to call more than once
func (m *Model) Shutdown() {
	m.driver.Stop()
	m.closeOnce.Do(func() {
		m.closed = true
		close(m.generated)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case catsLoadedMsg:
		if msg.err != nil {
			m.status = "Failed to load cats: " + msg.err.Error()
			return m, nil
		}
		m.browser.SetRecords(msg.cats)
		m.clampCursor()
		m.status = ""
		return m, nil

	case catSavedMsg:
		return m, m.handleSaved(msg)

	case catDeletedMsg:
		return m, m.handleDeleted(msg)

	case generatedMsg:
		return m, tea.Batch(m.saveCat(msg.cat, models.ActionGenerate), m.waitForGenerated())

	case logsLoadedMsg:
		m.logEntries = msg.logs
		if msg.logs == nil {
			m.status = "Operation logs unavailable"
		}
		return m, nil

	case logAddedMsg:
		if msg.entry == nil {
			m.status = "Operation log was not recorded"
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m, m.updateSearch(msg)
		case modeEditAge, modeAdd:
			return m, m.updatePrompt(msg)
		case modeLogs:
			m.mode = modeBrowse
			return m, nil
		}
		return m, m.updateBrowse(msg)
	}

	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Shutdown()
		return tea.Quit

	case "/":
		m.mode = modeSearch
		m.input.Prompt = "search: "
		m.input.SetValue(m.browser.Filter().SearchTerm)
		m.input.CursorEnd()
		return m.input.Focus()

	case "left", "h":
		m.browser.PrevPage()
		m.cursor = 0
	case "right", "l":
		m.browser.NextPage()
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()

	case "s":
		m.browser.CycleSortField()
	case "r":
		m.browser.ToggleDirection()

	case "0":
		m.browser.SetAgeRange(nil)
	case "1":
		m.browser.SetAgeRange(&catalog.Kittens)
	case "2":
		m.browser.SetAgeRange(&catalog.Adults)
	case "3":
		m.browser.SetAgeRange(&catalog.Seniors)

	case "+":
		_ = m.browser.SetPageSize(m.browser.PageSize() + 1)
		m.cursor = 0
	case "-":
		if m.browser.PageSize() > 1 {
			_ = m.browser.SetPageSize(m.browser.PageSize() - 1)
			m.cursor = 0
		}

	case " ", "space", "enter":
		if c := m.current(); c != nil {
			m.browser.Selection().Select(c)
		}
	case "esc":
		m.browser.Selection().Clear()

	case "d":
		if c := m.target(); c != nil {
			return m.deleteCat(*c)
		}
	case "e":
		if m.target() != nil {
			m.mode = modeEditAge
			m.input.Prompt = "new age: "
			m.input.SetValue("")
			return m.input.Focus()
		}
	case "a":
		m.mode = modeAdd
		m.input.Prompt = "name, age, breed: "
		m.input.SetValue("")
		return m.input.Focus()

	case "g":
		return m.toggleGeneration()

	case "L":
		m.mode = modeLogs
		return m.fetchLogs()
	case "R":
		return m.loadCats()
	}

	m.clampCursor()
	return nil
}

// updateSearch filters live while typing
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.browser.SetSearchTerm(m.input.Value())
	m.cursor = 0
	m.clampCursor()
	return cmd
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return nil
	case "enter":
		value := m.input.Value()
		current := m.mode
		m.mode = modeBrowse
		m.input.Blur()
		if current == modeEditAge {
			return m.submitAge(value)
		}
		return m.submitNew(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) toggleGeneration() tea.Cmd {
	if m.driver.Running() {
		m.driver.Stop()
		m.status = "Generation stopped"
		return nil
	}
	if m.factory == nil || m.closed {
		m.status = "Generation is not available"
		return nil
	}

	err := m.driver.Start(m.interval, m.factory, func(c models.Cat) {
		select {
		case m.generated <- c:
		default:
			zap.L().Warn("Dropping generated cat, view is behind", zap.String("name", c.Name))
		}
	})
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = "Generating a cat every " + m.interval.String()
	return nil
}

func (m *Model) handleSaved(msg catSavedMsg) tea.Cmd {
	if msg.err != nil {
		m.status = "Failed to save " + msg.cat.Name + ": " + msg.err.Error()
		return nil
	}

	c := msg.cat
	switch msg.action {
	case models.ActionUpdate:
		m.browser.Replace(c)
		m.browser.Selection().Clear()
		m.status = "Updated " + c.Name
	default:
		m.browser.Append(c)
		m.status = "Added " + c.Name
	}
	m.clampCursor()

	return m.addLog(msg.action, describeAction(msg.action, c))
}

func (m *Model) handleDeleted(msg catDeletedMsg) tea.Cmd {
	if msg.err != nil {
		m.status = "Failed to delete " + msg.cat.Name + ": " + msg.err.Error()
		return nil
	}

	m.browser.Remove(msg.cat.Name)
	if m.browser.Selection().IsSelected(msg.cat) {
		m.browser.Selection().Clear()
	}
	m.clampCursor()
	m.status = "Deleted " + msg.cat.Name

	return m.addLog(models.ActionDelete, describeAction(models.ActionDelete, msg.cat))
}

// page runs the pipeline; the browser only errors on a bad page size, which
// the key handlers never set
func (m *Model) page() catalog.Page {
	page, err := m.browser.View()
	if err != nil {
		zap.L().Error("Failed to paginate", zap.Error(err))
	}
	return page
}

// current is the cat under the cursor
func (m *Model) current() *models.Cat {
	items := m.page().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	c := items[m.cursor]
	return &c
}

// target is the selected cat, falling back to the one under the cursor
func (m *Model) target() *models.Cat {
	if sel := m.browser.Selection().Current(); sel != nil {
		return sel
	}
	return m.current()
}

func (m *Model) clampCursor() {
	n := len(m.page().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
