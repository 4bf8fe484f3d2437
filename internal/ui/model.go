// Package ui is the terminal control panel: three range controls, a live
// raster preview of the scene, a legend and a preset picker.
package ui

import (
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/coast-terminal/internal/models"
	"github.com/ngmaloney/coast-terminal/internal/params"
	"github.com/ngmaloney/coast-terminal/internal/pipeline"
	"github.com/ngmaloney/coast-terminal/internal/presets"
	"github.com/ngmaloney/coast-terminal/internal/render"
)

// AppState represents the current state of the application
type AppState int

const (
	StatePanel   AppState = iota // Controls and preview
	StatePresets                 // Preset picker open
	StateError                   // Error state
)

// Rows used by everything except the preview: title, panes, status, help.
const chromeRows = 16

// trackWidth is the slider width in cells
const trackWidth = 24

// Options configures the mapping from terminal to canvas
type Options struct {
	CellWidth        float64 // logical units per terminal column
	DevicePixelRatio float64
	ExportDir        string
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Status line
	status    string
	statusErr bool

	store   *params.Store
	pipe    *pipeline.Pipeline
	surface *render.RasterSurface
	opts    Options

	controls []control
	focus    int

	// Presets
	repo           *presets.Repository
	presets        []models.Preset
	presetList     list.Model
	loadingPresets bool
	spinner        spinner.Model
}

// NewModel creates the control panel. repo may be nil, in which case the
// preset picker is unavailable.
func NewModel(store *params.Store, pipe *pipeline.Pipeline, surface *render.RasterSurface, repo *presets.Repository, opts Options) Model {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.DevicePixelRatio <= 0 {
		opts.DevicePixelRatio = 1
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorSea)

	return Model{
		state:          StatePanel,
		store:          store,
		pipe:           pipe,
		surface:        surface,
		opts:           opts,
		controls:       defaultControls(),
		repo:           repo,
		loadingPresets: repo != nil,
		spinner:        s,
	}
}

// Init starts loading the preset catalog
func (m Model) Init() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, fetchPresets(m.repo))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		vp := models.Viewport{
			LogicalWidth:     float64(msg.Width) * m.opts.CellWidth,
			DevicePixelRatio: m.opts.DevicePixelRatio,
		}
		if !m.surface.Attached() {
			// The terminal size is the first sign of a display to draw on.
			m.surface.Attach()
			log.Printf("Surface attached at %dx%d after %d skipped passes", msg.Width, msg.Height, m.pipe.Skipped())
			if !m.store.SetViewport(vp) {
				m.pipe.Redraw(m.store.Snapshot())
			}
		} else {
			m.store.SetViewport(vp)
		}
		if m.state == StatePresets {
			m.presetList.SetSize(msg.Width-4, msg.Height-4)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.loadingPresets = false
		m.err = msg.err
		m.state = StateError
		return m, nil

	case presetsFetchedMsg:
		m.loadingPresets = false
		m.presets = msg.presets
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
		} else {
			m.setStatus("Saved "+msg.path, false)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loadingPresets {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StatePanel:
			return m.handlePanelKey(keyMsg)

		case StatePresets:
			return m.handlePresetList(keyMsg)

		case StateError:
			// Any key returns to the panel (except quit keys)
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			m.state = StatePanel
			m.err = nil
			return m, nil
		}
	}

	if m.state == StatePresets {
		m.presetList, cmd = m.presetList.Update(msg)
	}
	return m, cmd
}

// handlePanelKey handles keyboard input on the control panel
func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.controls[m.focus]

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % len(m.controls)
	case "shift+tab", "up":
		m.focus = (m.focus + len(m.controls) - 1) % len(m.controls)
	case "right":
		c.nudge(m.store, 1)
	case "left":
		c.nudge(m.store, -1)
	case "shift+right":
		c.nudge(m.store, 10)
	case "shift+left":
		c.nudge(m.store, -10)
	case "home":
		c.apply(m.store, c.min)
	case "end":
		c.apply(m.store, c.max)
	case "p":
		return m.openPresets()
	case "x":
		return m.exportPNG()
	}

	return m, nil
}

// openPresets shows the picker once the catalog is available
func (m Model) openPresets() (tea.Model, tea.Cmd) {
	switch {
	case m.repo == nil:
		m.setStatus("No preset catalog configured", true)
		return m, nil
	case m.loadingPresets:
		m.setStatus("Loading presets...", false)
		return m, nil
	case len(m.presets) == 0:
		m.setStatus("Preset catalog is empty", true)
		return m, nil
	}

	m.presetList = createPresetList(m.presets, m.width-4, m.height-4)
	m.state = StatePresets
	return m, nil
}

// handlePresetList handles keyboard input in the preset picker
func (m Model) handlePresetList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// While typing a filter every key belongs to the list
	if m.presetList.FilterState() != list.Filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.presetList.SelectedItem().(presetItem); ok {
				// One interaction, one recompute: all three values at once.
				m.store.SetAll(BoundParameters(item.preset.Parameters()))
				m.setStatus("Applied "+item.preset.Name, false)
			}
			m.state = StatePanel
			return m, nil
		case "esc":
			if m.presetList.FilterState() != list.FilterApplied {
				m.state = StatePanel
				return m, nil
			}
		}
	}

	m.presetList, cmd = m.presetList.Update(msg)
	return m, cmd
}

// exportPNG copies the current raster and writes it in the background
func (m Model) exportPNG() (tea.Model, tea.Cmd) {
	img := m.surface.Image()
	if img == nil || img.Rect.Empty() {
		m.setStatus("Nothing rendered yet", true)
		return m, nil
	}

	snapshot := image.NewRGBA(img.Rect)
	copy(snapshot.Pix, img.Pix)
	m.setStatus("Exporting...", false)
	return m, exportSnapshot(m.opts.ExportDir, snapshot, time.Now())
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StatePresets:
		return m.viewPresets()
	case StateError:
		return m.viewError()
	}

	return m.viewPanel()
}

// viewPanel renders the preview above the controls and legend
func (m Model) viewPanel() string {
	var sections []string

	title := titleStyle.Render("🌊 Coast Terminal")
	subtitle := mutedStyle.Render(" Longshore transport explorer")
	sections = append(sections, title+subtitle, "")

	if preview := m.renderPreview(); preview != "" {
		sections = append(sections, preview)
	}

	p := m.store.Parameters()
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.renderControls(p)),
		paneStyle.Render(renderLegend(m.pipe.Index())),
	)
	sections = append(sections, panes)

	sections = append(sections, m.renderStatus())

	help := helpStyle.Render("Tab/↑↓: Focus • ←/→: Adjust (Shift ×10) • Home/End: Min/Max • P: Presets • X: Export PNG • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPreview fits the raster to the terminal width and the rows left
// over by the rest of the panel.
func (m Model) renderPreview() string {
	img := m.surface.Image()
	if img == nil {
		return ""
	}
	rows := previewDots(img, m.width) / 2
	if avail := m.height - chromeRows; rows > avail {
		rows = avail
	}
	return renderPreview(img, m.width, rows)
}

// renderControls renders one row per control with its slider and readout
func (m Model) renderControls(p models.Parameters) string {
	var lines []string
	for i, c := range m.controls {
		cursor := "  "
		label := labelStyle.Width(12).Render(c.label)
		if i == m.focus {
			cursor = focusedLabelStyle.Render("▸ ")
			label = focusedLabelStyle.Width(12).Render(c.label)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s", cursor, label, c.track(p, trackWidth), valueStyle.Render(c.readout(p))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.loadingPresets {
		return fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Loading presets..."))
	}
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("✗ " + m.status)
	}
	return successStyle.Render("✓ " + m.status)
}

// viewPresets renders the preset picker
func (m Model) viewPresets() string {
	help := helpStyle.Render("↑/↓: Navigate • /: Filter • Enter: Apply • Esc: Back • Q: Quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.presetList.View(), help)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to the panel • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}
