package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"lampgrid/internal/config"
	"lampgrid/internal/coordinator"
	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/interaction"
	"lampgrid/internal/ui/input"
	inputtypes "lampgrid/internal/ui/input/types"
	"lampgrid/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	coord  *coordinator.Coordinator
	config *config.Config

	// UI-specific state not owned by the coordinator
	width         int
	height        int
	help          help.Model
	keys          inputtypes.KeyMap
	groupCursor   int
	toolbar       coordinator.Toolbar
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode

	// Pointer state between mouse messages
	pressed    interaction.Button // button held since the last press
	pointer    domain.Point       // last pointer position on the canvas
	hasPointer bool

	// Handlers
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program

	unsubs []func()
}

// NewModel creates a new UI model over the coordinator
func NewModel(coord *coordinator.Coordinator, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	keys := inputtypes.NewKeyMap(cfg.Keys)

	m := &Model{
		coord:        coord,
		config:       cfg,
		help:         help.New(),
		keys:         keys,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(),
	}

	// Toolbar enablement is re-derived whenever the core invalidates
	for _, topic := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventLampsChanged,
		eventbus.EventGroupsChanged,
	} {
		m.unsubs = append(m.unsubs, coord.Subscribe(topic, m.refreshToolbar))
	}
	coord.Observable.AddListener(m)
	m.refreshToolbar()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Close detaches the model from the coordinator
func (m *Model) Close() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
	m.coord.Observable.RemoveListener(m)
}

// Invalidated is called when any lamp's group membership changes
func (m *Model) Invalidated(any) {
	m.refreshToolbar()
}

func (m *Model) refreshToolbar() {
	m.toolbar = m.coord.Toolbar()
}

// Toolbar returns the last derived toolbar enablement
func (m *Model) Toolbar() coordinator.Toolbar {
	return m.toolbar
}

// GroupCursor returns the group panel cursor
func (m *Model) GroupCursor() int {
	return m.groupCursor
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) layout() views.Layout {
	return views.Layout{Width: m.width, Height: m.height}
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{Coordinator: m.coord, Cursor: m.groupCursor}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// Handle input through the mode handler
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		// Mouse input is dropped outside normal mode, so a gesture in
		// flight would never see its release
		if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
			m.abandonGesture()
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		// Text entry and confirmation own the input until they finish
		if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
			return m, nil
		}
		return m, m.handleMouse(msg)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		GroupCursor:   m.groupCursor,
		StatusMessage: m.statusMessage,
		HelpView:      m.help.View(m.keys),
		InputMode:     m.inputHandler.CurrentMode().String(),
		SelectedCount: m.coord.Selection.Len(),
	}

	dragging, _ := m.coord.Controller.Dragging()
	for _, lamp := range m.coord.AllLamps() {
		col, row := views.ToCell(lamp.Position())
		view := views.LampView{
			Col:      col,
			Row:      row,
			On:       lamp.IsOn(),
			Selected: lamp.Selected(),
			Dragging: lamp.ID() == dragging,
		}
		if group := m.coord.GroupOf(lamp); group != nil {
			view.Color = string(group.Color)
		}
		if lamp.IsOn() {
			state.OnCount++
		}
		state.Lamps = append(state.Lamps, view)
	}
	state.LampCount = len(state.Lamps)

	focused := m.coord.GroupPanel.Focused()
	for _, group := range m.coord.AllGroups() {
		state.Groups = append(state.Groups, views.GroupView{
			Name:     group.Name,
			Color:    string(group.Color),
			Count:    len(m.coord.Groups.LampsIn(group.ID)),
			Selected: m.coord.GroupPanel.Contains(group.ID),
			Focused:  group.ID == focused,
		})
	}

	state.Toolbar = []views.ToolView{
		{Key: m.keys.Toggle.Help().Key, Label: "toggle", Enabled: m.toolbar.Toggle},
		{Key: m.keys.Remove.Help().Key, Label: "remove", Enabled: m.toolbar.Remove},
		{Key: m.keys.AddToGroup.Help().Key, Label: "add to group", Enabled: m.toolbar.AddToGroup},
		{Key: m.keys.RemoveFromGroup.Help().Key, Label: "ungroup", Enabled: m.toolbar.RemoveFromGroup},
		{Key: m.keys.ToggleGroup.Help().Key, Label: "toggle groups", Enabled: m.toolbar.GroupToggle},
		{Key: m.keys.DeleteGroup.Help().Key, Label: "delete groups", Enabled: m.toolbar.GroupRemove},
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.View()
		if prompter, ok := m.inputHandler.Mode(m.inputHandler.CurrentMode()).(interface{ Prompt() string }); ok {
			state.Prompt = prompter.Prompt()
		}
	}
	if confirm, ok := m.inputHandler.Mode(inputtypes.ModeDeleteConfirm).(interface{ Count() int }); ok {
		state.ConfirmCount = confirm.Count()
	}
	return state
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Debug().Str("action", action.Type()).Msg("processAction")
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.moveGroupCursor(a.Direction)

	case inputtypes.SelectAllAction:
		m.coord.Controller.HandleKey(interaction.KeyEvent{
			Code:      m.config.SelectAllKey(),
			Modifiers: interaction.Modifiers{Control: true},
		})

	case inputtypes.DeselectAllAction:
		m.coord.Controller.HandleKey(interaction.KeyEvent{
			Code:      m.config.SelectAllKey(),
			Modifiers: interaction.Modifiers{Control: true, Shift: true},
		})

	case inputtypes.NewLampAction:
		m.coord.AddLamp(m.newLampPosition())

	case inputtypes.ToggleLampsAction:
		m.coord.ToggleSelection()

	case inputtypes.RemoveLampsAction:
		m.coord.RemoveSelection()

	case inputtypes.AddToGroupAction:
		if !m.toolbar.AddToGroup {
			return m.setStatus("Select lamps and a group first")
		}
		m.coord.AddSelectionToGroup()

	case inputtypes.RemoveFromGroupAction:
		if !m.toolbar.RemoveFromGroup {
			return m.setStatus("No selected lamp is in a group")
		}
		m.coord.RemoveSelectionFromGroup()

	case inputtypes.CreateGroupAction:
		group := m.coord.NewGroup()
		m.groupCursor = m.coord.GroupStore.IndexOf(group.ID)
		m.refreshToolbar()
		// Start renaming the new group right away
		return m.inputHandler.ChangeMode(inputtypes.ModeRenameGroup, m.context())

	case inputtypes.RenameGroupAction:
		m.coord.RenameFocusedGroup(a.NewName)

	case inputtypes.DeleteGroupAction:
		m.coord.DeleteSelectedGroups()
		m.clampGroupCursor()

	case inputtypes.ToggleGroupAction:
		m.coord.ToggleSelectedGroups()

	case inputtypes.CycleColorAction:
		if group := m.coord.FocusedGroup(); group != nil {
			m.coord.SetFocusedGroupColor(nextColor(m.config.Groups.Palette, group.Color))
		}

	case inputtypes.SelectGroupAction:
		groups := m.coord.AllGroups()
		if m.groupCursor < 0 || m.groupCursor >= len(groups) {
			return nil
		}
		id := groups[m.groupCursor].ID
		if a.Only {
			m.coord.GroupPanel.SelectOnly(id)
		} else {
			m.coord.GroupPanel.Toggle(id)
		}
		m.refreshToolbar()

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) moveGroupCursor(direction string) {
	switch direction {
	case "up":
		m.groupCursor--
	case "down":
		m.groupCursor++
	case "home":
		m.groupCursor = 0
	case "end":
		m.groupCursor = m.coord.GroupStore.Len() - 1
	}
	m.clampGroupCursor()
}

func (m *Model) clampGroupCursor() {
	n := m.coord.GroupStore.Len()
	if m.groupCursor >= n {
		m.groupCursor = n - 1
	}
	if m.groupCursor < 0 {
		m.groupCursor = 0
	}
}

// newLampPosition puts a new lamp under the pointer when it is on the
// canvas, otherwise in the next free slot of the default grid
func (m *Model) newLampPosition() domain.Point {
	if m.hasPointer && m.coord.LampAt(m.pointer) == nil {
		return m.pointer
	}
	w, _ := m.layout().CanvasSize()
	for n := 0; ; n++ {
		p := views.SpawnPoint(n, w)
		if m.coord.LampAt(p) == nil {
			return p
		}
	}
}

// nextColor returns the palette entry after current, wrapping around
func nextColor(palette []string, current domain.Color) domain.Color {
	if len(palette) == 0 {
		return current
	}
	for i, c := range palette {
		if domain.Color(c) == current {
			return domain.Color(palette[(i+1)%len(palette)])
		}
	}
	return domain.Color(palette[0])
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline full help
			log.Error().Err(msg.err).Msg("Help pager failed")
			m.help.ShowAll = true
			return m, m.setStatus(fmt.Sprintf("Help pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}
