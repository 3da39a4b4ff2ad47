package coordinator

import (
	"time"

	"lampgrid/internal/commands"
	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/groups"
	"lampgrid/internal/interaction"
	"lampgrid/internal/logic"
	"lampgrid/internal/selection"
)

// Options configures the coordinator's services
type Options struct {
	DefaultGroupName    string
	DefaultGroupColor   domain.Color
	SelectAllKey        string
	DoubleClickInterval time.Duration
	HitRadius           float64
}

// DefaultHitRadius is the lamp hit radius in canvas units
const DefaultHitRadius = 1.5

// Coordinator owns the lamp canvas state and wires the services together.
// Everything runs on the caller's goroutine; no method blocks.
type Coordinator struct {
	// Services
	Lamps      *logic.LampRegistry
	GroupStore *logic.GroupRegistry
	Groups     *groups.Manager
	Observable *groups.ChangeObservable
	GroupPanel *groups.PanelSelection
	Selection  *selection.Set
	Controller *interaction.Controller
	Commands   *commands.Executor

	// Dependencies
	bus       eventbus.EventBus
	hitRadius float64
	unsubs    []func()
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus eventbus.EventBus, opts Options) *Coordinator {
	if bus == nil {
		bus = eventbus.New()
	}
	if opts.HitRadius <= 0 {
		opts.HitRadius = DefaultHitRadius
	}

	lamps := logic.NewLampRegistry(bus)
	groupStore := logic.NewGroupRegistry()
	observable := groups.NewChangeObservable(lamps, bus)
	manager := groups.NewManager(groupStore, lamps, observable, bus, groups.Options{
		DefaultName:  opts.DefaultGroupName,
		DefaultColor: opts.DefaultGroupColor,
	})
	sel := selection.NewSet(lamps, bus)

	c := &Coordinator{
		Lamps:      lamps,
		GroupStore: groupStore,
		Groups:     manager,
		Observable: observable,
		GroupPanel: groups.NewPanelSelection(groupStore),
		Selection:  sel,
		Controller: interaction.NewController(lamps, sel, bus, interaction.Options{
			SelectAllKey:        opts.SelectAllKey,
			DoubleClickInterval: opts.DoubleClickInterval,
		}),
		Commands:  commands.NewExecutor(lamps, manager),
		bus:       bus,
		hitRadius: opts.HitRadius,
	}

	// Wire up service dependencies
	c.wireServices()

	return c
}

// wireServices connects services to the lamp registry and the bus
func (c *Coordinator) wireServices() {
	c.unsubs = append(c.unsubs,
		c.Lamps.Watch(c.Selection),
		c.Lamps.Watch(c.Controller),
		c.bus.Subscribe(eventbus.EventGroupsChanged, func(eventbus.DomainEvent) {
			c.GroupPanel.Prune()
		}),
	)
}

// Close detaches every subscription the coordinator made
func (c *Coordinator) Close() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.Observable.Close()
}

// Subscribe registers handler for an invalidation topic. The returned
// function unsubscribes.
func (c *Coordinator) Subscribe(topic eventbus.EventType, handler func()) func() {
	return c.bus.Subscribe(topic, func(eventbus.DomainEvent) { handler() })
}

// HitRadius returns the lamp hit radius in canvas units
func (c *Coordinator) HitRadius() float64 {
	return c.hitRadius
}

// LampAt returns the topmost lamp under p, or nil
func (c *Coordinator) LampAt(p domain.Point) *domain.Lamp {
	return logic.LampAt(c.Lamps.All(), p, c.hitRadius)
}

// AllLamps returns every lamp in insertion order
func (c *Coordinator) AllLamps() []*domain.Lamp {
	return c.Lamps.All()
}

// AllGroups returns every group in creation order
func (c *Coordinator) AllGroups() []*domain.Group {
	return c.Groups.All()
}

// SelectedLamps returns the selected lamps
func (c *Coordinator) SelectedLamps() []*domain.Lamp {
	return c.Selection.Lamps()
}

// GroupOf returns the lamp's group, or nil
func (c *Coordinator) GroupOf(lamp *domain.Lamp) *domain.Group {
	if lamp == nil || !lamp.HasGroup() {
		return nil
	}
	return c.Groups.Get(lamp.Group())
}

// AddLamp creates a lamp at p
func (c *Coordinator) AddLamp(p domain.Point) *domain.Lamp {
	return c.Commands.CreateLamp(p)
}

// ToggleSelection converges the selected lamps
func (c *Coordinator) ToggleSelection() {
	c.Commands.Toggle(c.Selection.IDs())
}

// RemoveSelection removes the selected lamps and empties the selection
func (c *Coordinator) RemoveSelection() {
	c.Commands.RemoveLamps(c.Selection.IDs())
	c.Selection.Clear()
}

// AddSelectionToGroup puts the selected lamps in the focused group
func (c *Coordinator) AddSelectionToGroup() {
	group := c.GroupPanel.Focused()
	if !c.Commands.CanAddToGroup(c.Selection.IDs(), group) {
		return
	}
	c.Commands.AssignGroup(c.Selection.IDs(), group)
}

// RemoveSelectionFromGroup clears the group of the selected lamps
func (c *Coordinator) RemoveSelectionFromGroup() {
	if !c.Commands.CanRemoveFromGroup(c.Selection.IDs()) {
		return
	}
	c.Commands.AssignGroup(c.Selection.IDs(), "")
}

// ToggleSelectedGroups converges every lamp in the selected groups
func (c *Coordinator) ToggleSelectedGroups() {
	ids := c.GroupPanel.IDs()
	if !c.Commands.CanActOnGroups(ids) {
		return
	}
	c.Commands.ToggleGroups(ids)
}

// NewGroup appends a group and makes it the only selected group so the
// caller can start renaming it
func (c *Coordinator) NewGroup() *domain.Group {
	group := c.Commands.CreateGroup()
	c.GroupPanel.SelectOnly(group.ID)
	return group
}

// DeleteSelectedGroups removes the selected groups
func (c *Coordinator) DeleteSelectedGroups() {
	ids := c.GroupPanel.IDs()
	if !c.Commands.CanActOnGroups(ids) {
		return
	}
	c.Commands.DeleteGroups(ids)
}

// Toolbar reports which toolbar commands are currently enabled
type Toolbar struct {
	Toggle          bool
	Remove          bool
	AddToGroup      bool
	RemoveFromGroup bool
	GroupToggle     bool
	GroupRemove     bool
}

// Toolbar evaluates the enablement predicates against the current state
func (c *Coordinator) Toolbar() Toolbar {
	lamps := c.Selection.IDs()
	groupIDs := c.GroupPanel.IDs()
	return Toolbar{
		Toggle:          c.Commands.CanToggle(lamps),
		Remove:          c.Commands.CanRemove(lamps),
		AddToGroup:      c.Commands.CanAddToGroup(lamps, c.GroupPanel.Focused()),
		RemoveFromGroup: c.Commands.CanRemoveFromGroup(lamps),
		GroupToggle:     c.Commands.CanActOnGroups(groupIDs),
		GroupRemove:     c.Commands.CanActOnGroups(groupIDs),
	}
}

// FocusedGroup returns the group single-group commands act on, or nil
func (c *Coordinator) FocusedGroup() *domain.Group {
	return c.Groups.Get(c.GroupPanel.Focused())
}

// RenameFocusedGroup renames the focused group. Any name is accepted.
func (c *Coordinator) RenameFocusedGroup(name string) {
	if group := c.FocusedGroup(); group != nil {
		c.Commands.RenameGroup(group.ID, name)
	}
}

// SetFocusedGroupColor recolors the focused group
func (c *Coordinator) SetFocusedGroupColor(color domain.Color) {
	if group := c.FocusedGroup(); group != nil {
		c.Commands.SetGroupColor(group.ID, color)
	}
}
