package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/logger"
	"github.com/chamberhq/join/internal/registration"
	"github.com/chamberhq/join/internal/state"
	"github.com/chamberhq/join/internal/submit"
	"github.com/chamberhq/join/internal/tui/theme"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// ErrCancelled is returned by Run when the applicant quits without
// confirming a payment.
var ErrCancelled = errors.New("wizard cancelled by user")

// submitTimeout bounds a single submission attempt.
const submitTimeout = 10 * time.Second

const sidebarWidth = 26

// Options configures a wizard run.
type Options struct {
	TransitionDelay time.Duration
	Submitter       submit.Submitter // nil discards applications
	DataDir         string           // where UI preferences live; empty disables saving
	Now             func() time.Time // defaults to time.Now
}

// Result holds the last application confirmed during the run.
type Result struct {
	Submitted   bool
	Application registration.Application
}

// SubmissionResultMsg reports the outcome of handing an application to the
// submitter. It never changes what the applicant sees.
type SubmissionResultMsg struct {
	Application registration.Application
	Err         error
}

// WizardModel is the main BubbleTea model for the registration wizard.
type WizardModel struct {
	ctx       context.Context
	opts      Options
	ctrl      *Controller
	steps     [LastStep]Step
	bar       *ButtonBar
	viewport  viewport.Model
	ui        *state.UIState
	cancelled bool
	result    Result
	width     int
	height    int
}

// New creates a wizard at step 1 with an empty form.
func New(ctx context.Context, opts Options) *WizardModel {
	if opts.Submitter == nil {
		opts.Submitter = submit.Discard{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &WizardModel{
		ctx:  ctx,
		opts: opts,
		bar:  NewButtonBar(nil),
		viewport: viewport.New(
			viewport.WithWidth(60),
			viewport.WithHeight(10),
		),
		ui: state.Load(opts.DataDir),
	}
	m.viewport.MouseWheelEnabled = true
	m.viewport.MouseWheelDelta = 3
	m.reset()
	return m
}

// Run is the entry point for the wizard.
// It creates a standalone BubbleTea program, runs it, and returns the result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	m := New(ctx, opts)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wizModel.cancelled && !wizModel.result.Submitted {
		return nil, ErrCancelled
	}
	return &wizModel.result, nil
}

// reset discards the form and all step state.
func (m *WizardModel) reset() {
	m.ctrl = NewController(m.opts.TransitionDelay)
	m.steps = [LastStep]Step{
		NewMembershipStep(),
		NewBasicInfoStep(),
		NewVerificationStep(),
		NewCompanyStep(),
		NewPersonalStep(),
		NewBusinessStep(),
		NewOverviewStep(),
		NewPaymentStep(m.confirm, m.reload),
	}
	m.bar.Blur()
}

// reload starts over with a fresh form, like reloading the page.
func (m *WizardModel) reload() tea.Cmd {
	logger.Info("Starting a new application")
	m.reset()
	return m.enterStep()
}

// confirm snapshots the form and returns the submission command.
func (m *WizardModel) confirm(data registration.FormData) (registration.Application, tea.Cmd) {
	m.ctrl.Cancel()
	app := registration.NewApplication(data, m.opts.Now())
	m.result = Result{Submitted: true, Application: app}
	logger.Info("Payment confirmed for %s (%s, %s)", app.Reference, app.Form.MembershipType, app.Form.PaymentMethod)

	ctx, sub := m.ctx, m.opts.Submitter
	return app, func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, submitTimeout)
		defer cancel()
		return SubmissionResultMsg{Application: app, Err: sub.Submit(ctx, app)}
	}
}

// Controller exposes the controller for inspection.
func (m *WizardModel) Controller() *Controller { return m.ctrl }

// Current returns the step being shown.
func (m *WizardModel) Current() Step { return m.steps[m.ctrl.Step()-1] }

// Bar returns the button bar.
func (m *WizardModel) Bar() *ButtonBar { return m.bar }

// Cancelled reports whether the applicant quit.
func (m *WizardModel) Cancelled() bool { return m.cancelled }

// Result returns the last confirmed application.
func (m *WizardModel) Result() Result { return m.result }

// SidebarVisible reports whether the step list is shown.
func (m *WizardModel) SidebarVisible() bool { return m.ui.Sidebar.Visible }

// ScrollOffset returns the content viewport's vertical offset.
func (m *WizardModel) ScrollOffset() int { return m.viewport.YOffset() }

func (m *WizardModel) props() StepProps {
	return StepProps{
		Data: m.ctrl.Data(),
		Update: func(field registration.Field, value any) {
			// Errors are logged by the controller and the field keeps its value.
			_ = m.ctrl.Update(field, value)
		},
		Next: m.ctrl.Next,
		Back: m.ctrl.Back,
		GoTo: m.ctrl.GoTo,
	}
}

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	return m.enterStep()
}

// enterStep prepares the step that was just committed.
func (m *WizardModel) enterStep() tea.Cmd {
	m.bar.Blur()
	m.layout()
	cmd := m.Current().Init(m.ctrl.Data())
	m.refresh()
	m.viewport.GotoTop()
	return cmd
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case TransitionMsg:
		if m.ctrl.HandleTransition(msg) {
			return m, m.enterStep()
		}
		m.refresh()
		return m, nil

	case SubmissionResultMsg:
		if msg.Err != nil {
			logger.Error("Submitting application %s failed: %v", msg.Application.ID, msg.Err)
		} else {
			logger.Info("Application %s submitted", msg.Application.ID)
		}
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	return m, m.dispatch(func() tea.Cmd {
		return m.Current().Update(msg, m.props())
	})
}

// dispatch runs fn and enters the new step if fn committed a transition
// synchronously.
func (m *WizardModel) dispatch(fn func() tea.Cmd) tea.Cmd {
	before, ctrl := m.ctrl.Step(), m.ctrl
	cmd := fn()
	if m.ctrl != ctrl {
		// reloaded; the new step has been entered already
		return cmd
	}
	if m.ctrl.Step() != before {
		return tea.Batch(cmd, m.enterStep())
	}
	m.refresh()
	return cmd
}

func (m *WizardModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		m.cancelled = true
		return tea.Quit
	}

	if ms, ok := m.Current().(modalStep); ok && ms.Modal() {
		return m.dispatch(func() tea.Cmd { return m.Current().Update(msg, m.props()) })
	}

	switch key {
	case "esc":
		if m.ctrl.Step() == FirstStep && !m.ctrl.Animating() {
			m.cancelled = true
			return tea.Quit
		}
		return m.dispatch(m.ctrl.Back)
	case "alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8":
		n := int(key[len(key)-1] - '0')
		return m.dispatch(func() tea.Cmd { return m.ctrl.GoTo(n) })
	case "pgup":
		m.viewport.PageUp()
		return nil
	case "pgdown":
		m.viewport.PageDown()
		return nil
	case "ctrl+b":
		m.ui.Sidebar.Visible = !m.ui.Sidebar.Visible
		m.saveUIState()
		m.layout()
		m.refresh()
		return nil
	case "f1":
		m.ui.Hints.Visible = !m.ui.Hints.Visible
		m.saveUIState()
		m.layout()
		return nil
	case "tab":
		return m.tabForward()
	case "shift+tab":
		return m.tabBackward()
	}

	if m.bar.Focused() {
		switch key {
		case "left", "h":
			m.bar.FocusPrev()
		case "right", "l":
			m.bar.FocusNext()
		case "enter", "space":
			return m.dispatch(func() tea.Cmd { return m.bar.Activate(m.props()) })
		}
		return nil
	}

	return m.dispatch(func() tea.Cmd { return m.Current().Update(msg, m.props()) })
}

// tabForward moves focus through the step's inputs, then the buttons, then
// back to the first input.
func (m *WizardModel) tabForward() tea.Cmd {
	step := m.Current()
	if m.bar.Focused() {
		if m.bar.FocusNext() {
			return nil
		}
		m.bar.Blur()
		return step.FocusFirst()
	}
	cmd, ok := step.FocusNext()
	if ok {
		return cmd
	}
	if m.bar.FocusFirst() {
		step.Blur()
		return nil
	}
	return step.FocusFirst()
}

func (m *WizardModel) tabBackward() tea.Cmd {
	step := m.Current()
	if m.bar.Focused() {
		if m.bar.FocusPrev() {
			return nil
		}
		m.bar.Blur()
		return step.FocusLast()
	}
	cmd, ok := step.FocusPrev()
	if ok {
		return cmd
	}
	if m.bar.FocusLast() {
		step.Blur()
		return nil
	}
	return step.FocusLast()
}

func (m *WizardModel) saveUIState() {
	if err := state.Save(m.opts.DataDir, m.ui); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}
}

// contentSize returns the width and height available to step content.
func (m *WizardModel) contentSize() (int, int) {
	width := m.width - 4
	if m.ui.Sidebar.Visible {
		width -= sidebarWidth
	}
	width = min(max(width, 44), 100) - 6 // border and padding

	// header (3 + gap), modal chrome (border, padding, title, bar), hints
	height := m.height - 4 - 8
	if m.ui.Hints.Visible {
		height--
	}
	return width, max(height, 5)
}

// layout resizes the viewport, the bar and the current step.
func (m *WizardModel) layout() {
	width, height := m.contentSize()
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height)
	m.bar.SetWidth(width)
	m.Current().SetSize(width, height)
}

// refresh re-renders the step into the viewport and updates the buttons.
func (m *WizardModel) refresh() {
	data := m.ctrl.Data()
	step := m.Current()
	m.bar.SetButtons(step.Buttons(data))
	m.viewport.SetContent(step.View(data))
}

// View renders the wizard UI.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	body := m.renderModal()
	if m.ui.Sidebar.Visible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}
	sections := []string{m.renderHeader(), "", body}
	if m.ui.Hints.Visible {
		sections = append(sections, m.renderHints())
	}
	content := lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Center, sections...),
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

func (m *WizardModel) renderHeader() string {
	t := theme.Current()
	title := theme.ApplyGradient("Chamber Membership Registration", t.Primary, t.Tertiary)

	step := m.ctrl.Step()
	status := styleHintDesc.Render(fmt.Sprintf("Step %d of %d", step, LastStep))
	if m.ctrl.Animating() {
		status += styleHintSeparator.Render("  loading…")
	}

	barWidth := max(20, min(m.width-8, 80))
	filled := barWidth * step / LastStep
	progress := theme.ApplyGradient(strings.Repeat("━", filled), t.Primary, t.Secondary) +
		lipgloss.NewStyle().Foreground(colorSurface0).Render(strings.Repeat("━", barWidth-filled))

	return lipgloss.JoinVertical(lipgloss.Center, title, status, progress)
}

func (m *WizardModel) renderSidebar() string {
	current, furthest := m.ctrl.Step(), m.ctrl.Furthest()
	lines := []string{styleModalTitle.Render("Steps"), ""}
	for n := FirstStep; n <= LastStep; n++ {
		marker, style := "·", styleMuted
		switch {
		case n == current:
			marker, style = "▸", styleModalTitle
		case n <= furthest:
			marker, style = "✓", styleText
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %d %s", marker, n, StepName(n))))
	}
	lines = append(lines, "", styleHintDesc.Render("alt+1…8 to jump"))
	return styles().Sidebar.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// renderModal wraps the step content in a modal container with title.
func (m *WizardModel) renderModal() string {
	step := m.ctrl.Step()
	title := fmt.Sprintf("Step %d of %d: %s", step, LastStep, StepName(step))

	content := m.viewport.View()
	if m.ctrl.Animating() {
		content = lipgloss.NewStyle().Faint(true).Render(ansi.Strip(content))
	}

	sections := []string{
		styleModalTitle.Render(title),
		"",
		content,
		"",
		m.bar.Render(),
	}

	width, _ := m.contentSize()
	return styleModalContainer.Width(width + 6).Render(strings.Join(sections, "\n"))
}

func (m *WizardModel) renderHints() string {
	if h, ok := m.Current().(hintedStep); ok {
		return renderHintBar(append(h.Hints(), "ctrl+c", "quit")...)
	}
	return renderHintBar(
		"tab", "next field",
		"space", "select",
		"esc", "back",
		"ctrl+b", "sidebar",
		"ctrl+c", "quit",
	)
}
