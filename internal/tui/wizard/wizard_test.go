package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/chamberhq/join/internal/registration"
	"github.com/chamberhq/join/internal/state"
	"github.com/chamberhq/join/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

type testWizard struct {
	*WizardModel
	dir       string
	submitter *testfixtures.MockSubmitter
}

func newTestWizard(t *testing.T, delay time.Duration) *testWizard {
	t.Helper()
	dir := t.TempDir()
	sub := testfixtures.NewMockSubmitter()
	m := New(context.Background(), Options{
		TransitionDelay: delay,
		Submitter:       sub,
		DataDir:         dir,
		Now:             func() time.Time { return testfixtures.FixedTime },
	})
	m.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	m.Init()
	return &testWizard{WizardModel: m, dir: dir, submitter: sub}
}

// press sends keys in order and returns the command from the last one.
func (w *testWizard) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = w.Update(testfixtures.Key(k))
	}
	return cmd
}

func (w *testWizard) typeText(text string) {
	for _, k := range testfixtures.Type(text) {
		w.Update(k)
	}
}

// clickButton tabs into the button bar, moves to label and presses it.
func (w *testWizard) clickButton(t *testing.T, label string) tea.Cmd {
	t.Helper()
	for i := 0; !w.Bar().Focused(); i++ {
		require.Less(t, i, 20, "button bar never took focus")
		w.press("tab")
	}
	for i := 0; ; i++ {
		b, ok := w.Bar().FocusedButton()
		require.True(t, ok)
		if b.Label == label {
			break
		}
		require.Less(t, i, 5, "button %q not reachable", label)
		w.press("right")
	}
	return w.press("enter")
}

func (w *testWizard) data() registration.FormData {
	return w.Controller().Data()
}

func (w *testWizard) stepText() string {
	return testfixtures.Plain(w.Current().View(w.data()))
}

func TestWizard_EscOnFirstStepCancels(t *testing.T) {
	w := newTestWizard(t, 0)

	cmd := w.press("esc")
	require.True(t, w.Cancelled())
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWizard_EscGoesBack(t *testing.T) {
	w := newTestWizard(t, 0)
	w.press("alt+3")
	require.Equal(t, 3, w.Controller().Step())

	w.press("esc")
	require.Equal(t, 2, w.Controller().Step())
	require.False(t, w.Cancelled())
}

func TestWizard_CtrlCQuitsAnywhere(t *testing.T) {
	w := newTestWizard(t, 0)
	w.press("alt+5")

	cmd := w.press("ctrl+c")
	require.True(t, w.Cancelled())
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWizard_AltJumps(t *testing.T) {
	w := newTestWizard(t, 0)

	w.press("alt+6")
	require.Equal(t, 6, w.Controller().Step())
	require.IsType(t, &BusinessStep{}, w.Current())

	w.press("alt+1")
	require.Equal(t, 1, w.Controller().Step())
	require.Equal(t, 6, w.Controller().Furthest())

	w.press("alt+9")
	require.Equal(t, 1, w.Controller().Step())
}

func TestWizard_NextGatedOnMembership(t *testing.T) {
	w := newTestWizard(t, 0)

	// Only Next is enabled once a tier is chosen; before that tab finds
	// no enabled button and stays in the step.
	w.press("tab")
	require.False(t, w.Bar().Focused())

	w.press("enter")
	require.Equal(t, registration.MembershipGeneral, w.data().MembershipType)
	w.clickButton(t, "Next →")
	require.Equal(t, 2, w.Controller().Step())
}

func TestWizard_DelayedTransitions(t *testing.T) {
	w := newTestWizard(t, 5*time.Millisecond)

	first := w.press("alt+4")
	second := w.press("alt+6")
	require.NotNil(t, first)
	require.NotNil(t, second)
	require.True(t, w.Controller().Animating())
	require.Equal(t, 1, w.Controller().Step())
	require.Contains(t, testfixtures.Plain(w.renderHeader()), "loading…")

	w.Update(first())
	require.Equal(t, 1, w.Controller().Step(), "superseded transition is dropped")
	require.True(t, w.Controller().Animating())

	w.Update(second())
	require.Equal(t, 6, w.Controller().Step())
	require.False(t, w.Controller().Animating())
	require.NotContains(t, testfixtures.Plain(w.renderHeader()), "loading…")
}

func TestWizard_SidebarPreferencePersists(t *testing.T) {
	w := newTestWizard(t, 0)
	before := w.SidebarVisible()

	w.press("ctrl+b")
	require.Equal(t, !before, w.SidebarVisible())
	require.Equal(t, !before, state.Load(w.dir).Sidebar.Visible)

	again := New(context.Background(), Options{DataDir: w.dir})
	require.Equal(t, !before, again.SidebarVisible())
}

func TestWizard_StepChangeScrollsToTop(t *testing.T) {
	w := newTestWizard(t, 0)
	w.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	w.press("alt+7")
	w.press("pgdown")
	require.Positive(t, w.ScrollOffset())

	w.press("alt+2")
	require.Equal(t, 0, w.ScrollOffset())
}

func TestWizard_TabCyclesThroughButtons(t *testing.T) {
	w := newTestWizard(t, 0)
	w.press("alt+3")

	w.press("tab")
	require.True(t, w.Bar().Focused())
	b, _ := w.Bar().FocusedButton()
	require.Equal(t, "← Back", b.Label)

	w.press("tab")
	b, _ = w.Bar().FocusedButton()
	require.Equal(t, "Skip to payment", b.Label)

	// Verify is disabled until the code is complete, so the next tab
	// returns to the code boxes.
	w.press("tab")
	require.False(t, w.Bar().Focused())

	w.press("shift+tab")
	b, _ = w.Bar().FocusedButton()
	require.Equal(t, "Skip to payment", b.Label)
}

func TestWizard_SubmissionFailureKeepsSuccessScreen(t *testing.T) {
	w := newTestWizard(t, 0)
	w.submitter.SubmitError = errors.New("broker unavailable")

	w.press("alt+8")
	cmd := w.clickButton(t, "Confirm & Pay")
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(SubmissionResultMsg)
	require.True(t, ok)
	require.Error(t, res.Err)
	w.Update(msg)

	require.Equal(t, 1, w.submitter.Calls())
	require.True(t, w.Current().(*PaymentStep).Succeeded())
	require.True(t, w.Result().Submitted)
}

func TestWizard_ConfirmDropsPendingTransition(t *testing.T) {
	w := newTestWizard(t, 5*time.Millisecond)

	w.Update(w.press("alt+8")())
	require.Equal(t, 8, w.Controller().Step())

	held := w.press("esc")
	require.NotNil(t, held)
	require.True(t, w.Controller().Animating())

	cmd := w.clickButton(t, "Confirm & Pay")
	require.NotNil(t, cmd)
	require.False(t, w.Controller().Animating())

	w.Update(held())
	require.Equal(t, 8, w.Controller().Step())
	require.True(t, w.Current().(*PaymentStep).Succeeded())

	w.Update(cmd())
	require.Equal(t, 1, w.submitter.Calls())
	require.Equal(t, 8, w.Controller().Step())
}

func TestWizard_CompleteApplication(t *testing.T) {
	w := newTestWizard(t, 0)

	// Step 1: membership
	w.press("down", "enter")
	require.Equal(t, registration.MembershipCorporate, w.data().MembershipType)
	w.clickButton(t, "Next →")
	require.Equal(t, 2, w.Controller().Step())

	// Step 2: basic info
	w.typeText(testfixtures.FixedCompanyName)
	w.press("tab")
	w.typeText(testfixtures.FixedRepEmail)
	w.press("tab")
	w.typeText(testfixtures.FixedRepMobile)
	w.press("tab")
	w.typeText(testfixtures.FixedPassword)
	w.press("tab")
	w.typeText(testfixtures.FixedPassword)
	w.press("tab", "space")
	require.True(t, w.data().TermsAgreed)
	require.Equal(t, testfixtures.FixedCompanyName, w.data().CompanyName)
	require.Equal(t, testfixtures.FixedPassword, w.data().ConfirmPassword)
	w.clickButton(t, "Next →")
	require.Equal(t, 3, w.Controller().Step())

	// Step 3: verification
	w.typeText("123456")
	require.Equal(t, testfixtures.FixedOTP, w.data().OTP)
	w.clickButton(t, "Verify")
	require.Equal(t, 4, w.Controller().Step())

	// Steps 4 and 5 have no required gating.
	w.clickButton(t, "Next →")
	require.Equal(t, 5, w.Controller().Step())
	w.clickButton(t, "Next →")
	require.Equal(t, 6, w.Controller().Step())

	// Step 6: business
	w.press("down", "down", "down", "space")
	require.Equal(t, registration.SegmentService, w.data().BusinessSegment)
	w.clickButton(t, "Review →")
	require.Equal(t, 7, w.Controller().Step())

	// Step 7: overview
	out := w.stepText()
	require.Contains(t, out, "Corporate Member")
	require.Contains(t, out, "Service")
	require.Contains(t, out, testfixtures.FixedCompanyName)
	w.clickButton(t, "Proceed to payment →")
	require.Equal(t, 8, w.Controller().Step())

	// Step 8: payment
	w.press("right")
	require.Equal(t, registration.PaymentBank, w.data().PaymentMethod)
	require.Contains(t, w.stepText(), "Bank transfer details")

	cmd := w.clickButton(t, "Confirm & Pay")
	require.NotNil(t, cmd)
	w.Update(cmd())

	submitted := w.submitter.Submitted()
	require.Len(t, submitted, 1)
	require.Equal(t, "acme-trading-ltd", submitted[0].Reference)
	require.Equal(t, registration.PaymentBank, submitted[0].Form.PaymentMethod)
	require.Equal(t, testfixtures.FixedTime, submitted[0].SubmittedAt)
	require.Empty(t, submitted[0].Form.Password)

	payment := w.Current().(*PaymentStep)
	require.True(t, payment.Succeeded())
	require.Contains(t, w.stepText(), "✓ Payment confirmed")

	// The success screen only accepts a reload.
	w.press("esc")
	require.Equal(t, 8, w.Controller().Step())
	require.False(t, w.Cancelled())
	w.press("alt+1")
	require.Equal(t, 8, w.Controller().Step())

	w.press("r")
	require.Equal(t, 1, w.Controller().Step())
	require.Equal(t, 1, w.Controller().Furthest())
	require.Equal(t, testfixtures.EmptyForm(), w.data())
	require.False(t, w.Current().(*MembershipStep).CanAdvance(w.data()))

	res := w.Result()
	require.True(t, res.Submitted)
	require.Equal(t, submitted[0].ID, res.Application.ID)
}
