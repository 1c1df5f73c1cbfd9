package wizard

import (
	"testing"
	"time"

	"github.com/chamberhq/join/internal/registration"
	"github.com/chamberhq/join/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestController_Defaults(t *testing.T) {
	t.Parallel()

	c := NewController(0)
	require.Equal(t, 1, c.Step())
	require.Equal(t, 1, c.Furthest())
	require.False(t, c.Animating())
	require.Equal(t, registration.New(), c.Data())
}

func TestController_GoToInRange(t *testing.T) {
	t.Parallel()

	for k := FirstStep; k <= LastStep; k++ {
		c := NewController(0)
		require.NoError(t, c.Update(registration.FieldCompanyName, "Acme"))
		before := c.Data()

		require.Nil(t, c.GoTo(k))
		require.Equal(t, k, c.Step())
		require.Equal(t, before, c.Data(), "GoTo must not touch the form")
	}
}

func TestController_GoToOutOfRange(t *testing.T) {
	t.Parallel()

	c := NewController(0)
	c.GoTo(4)
	for _, k := range []int{0, -1, 9, 100} {
		require.Nil(t, c.GoTo(k))
		require.Equal(t, 4, c.Step(), "GoTo(%d) should be ignored", k)
		require.False(t, c.Animating())
	}
}

func TestController_NextAndBackSaturate(t *testing.T) {
	t.Parallel()

	c := NewController(0)
	require.Nil(t, c.Back())
	require.Equal(t, 1, c.Step())

	for range 10 {
		c.Next()
	}
	require.Equal(t, 8, c.Step())
	require.Nil(t, c.Next(), "Next at the last step is a no-op")
	require.Equal(t, 8, c.Step())

	c.Back()
	require.Equal(t, 7, c.Step())
}

func TestController_BackKeepsData(t *testing.T) {
	t.Parallel()

	c := NewController(0)
	c.GoTo(4)
	require.NoError(t, c.Update(registration.FieldCompanyEmail, "info@acme.example"))
	c.Back()
	require.Equal(t, 3, c.Step())
	require.Equal(t, "info@acme.example", c.Data().CompanyEmail)
}

func TestController_Update(t *testing.T) {
	t.Parallel()

	c := NewController(0)
	require.NoError(t, c.Update(registration.FieldTermsAgreed, true))
	require.NoError(t, c.Update(registration.FieldOTP, testfixtures.FixedOTP))
	require.True(t, c.Data().TermsAgreed)
	require.True(t, c.Data().OTP.Complete())

	err := c.Update(registration.FieldTermsAgreed, "yes")
	require.ErrorIs(t, err, registration.ErrInvalidValue)
	require.True(t, c.Data().TermsAgreed, "rejected update keeps the old value")

	err = c.Update(registration.Field("nope"), "x")
	require.ErrorIs(t, err, registration.ErrUnknownField)
}

func TestController_Furthest(t *testing.T) {
	t.Parallel()

	c := NewController(0)
	c.GoTo(6)
	c.Back()
	c.GoTo(2)
	require.Equal(t, 2, c.Step())
	require.Equal(t, 6, c.Furthest())
}

func TestController_DelayedTransition(t *testing.T) {
	t.Parallel()

	c := NewController(5 * time.Millisecond)
	cmd := c.Next()
	require.NotNil(t, cmd)
	require.True(t, c.Animating())
	require.Equal(t, 1, c.Step(), "step commits only after the tick")

	msg, ok := cmd().(TransitionMsg)
	require.True(t, ok)
	require.Equal(t, 2, msg.Target)

	require.True(t, c.HandleTransition(msg))
	require.Equal(t, 2, c.Step())
	require.False(t, c.Animating())

	require.False(t, c.HandleTransition(msg), "a transition commits once")
}

func TestController_CancelDropsPending(t *testing.T) {
	t.Parallel()

	c := NewController(5 * time.Millisecond)
	cmd := c.GoTo(4)
	require.NotNil(t, cmd)
	require.True(t, c.Animating())

	c.Cancel()
	require.False(t, c.Animating())
	require.False(t, c.HandleTransition(cmd().(TransitionMsg)))
	require.Equal(t, 1, c.Step())
	require.Equal(t, 1, c.Furthest())

	c.Cancel()
	require.False(t, c.Animating(), "cancel without pending work is a no-op")
}

func TestController_LastWriteWins(t *testing.T) {
	t.Parallel()

	c := NewController(5 * time.Millisecond)
	first := c.Next()
	second := c.GoTo(5)
	require.NotNil(t, first)
	require.NotNil(t, second)

	stale := first().(TransitionMsg)
	require.False(t, c.HandleTransition(stale))
	require.Equal(t, 1, c.Step())
	require.True(t, c.Animating())

	require.True(t, c.HandleTransition(second().(TransitionMsg)))
	require.Equal(t, 5, c.Step())
}

func TestController_PendingTargetsFromCommittedStep(t *testing.T) {
	t.Parallel()

	c := NewController(5 * time.Millisecond)
	c.Next()
	cmd := c.Next()

	msg := cmd().(TransitionMsg)
	require.Equal(t, 2, msg.Target, "Next is relative to the committed step")
	require.True(t, c.HandleTransition(msg))
	require.Equal(t, 2, c.Step())
}

func TestController_RequestCurrentStep(t *testing.T) {
	t.Parallel()

	c := NewController(5 * time.Millisecond)
	require.Nil(t, c.GoTo(1), "no pending work, nothing to do")
	require.False(t, c.Animating())

	c.GoTo(3)
	cmd := c.GoTo(1)
	require.NotNil(t, cmd, "returning to the current step supersedes the pending one")
	require.True(t, c.HandleTransition(cmd().(TransitionMsg)))
	require.Equal(t, 1, c.Step())
	require.Equal(t, 1, c.Furthest())
}
