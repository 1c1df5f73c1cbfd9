package registration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	t.Parallel()

	d := New()
	d.MembershipType = MembershipCorporate
	d.CompanyName = "Acme Trading & Co. Ltd"
	d.Password = "hunter22"
	d.ConfirmPassword = "hunter22"
	d.OTP = OTP{"1", "2", "3", "4", "5", "6"}

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("BST", 6*3600))
	app := NewApplication(d, now)

	_, err := uuid.Parse(app.ID)
	require.NoError(t, err)
	require.Equal(t, "acme-trading-and-co-ltd", app.Reference)
	require.Equal(t, now.UTC(), app.SubmittedAt)
	require.Equal(t, 25000, app.Fee)
	require.Empty(t, app.Form.Password)
	require.Equal(t, OTP{}, app.Form.OTP)
	require.Equal(t, "hunter22", d.Password, "source form untouched")

	raw, err := json.Marshal(app)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "hunter22")
	require.NotContains(t, string(raw), "password")
	require.Contains(t, string(raw), `"membershipType":"corporate"`)
}

func TestReference_Empty(t *testing.T) {
	t.Parallel()
	require.Equal(t, "unnamed-applicant", Reference(""))
	require.Equal(t, "unnamed-applicant", Reference("   "))
}

func TestApplicationMarkdown(t *testing.T) {
	t.Parallel()

	d := New()
	d.MembershipType = MembershipCorporate
	d.CompanyName = "Acme"
	d.BusinessSegment = SegmentService
	d.PaymentMethod = PaymentBank

	md := NewApplication(d, time.Now()).Markdown()
	require.Contains(t, md, "# Acme")
	require.Contains(t, md, "Corporate Member")
	require.Contains(t, md, "BDT 25,000")
	require.Contains(t, md, "Bank Transfer")
	require.Contains(t, md, "**Business segment:** Service")
	require.Contains(t, md, "**Designation:** —")
}
