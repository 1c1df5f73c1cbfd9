package wizard

import (
	"strings"

	"charm.land/glamour/v2"
)

// renderMarkdown renders markdown content using glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

const termsMarkdown = `# Membership Terms & Conditions

## 1. Eligibility

Membership is open to companies, firms and associations lawfully operating
in Bangladesh. The representative named in the application must be
authorized to act on behalf of the applicant.

## 2. Fees

- The membership fee is payable in full before the membership is activated.
- Annual fees renew on the anniversary of activation.
- Life membership is a one-time payment and is **not refundable**.

## 3. Obligations of members

1. Keep company and representative details up to date.
2. Abide by the chamber's code of conduct and by-laws.
3. Refrain from using the chamber's name or logo without written consent.

## 4. Data use

Information provided in this application is used to process the
membership, to publish the member directory and to contact the
representative about chamber activities. It is never sold to third
parties.

## 5. Termination

The executive committee may suspend or terminate a membership for unpaid
fees or breach of these terms, after giving the member an opportunity to
respond.
`
