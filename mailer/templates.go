package mailer

import (
	"fmt"

	"github.com/rushabh0311/LeadGenPro/models"
)

// Subject builds the collaboration subject line for a lead.
func Subject(lead models.Lead) string {
	return fmt.Sprintf("Collaboration Opportunity with %s", lead.CompanyName)
}

// DefaultBody renders the stock collaboration message for a lead.
func DefaultBody(lead models.Lead, senderName string) string {
	return fmt.Sprintf(`Hi %s,

I'm reaching out to explore potential collaboration opportunities between our teams.
%s's innovation in the %s domain is inspiring, and I believe we can create meaningful synergy.

Let's connect and discuss how we can support each other's goals.

Looking forward to hearing from you,
%s`, lead.FounderName, lead.CompanyName, lead.TechStack, senderName)
}

// CustomBody wraps a user-authored message in the standard greeting and
// sign-off.
func CustomBody(lead models.Lead, senderName, message string) string {
	return fmt.Sprintf(`Hi %s,

%s

Looking forward to hearing from you,
%s`, lead.FounderName, message, senderName)
}

// ColdEmail renders the dashboard's cold-email preview for a lead. It is
// display-only and never sent by the system.
func ColdEmail(lead models.Lead) string {
	return fmt.Sprintf(`Hi %s,

I came across %s and was impressed by your work in the %s space.
If you're looking to accelerate growth or explore automation tools, I'd love to connect.

Best,
[Your Name]`, lead.FounderName, lead.CompanyName, lead.TechStack)
}
