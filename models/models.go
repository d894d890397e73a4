package models

// ========================
// LEAD DATA MODEL
// ========================

// Lead represents one startup row from the leads CSV, plus the derived
// fields computed once at load time. Rows are never mutated after startup.
type Lead struct {
	CompanyName   string `json:"company_name"`
	Location      string `json:"location"`
	FundingStage  string `json:"funding_stage"`
	FundingAmount string `json:"funding_amount"` // raw string, e.g. "$5M"
	TechStack     string `json:"tech_stack"`
	Hiring        string `json:"hiring"` // "Yes" or "No"
	FounderName   string `json:"founder_name"`
	Email         string `json:"email"`

	// Derived at load time, pure functions of the fields above.
	LeadScore  int     `json:"lead_score"`
	FundingNum float64 `json:"funding_num"` // funding normalised to millions
	Context    string  `json:"-"`           // embedding input, not part of API payloads
}

// RankedLead is a lead annotated with its semantic similarity to a query.
type RankedLead struct {
	Lead
	MatchScore float64 `json:"match_score"`
}

// ========================
// API REQUEST PAYLOADS
// ========================

type ChatRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type SendEmailRequest struct {
	CompanyName   string `json:"company_name"`
	YourName      string `json:"your_name"`
	YourEmail     string `json:"your_email"`
	YourPassword  string `json:"your_password"`
	Mode          string `json:"mode"` // "default" or "custom"
	CustomMessage string `json:"custom_message"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ========================
// API RESPONSE PAYLOADS
// ========================

type DashboardResponse struct {
	TotalLeads    int      `json:"total_leads"`
	HiringLeads   int      `json:"hiring_leads"`
	AvgLeadScore  float64  `json:"avg_lead_score"`
	Locations     []string `json:"locations"`
	FundingStages []string `json:"funding_stages"`
}

type ChatResponse struct {
	Branch      string       `json:"branch"` // "funding_filter" or "semantic"
	MinMillions float64      `json:"min_millions,omitempty"`
	Leads       []Lead       `json:"leads,omitempty"`
	Matches     []RankedLead `json:"matches,omitempty"`
	Message     string       `json:"message,omitempty"`
}

type SendEmailResponse struct {
	Status    string `json:"status"` // "sent", "not_found", "message_required", "relay_error"
	Recipient string `json:"recipient,omitempty"`
	Error     string `json:"error,omitempty"`
}
