// Package scoring holds the fixed lead-qualification rules: the weighted
// lead score, the funding-string normaliser, and the context sentence used
// as embedding input. All functions are pure and deterministic.
package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rushabh0311/LeadGenPro/models"
)

// privilegedStages earn the funding-stage bonus.
var privilegedStages = map[string]bool{
	"Series A": true,
	"Series B": true,
}

// bonusAmounts is the allow-list of raw funding strings that earn the
// amount bonus. Matched against the raw column value, not the parsed one.
var bonusAmounts = map[string]bool{
	"$1M":  true,
	"$5M":  true,
	"$10M": true,
	"$50M": true,
}

// targetCities are matched as substrings of the Location column.
var targetCities = []string{"San Francisco", "New York", "London"}

// Score returns the lead score in [0, 15]: +3 if hiring, +5 for a
// privileged funding stage, +5 for an allow-listed funding amount, +2 if
// the location contains a target city. Missing or malformed fields simply
// contribute nothing.
func Score(lead models.Lead) int {
	score := 0
	if lead.Hiring == "Yes" {
		score += 3
	}
	if privilegedStages[lead.FundingStage] {
		score += 5
	}
	if bonusAmounts[lead.FundingAmount] {
		score += 5
	}
	for _, city := range targetCities {
		if strings.Contains(lead.Location, city) {
			score += 2
			break
		}
	}
	return score
}

// ParseFunding normalises a raw funding string to millions of dollars.
// "$5M" → 5, "$750K" → 0.75. Anything else, including the empty string,
// resolves to 0 — lossy on purpose, the chat filter depends on it.
func ParseFunding(raw string) float64 {
	val := strings.ToUpper(strings.ReplaceAll(raw, "$", ""))
	if strings.Contains(val, "M") {
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(val, "M", "")), 64)
		if err != nil {
			return 0
		}
		return n
	}
	if strings.Contains(val, "K") {
		n, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(val, "K", "")), 64)
		if err != nil {
			return 0
		}
		return n / 1000
	}
	return 0
}

// BuildContext renders the one-sentence description embedded for semantic
// search. Field order is fixed: changing this template changes the
// embedding space and invalidates any saved index.
func BuildContext(lead models.Lead) string {
	hiring := "not hiring"
	if lead.Hiring == "Yes" {
		hiring = "hiring"
	}
	return fmt.Sprintf(
		"%s is located in %s, has raised %s funding in the %s stage. They use %s and are currently %s.",
		lead.CompanyName, lead.Location, lead.FundingAmount, lead.FundingStage, lead.TechStack, hiring,
	)
}

// Enrich fills the derived fields on a lead in one pass.
func Enrich(lead models.Lead) models.Lead {
	lead.LeadScore = Score(lead)
	lead.FundingNum = ParseFunding(lead.FundingAmount)
	lead.Context = BuildContext(lead)
	return lead
}
