// Package store loads the startup-leads CSV into an immutable in-memory
// table and exposes the filter operations the dashboard and chat views
// are built on. The table is constructed once at startup and never
// mutated, so it is safe to share across requests without locking.
package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rushabh0311/LeadGenPro/models"
	"github.com/rushabh0311/LeadGenPro/scoring"
)

// requiredColumns must all be present in the CSV header. Matching is
// case-insensitive and whitespace-tolerant.
var requiredColumns = []string{
	"company name",
	"location",
	"funding stage",
	"funding amount",
	"tech stack",
	"hiring",
	"founder name",
	"email",
}

// Store holds the full lead table in original row order.
type Store struct {
	leads []models.Lead
}

// Filter captures the dashboard's attribute filters. Zero value matches
// every lead.
type Filter struct {
	Locations []string // exact match against any listed location
	Stages    []string // exact match against any listed stage
	Hiring    string   // "Yes", "No", or "" / "All" for no filter
	Tech      string   // case-insensitive substring of the tech stack
}

// LoadCSV reads the leads file, verifies the required columns, and builds
// the store with derived fields computed per row.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open leads CSV: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load reads leads from any CSV stream. Header names vary in casing and
// spacing between exports, so columns are resolved through a normalised
// header index rather than by position.
func Load(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // tolerate malformed rows

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	idx := map[string]int{}
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("leads CSV is missing required column %q", col)
		}
	}

	getCol := func(row []string, name string) string {
		if i, ok := idx[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var leads []models.Lead
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("[store] warning: skipping malformed row: %v", err)
			continue
		}

		lead := models.Lead{
			CompanyName:   getCol(row, "company name"),
			Location:      getCol(row, "location"),
			FundingStage:  getCol(row, "funding stage"),
			FundingAmount: getCol(row, "funding amount"),
			TechStack:     getCol(row, "tech stack"),
			Hiring:        getCol(row, "hiring"),
			FounderName:   getCol(row, "founder name"),
			Email:         getCol(row, "email"),
		}
		if lead.CompanyName == "" {
			continue
		}
		leads = append(leads, scoring.Enrich(lead))
	}

	return &Store{leads: leads}, nil
}

// Leads returns all leads in original row order. Callers must not mutate
// the returned slice.
func (s *Store) Leads() []models.Lead {
	return s.leads
}

// Len returns the number of leads in the store.
func (s *Store) Len() int {
	return len(s.leads)
}

// Contexts returns each lead's context sentence, index-aligned with Leads.
func (s *Store) Contexts() []string {
	out := make([]string, len(s.leads))
	for i, lead := range s.leads {
		out[i] = lead.Context
	}
	return out
}

// HiringCount returns how many leads are currently hiring.
func (s *Store) HiringCount() int {
	n := 0
	for _, lead := range s.leads {
		if lead.Hiring == "Yes" {
			n++
		}
	}
	return n
}

// AvgScore returns the mean lead score, 0 for an empty store.
func (s *Store) AvgScore() float64 {
	if len(s.leads) == 0 {
		return 0
	}
	sum := 0
	for _, lead := range s.leads {
		sum += lead.LeadScore
	}
	return float64(sum) / float64(len(s.leads))
}

// Locations returns the distinct locations in first-seen order.
func (s *Store) Locations() []string {
	return s.distinct(func(l models.Lead) string { return l.Location })
}

// Stages returns the distinct funding stages in first-seen order.
func (s *Store) Stages() []string {
	return s.distinct(func(l models.Lead) string { return l.FundingStage })
}

func (s *Store) distinct(key func(models.Lead) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, lead := range s.leads {
		k := key(lead)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Apply returns the leads matching every populated filter field, in
// original row order.
func (s *Store) Apply(f Filter) []models.Lead {
	var out []models.Lead
	for _, lead := range s.leads {
		if len(f.Locations) > 0 && !containsString(f.Locations, lead.Location) {
			continue
		}
		if len(f.Stages) > 0 && !containsString(f.Stages, lead.FundingStage) {
			continue
		}
		if f.Hiring != "" && f.Hiring != "All" && lead.Hiring != f.Hiring {
			continue
		}
		if f.Tech != "" && !strings.Contains(strings.ToLower(lead.TechStack), strings.ToLower(f.Tech)) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

// FilterByFunding returns leads whose normalised funding strictly exceeds
// minMillions, in original row order.
func (s *Store) FilterByFunding(minMillions float64) []models.Lead {
	var out []models.Lead
	for _, lead := range s.leads {
		if lead.FundingNum > minMillions {
			out = append(out, lead)
		}
	}
	return out
}

// FindByCompany resolves a company by trimmed, case-insensitive exact name
// match. Returns false when no lead matches.
func (s *Store) FindByCompany(name string) (models.Lead, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, lead := range s.leads {
		if strings.ToLower(lead.CompanyName) == want {
			return lead, true
		}
	}
	return models.Lead{}, false
}

// ExportCSV renders the given leads in the input CSV format plus the
// Lead Score column, for the dashboard's download button.
func ExportCSV(leads []models.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Company Name", "Location", "Funding Stage", "Funding Amount", "Tech Stack", "Hiring", "Founder Name", "Email", "Lead Score"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, lead := range leads {
		row := []string{
			lead.CompanyName,
			lead.Location,
			lead.FundingStage,
			lead.FundingAmount,
			lead.TechStack,
			lead.Hiring,
			lead.FounderName,
			lead.Email,
			fmt.Sprintf("%d", lead.LeadScore),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
