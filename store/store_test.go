package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Company Name,Location,Funding Stage,Funding Amount,Tech Stack,Hiring,Founder Name,Email
Acme AI,San Francisco,Series A,$5M,"Python, PyTorch",Yes,Ada Park,ada@acme.ai
BetaWorks,Austin,Seed,$500K,Go,No,Ben Cho,ben@betaworks.io
Cortex Labs,New York,Series B,$10M,"Rust, Kafka",Yes,Cara Diaz,cara@cortexlabs.com
DeltaSoft,Berlin,Seed,$750K,JavaScript,No,Dan Meyer,dan@deltasoft.de
`

func mustLoad(t *testing.T, data string) *Store {
	t.Helper()
	s, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	s := mustLoad(t, sampleCSV)
	require.Equal(t, 4, s.Len())

	t.Run("derived fields computed per row", func(t *testing.T) {
		acme := s.Leads()[0]
		assert.Equal(t, "Acme AI", acme.CompanyName)
		assert.Equal(t, 5.0, acme.FundingNum)
		assert.Equal(t, 15, acme.LeadScore) // hiring + Series A + $5M + San Francisco
		assert.Contains(t, acme.Context, "Acme AI is located in San Francisco")
	})

	t.Run("header matching tolerates case and spacing", func(t *testing.T) {
		data := "company name, LOCATION ,Funding Stage,funding amount,Tech Stack,hiring,Founder Name,EMAIL\nAcme,London,Seed,$1M,Go,Yes,A,a@acme.io\n"
		s := mustLoad(t, data)
		require.Equal(t, 1, s.Len())
		assert.Equal(t, "London", s.Leads()[0].Location)
	})

	t.Run("missing required column fails", func(t *testing.T) {
		data := "Company Name,Location,Funding Stage,Funding Amount,Tech Stack,Hiring,Founder Name\nAcme,London,Seed,$1M,Go,Yes,A\n"
		_, err := Load(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("rows without a company name are skipped", func(t *testing.T) {
		data := sampleCSV + ",Nowhere,Seed,$1M,Go,No,X,x@x.io\n"
		s := mustLoad(t, data)
		assert.Equal(t, 4, s.Len())
	})
}

func TestSummaries(t *testing.T) {
	s := mustLoad(t, sampleCSV)

	assert.Equal(t, 2, s.HiringCount())
	assert.InDelta(t, (15+0+15+0)/4.0, s.AvgScore(), 1e-9)
	assert.Equal(t, []string{"San Francisco", "Austin", "New York", "Berlin"}, s.Locations())
	assert.Equal(t, []string{"Series A", "Seed", "Series B"}, s.Stages())
}

func TestApply(t *testing.T) {
	s := mustLoad(t, sampleCSV)

	t.Run("zero filter matches everything", func(t *testing.T) {
		assert.Len(t, s.Apply(Filter{}), 4)
	})

	t.Run("location filter", func(t *testing.T) {
		got := s.Apply(Filter{Locations: []string{"Austin", "Berlin"}})
		require.Len(t, got, 2)
		assert.Equal(t, "BetaWorks", got[0].CompanyName)
		assert.Equal(t, "DeltaSoft", got[1].CompanyName)
	})

	t.Run("stage and hiring filters combine", func(t *testing.T) {
		got := s.Apply(Filter{Stages: []string{"Seed"}, Hiring: "No"})
		require.Len(t, got, 2)
	})

	t.Run("hiring All is a no-op", func(t *testing.T) {
		assert.Len(t, s.Apply(Filter{Hiring: "All"}), 4)
	})

	t.Run("tech substring is case-insensitive", func(t *testing.T) {
		got := s.Apply(Filter{Tech: "pytorch"})
		require.Len(t, got, 1)
		assert.Equal(t, "Acme AI", got[0].CompanyName)
	})
}

func TestFilterByFunding(t *testing.T) {
	s := mustLoad(t, sampleCSV)

	got := s.FilterByFunding(3)
	require.Len(t, got, 2)
	// Original row order preserved.
	assert.Equal(t, "Acme AI", got[0].CompanyName)
	assert.Equal(t, "Cortex Labs", got[1].CompanyName)

	t.Run("strictly greater than", func(t *testing.T) {
		assert.Len(t, s.FilterByFunding(5), 1)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, s.FilterByFunding(100))
	})
}

func TestFindByCompany(t *testing.T) {
	s := mustLoad(t, sampleCSV)

	lead, ok := s.FindByCompany("  acme ai ")
	require.True(t, ok)
	assert.Equal(t, "ada@acme.ai", lead.Email)

	_, ok = s.FindByCompany("Nonexistent Inc")
	assert.False(t, ok)
}

func TestExportCSV(t *testing.T) {
	s := mustLoad(t, sampleCSV)

	out, err := ExportCSV(s.FilterByFunding(3))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Company Name,Location,Funding Stage,Funding Amount,Tech Stack,Hiring,Founder Name,Email,Lead Score", lines[0])
	assert.Contains(t, lines[1], "Acme AI")
	assert.Contains(t, lines[1], ",15")
}
