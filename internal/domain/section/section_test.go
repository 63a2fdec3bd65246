package section

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceBuild(t *testing.T) {
	ownerID := uuid.New()
	item := Experience.Build(ownerID, map[string]any{
		"job_title":  "Backend Engineer",
		"company":    "Acme",
		"start_date": "2022-03-01",
		"end_date":   "present",
	})

	assert.Equal(t, ownerID, item.OwnerID)
	assert.Equal(t, "Backend Engineer", item.Text("title"))
	assert.Equal(t, "Acme", item.Text("company"))

	start, _ := item.Values["start_date"].(*time.Time)
	require.NotNil(t, start)
	assert.Equal(t, 2022, start.Year())

	end, _ := item.Values["end_date"].(*time.Time)
	assert.Nil(t, end)

	// "present" as an end date means the position is ongoing.
	assert.Equal(t, true, item.Values["current_job"])
}

func TestExperienceBuildCamelCaseAliases(t *testing.T) {
	item := Experience.Build(uuid.New(), map[string]any{
		"jobTitle":  "Designer",
		"startDate": "2021-01-01",
		"endDate":   "2023-06-30",
	})

	assert.Equal(t, "Designer", item.Text("title"))
	assert.Equal(t, false, item.Values["current_job"])
}

func TestExperienceBuildWithoutEndDateIsCurrent(t *testing.T) {
	item := Experience.Build(uuid.New(), map[string]any{
		"job_title": "Consultant",
	})
	assert.Equal(t, true, item.Values["current_job"])
}

func TestExperienceUpdateRecomputesCurrentJob(t *testing.T) {
	item := Experience.Build(uuid.New(), map[string]any{
		"job_title": "Engineer",
	})
	assert.Equal(t, true, item.Values["current_job"])

	Experience.ApplyUpdate(item, map[string]any{"end_date": "2024-02-01"})
	assert.Equal(t, false, item.Values["current_job"])

	Experience.ApplyUpdate(item, map[string]any{"end_date": "present"})
	assert.Equal(t, true, item.Values["current_job"])
}

func TestApplyUpdatePartialSemantics(t *testing.T) {
	item := Education.Build(uuid.New(), map[string]any{
		"institution": "MIT",
		"degree":      "BSc",
		"gpa":         "3.9",
	})

	// Absent fields keep their value, empty strings become nulls.
	Education.ApplyUpdate(item, map[string]any{"gpa": ""})

	assert.Equal(t, "MIT", item.Text("institution"))
	assert.Equal(t, "BSc", item.Text("degree"))
	assert.Equal(t, "", item.Text("gpa"))
	gpa, _ := item.Values["gpa"].(*string)
	assert.Nil(t, gpa)
}

func TestAwardIssuerAlias(t *testing.T) {
	item := Awards.Build(uuid.New(), map[string]any{
		"title":        "Best Paper",
		"organization": "ACM",
	})
	assert.Equal(t, "ACM", item.Text("issuer"))
}

func TestPublicationYearFromDateString(t *testing.T) {
	item := Publications.Build(uuid.New(), map[string]any{
		"title": "Streaming Systems",
		"date":  "2019-05-20",
	})

	year, _ := item.Values["year"].(*int64)
	require.NotNil(t, year)
	assert.Equal(t, int64(2019), *year)
}

func TestProjectTechnologiesRoundTrip(t *testing.T) {
	item := Projects.Build(uuid.New(), map[string]any{
		"title":        "platform-api",
		"technologies": []any{"Go", "Postgres", ""},
	})

	out := Projects.Serialize(item)
	assert.Equal(t, []string{"Go", "Postgres"}, out["technologies"])
}

func TestSerializeWireVocabulary(t *testing.T) {
	item := Experience.Build(uuid.New(), map[string]any{
		"job_title":  "SRE",
		"start_date": "2020-09-01",
	})
	item.ID = 42

	out := Experience.Serialize(item)
	assert.Equal(t, int64(42), out["experience_id"])
	assert.Equal(t, "SRE", out["job_title"])
	assert.Equal(t, "2020-09-01", out["start_date"])
	assert.Nil(t, out["end_date"])
	assert.Equal(t, true, out["current"])
}

func TestProjectAndPortfolioShareTableButNotTag(t *testing.T) {
	assert.Equal(t, Projects.Table, Portfolio.Table)
	require.NotNil(t, Projects.Tag)
	require.NotNil(t, Portfolio.Tag)
	assert.Equal(t, Projects.Tag.Column, Portfolio.Tag.Column)
	assert.NotEqual(t, Projects.Tag.Value, Portfolio.Tag.Value)
}

func TestByResource(t *testing.T) {
	assert.Equal(t, Skills, ByResource("skills"))
	assert.Nil(t, ByResource("nonsense"))
}

func TestAllSchemasAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		assert.NotEmpty(t, s.Resource)
		assert.NotEmpty(t, s.Table)
		assert.NotEmpty(t, s.IDKey)
		assert.NotEmpty(t, s.ListKey)
		assert.NotEmpty(t, s.SingleKey)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Fields, "schema %s has no fields", s.Resource)
		assert.NotEmpty(t, s.OrderBy, "schema %s has no ordering", s.Resource)

		assert.False(t, seen[s.Resource], "duplicate resource %s", s.Resource)
		seen[s.Resource] = true
		for _, alias := range s.Aliases {
			assert.False(t, seen[alias], "alias %s collides", alias)
			seen[alias] = true
		}
	}
}
