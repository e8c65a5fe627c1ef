package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-portfolio/internal/llm"
)

func sampleCandidate() *llm.Candidate {
	return &llm.Candidate{
		Name: "Jane Doe",
		Education: []llm.EducationEntry{
			{InstituteName: "State University", DegreeName: "BSc Physics", Marks: "8.5 CGPA"},
			{InstituteName: "City College", DegreeName: "Higher Secondary", Marks: "85%"},
		},
		Projects: []llm.ProjectEntry{
			{ProjectName: "Telemetry Pipeline", AboutProject: "Streaming ingestion", SkillsUsed: []string{"Go", "Kafka"}},
		},
		Experience: []llm.ExperienceEntry{
			{PositionName: "Backend Engineer", CompanyName: "Acme Corp", SkillsUsed: []string{"Go", "Postgres"}},
			{PositionName: "Intern", CompanyName: "Beta Labs", SkillsUsed: []string{"Python"}},
		},
		Achievements: []llm.AchievementEntry{
			{AchievementName: "Hackathon Winner", InstituteName: "State University", About: "First place"},
		},
		Skills: []string{"Go", "Rust", "SQL"},
		PositionsOfResponsibility: []llm.PositionEntry{
			{PositionName: "Club Secretary", SocietyName: "Robotics Society", Description: "Weekly workshops"},
		},
		ContactInfo: map[string]string{"email": "jane@example.com"},
	}
}

func TestNormalizeRenamesFields(t *testing.T) {
	view := Normalize(sampleCandidate())

	assert.Equal(t, "Jane Doe", view.Name)

	require.Len(t, view.Education, 2)
	assert.Equal(t, "State University", view.Education[0].InstituteName)
	assert.Equal(t, "8.5 CGPA", view.Education[0].Marks)

	require.Len(t, view.Experience, 2)
	assert.Equal(t, "Acme Corp", view.Experience[0].Company)
	assert.Equal(t, "Backend Engineer", view.Experience[0].Position)

	require.Len(t, view.Projects, 1)
	assert.Equal(t, "Telemetry Pipeline", view.Projects[0].Title)
	assert.Equal(t, "Streaming ingestion", view.Projects[0].Desc)
	assert.Equal(t, []string{"Go", "Kafka"}, view.Projects[0].Tech)

	require.Len(t, view.Achievements, 1)
	assert.Equal(t, "Hackathon Winner", view.Achievements[0].AchievementName)
	assert.Equal(t, "First place", view.Achievements[0].Description)

	require.Len(t, view.Positions, 1)
	assert.Equal(t, "Robotics Society", view.Positions[0].SocName)

	assert.Equal(t, map[string]string{"email": "jane@example.com"}, view.ContactInfo)
}

func TestNormalizePreservesOrder(t *testing.T) {
	view := Normalize(sampleCandidate())

	assert.Equal(t, []string{"Go", "Rust", "SQL"}, view.Skills)
	assert.Equal(t, "State University", view.Education[0].InstituteName)
	assert.Equal(t, "City College", view.Education[1].InstituteName)
	assert.Equal(t, "Acme Corp", view.Experience[0].Company)
	assert.Equal(t, "Beta Labs", view.Experience[1].Company)
}

func TestNormalizeCopiesCollections(t *testing.T) {
	candidate := sampleCandidate()
	view := Normalize(candidate)

	view.Skills[0] = "mutated"
	view.Projects[0].Tech[0] = "mutated"
	view.Experience[0].Skills[0] = "mutated"
	view.ContactInfo["email"] = "mutated"

	assert.Equal(t, "Go", candidate.Skills[0])
	assert.Equal(t, "Go", candidate.Projects[0].SkillsUsed[0])
	assert.Equal(t, "Go", candidate.Experience[0].SkillsUsed[0])
	assert.Equal(t, "jane@example.com", candidate.ContactInfo["email"])
}

func TestNormalizeEmptyCandidate(t *testing.T) {
	view := Normalize(&llm.Candidate{Name: "Jane Doe"})

	assert.Equal(t, "Jane Doe", view.Name)
	assert.Empty(t, view.Education)
	assert.Empty(t, view.Skills)
	assert.Empty(t, view.Projects)
	assert.Empty(t, view.Experience)
	assert.Empty(t, view.Achievements)
	assert.Empty(t, view.Positions)
	assert.Empty(t, view.ContactInfo)
}
