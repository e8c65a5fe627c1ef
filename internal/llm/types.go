package llm

// Candidate is the structured record extracted from one resume. Field names
// on the wire follow the schema sent to the model, so the model's JSON can be
// unmarshalled directly after validation. The record is immutable once
// returned by Extract and is scoped to the request that produced it.
type Candidate struct {
	Name                      string             `json:"name"`
	Education                 []EducationEntry   `json:"Education"`
	Projects                  []ProjectEntry     `json:"Projects"`
	Experience                []ExperienceEntry  `json:"Experience"`
	Achievements              []AchievementEntry `json:"Achievements"`
	Skills                    []string           `json:"Skills"`
	PositionsOfResponsibility []PositionEntry    `json:"Position_of_Responsibility"`
	ContactInfo               map[string]string  `json:"Contact_Info"`
}

type EducationEntry struct {
	InstituteName string `json:"Institute_name"`
	DegreeName    string `json:"Degree_name"`
	Marks         string `json:"marks"` // free text ("8.5 CGPA", "85%", ...)
}

type ProjectEntry struct {
	ProjectName  string   `json:"project_name"`
	AboutProject string   `json:"about_project"`
	SkillsUsed   []string `json:"skills_used"`
}

type ExperienceEntry struct {
	PositionName string   `json:"Position_name"`
	CompanyName  string   `json:"Company_name"`
	SkillsUsed   []string `json:"skills_used"`
}

type AchievementEntry struct {
	AchievementName string `json:"Achievement_name"`
	InstituteName   string `json:"institute_name"`
	About           string `json:"about"`
}

type PositionEntry struct {
	PositionName string `json:"Position_name"`
	SocietyName  string `json:"Society_name"`
	Description  string `json:"Description"`
}
