// Package normalize reshapes a validated candidate record into the flat view
// the site generator and the HTTP handlers work with. The JSON key casing is
// part of the wire contract and is kept exactly as the original frontend
// expects it.
package normalize

import "resume-portfolio/internal/llm"

type View struct {
	Name         string            `json:"name"`
	Education    []Education       `json:"education"`
	ContactInfo  map[string]string `json:"Contact_Info"`
	Skills       []string          `json:"skills"`
	Projects     []Project         `json:"projects"`
	Experience   []Experience      `json:"Experience"`
	Achievements []Achievement     `json:"Achievements"`
	Positions    []Position        `json:"Position_of_responsibility"`
}

type Education struct {
	InstituteName string `json:"Institute_name"`
	DegreeName    string `json:"Degree_name"`
	Marks         string `json:"Marks"`
}

type Project struct {
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Tech  []string `json:"tech"`
}

type Experience struct {
	Company  string   `json:"Company"`
	Position string   `json:"Position"`
	Skills   []string `json:"Skills"`
}

type Achievement struct {
	AchievementName string `json:"achievement_name"`
	InstituteName   string `json:"institute_name"`
	Description     string `json:"description"`
}

type Position struct {
	PositionName string `json:"position_name"`
	SocName      string `json:"soc_name"`
	Description  string `json:"description"`
}

// Normalize flattens a Candidate into a View. It is a pure function: every
// slice and map is copied so the view never aliases the source record, and
// element order is preserved throughout.
func Normalize(c *llm.Candidate) *View {
	view := &View{
		Name:         c.Name,
		Education:    make([]Education, 0, len(c.Education)),
		ContactInfo:  make(map[string]string, len(c.ContactInfo)),
		Skills:       append([]string{}, c.Skills...),
		Projects:     make([]Project, 0, len(c.Projects)),
		Experience:   make([]Experience, 0, len(c.Experience)),
		Achievements: make([]Achievement, 0, len(c.Achievements)),
		Positions:    make([]Position, 0, len(c.PositionsOfResponsibility)),
	}

	for _, edu := range c.Education {
		view.Education = append(view.Education, Education{
			InstituteName: edu.InstituteName,
			DegreeName:    edu.DegreeName,
			Marks:         edu.Marks,
		})
	}

	for _, exp := range c.Experience {
		view.Experience = append(view.Experience, Experience{
			Company:  exp.CompanyName,
			Position: exp.PositionName,
			Skills:   append([]string{}, exp.SkillsUsed...),
		})
	}

	for _, project := range c.Projects {
		view.Projects = append(view.Projects, Project{
			Title: project.ProjectName,
			Desc:  project.AboutProject,
			Tech:  append([]string{}, project.SkillsUsed...),
		})
	}

	for _, achievement := range c.Achievements {
		view.Achievements = append(view.Achievements, Achievement{
			AchievementName: achievement.AchievementName,
			InstituteName:   achievement.InstituteName,
			Description:     achievement.About,
		})
	}

	for _, position := range c.PositionsOfResponsibility {
		view.Positions = append(view.Positions, Position{
			PositionName: position.PositionName,
			SocName:      position.SocietyName,
			Description:  position.Description,
		})
	}

	for label, value := range c.ContactInfo {
		view.ContactInfo[label] = value
	}

	return view
}
