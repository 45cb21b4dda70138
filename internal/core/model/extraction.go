package model

const UnknownName = "Unknown"

// Profile is the structured form of a resume as returned by the extractor. The limits bound
// what an oracle may write into the graph for one candidate.
type Profile struct {
	Name           string   `json:"name" validate:"required,max=200"`
	Skills         []string `json:"skills" validate:"max=100,dive,required,max=300"`
	Education      []string `json:"education" validate:"max=100,dive,required,max=300"`
	Projects       []string `json:"projects" validate:"max=100,dive,required,max=300"`
	Experience     []string `json:"experience" validate:"max=100,dive,required,max=300"`
	Certifications []string `json:"certifications" validate:"max=100,dive,required,max=300"`
}

// Items returns the profile list stored under the given category.
func (p Profile) Items(c Category) []string {
	switch c.Field {
	case SkillCategory.Field:
		return p.Skills
	case EducationCategory.Field:
		return p.Education
	case ProjectCategory.Field:
		return p.Projects
	case ExperienceCategory.Field:
		return p.Experience
	case CertificationCategory.Field:
		return p.Certifications
	}
	return nil
}

// SetItems replaces the list stored under the given category.
func (p *Profile) SetItems(c Category, items []string) {
	switch c.Field {
	case SkillCategory.Field:
		p.Skills = items
	case EducationCategory.Field:
		p.Education = items
	case ProjectCategory.Field:
		p.Projects = items
	case ExperienceCategory.Field:
		p.Experience = items
	case CertificationCategory.Field:
		p.Certifications = items
	}
}

// RawProfile mirrors the oracle's JSON. Pointers distinguish absent fields from empty ones.
type RawProfile struct {
	Name           *string  `json:"name"`
	Skills         []string `json:"skills"`
	Education      []string `json:"education"`
	Projects       []string `json:"projects"`
	Experience     []string `json:"experience"`
	Certifications []string `json:"certifications"`
}
