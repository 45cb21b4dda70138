package model

// Category ties a profile field to the node label and relationship type it is stored under.
type Category struct {
	Field        string
	Label        string
	Relationship string
}

var (
	SkillCategory         = Category{Field: "skills", Label: "Skill", Relationship: "HAS_SKILL"}
	EducationCategory     = Category{Field: "education", Label: "Education", Relationship: "HAS_EDUCATION"}
	ProjectCategory       = Category{Field: "projects", Label: "Project", Relationship: "HAS_PROJECT"}
	ExperienceCategory    = Category{Field: "experience", Label: "Experience", Relationship: "HAS_EXPERIENCE"}
	CertificationCategory = Category{Field: "certifications", Label: "Certification", Relationship: "HAS_CERTIFICATION"}
)

// Categories lists every attribute category in upsert order.
var Categories = []Category{
	SkillCategory,
	EducationCategory,
	ProjectCategory,
	ExperienceCategory,
	CertificationCategory,
}

// CategoryByRelationship returns the category stored under the given relationship type.
func CategoryByRelationship(rel string) (Category, bool) {
	for _, c := range Categories {
		if c.Relationship == rel {
			return c, true
		}
	}
	return Category{}, false
}
