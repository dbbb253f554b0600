package model

import (
	"fmt"
	"strings"
)

// DefaultStudentName is used when a render request arrives without a name.
const DefaultStudentName = "Student"

// ResumeData is the free-text resume payload a template renders.
// Each field is a block of lines: headings, bulleted details and blank separators.
type ResumeData struct {
	Objective      string `json:"objective"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Languages      string `json:"languages"`
	Experience     string `json:"experience"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
	Achievements   string `json:"achievements"`
	ReferencesInfo string `json:"referencesInfo"`
	AdditionalInfo string `json:"additionalInfo"`

	// Only the academic template reads these.
	Research           string `json:"research,omitempty"`
	Publications       string `json:"publications,omitempty"`
	Conferences        string `json:"conferences,omitempty"`
	TeachingExperience string `json:"teachingExperience,omitempty"`
}

// StudentInfo identifies whose resume is rendered.
type StudentInfo struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Branch string `json:"branch"`
}

// Field names a ResumeData block.
type Field string

const (
	FieldObjective          Field = "objective"
	FieldEducation          Field = "education"
	FieldSkills             Field = "skills"
	FieldLanguages          Field = "languages"
	FieldExperience         Field = "experience"
	FieldProjects           Field = "projects"
	FieldCertifications     Field = "certifications"
	FieldAchievements       Field = "achievements"
	FieldReferencesInfo     Field = "referencesInfo"
	FieldAdditionalInfo     Field = "additionalInfo"
	FieldResearch           Field = "research"
	FieldPublications       Field = "publications"
	FieldConferences        Field = "conferences"
	FieldTeachingExperience Field = "teachingExperience"
)

// Fields lists every ResumeData block in declaration order.
var Fields = []Field{
	FieldObjective,
	FieldEducation,
	FieldSkills,
	FieldLanguages,
	FieldExperience,
	FieldProjects,
	FieldCertifications,
	FieldAchievements,
	FieldReferencesInfo,
	FieldAdditionalInfo,
	FieldResearch,
	FieldPublications,
	FieldConferences,
	FieldTeachingExperience,
}

// Get returns the block stored under f, or "" for an unknown field.
func (d ResumeData) Get(f Field) string {
	switch f {
	case FieldObjective:
		return d.Objective
	case FieldEducation:
		return d.Education
	case FieldSkills:
		return d.Skills
	case FieldLanguages:
		return d.Languages
	case FieldExperience:
		return d.Experience
	case FieldProjects:
		return d.Projects
	case FieldCertifications:
		return d.Certifications
	case FieldAchievements:
		return d.Achievements
	case FieldReferencesInfo:
		return d.ReferencesInfo
	case FieldAdditionalInfo:
		return d.AdditionalInfo
	case FieldResearch:
		return d.Research
	case FieldPublications:
		return d.Publications
	case FieldConferences:
		return d.Conferences
	case FieldTeachingExperience:
		return d.TeachingExperience
	}
	return ""
}

// Set stores value under f. Unknown fields are ignored.
func (d *ResumeData) Set(f Field, value string) {
	switch f {
	case FieldObjective:
		d.Objective = value
	case FieldEducation:
		d.Education = value
	case FieldSkills:
		d.Skills = value
	case FieldLanguages:
		d.Languages = value
	case FieldExperience:
		d.Experience = value
	case FieldProjects:
		d.Projects = value
	case FieldCertifications:
		d.Certifications = value
	case FieldAchievements:
		d.Achievements = value
	case FieldReferencesInfo:
		d.ReferencesInfo = value
	case FieldAdditionalInfo:
		d.AdditionalInfo = value
	case FieldResearch:
		d.Research = value
	case FieldPublications:
		d.Publications = value
	case FieldConferences:
		d.Conferences = value
	case FieldTeachingExperience:
		d.TeachingExperience = value
	}
}

// IsEmpty reports whether every block is blank.
func (d ResumeData) IsEmpty() bool {
	for _, f := range Fields {
		if strings.TrimSpace(d.Get(f)) != "" {
			return false
		}
	}
	return true
}

// Normalize unifies line endings so renderers only ever see "\n".
func (d ResumeData) Normalize() ResumeData {
	out := d
	for _, f := range Fields {
		out.Set(f, normalizeText(d.Get(f)))
	}
	return out
}

// Normalize trims the record and substitutes the placeholder name.
func (s StudentInfo) Normalize() StudentInfo {
	out := StudentInfo{
		Name:   strings.TrimSpace(s.Name),
		Email:  strings.TrimSpace(s.Email),
		Branch: strings.TrimSpace(s.Branch),
	}
	if out.Name == "" {
		out.Name = DefaultStudentName
	}
	return out
}

// ResumeDataFromMap coerces a loosely typed payload (decoded JSON, DB row maps) into ResumeData.
// Missing or null entries become "", scalars are formatted and string lists are joined by newlines.
func ResumeDataFromMap(raw map[string]any) ResumeData {
	var d ResumeData
	for _, f := range Fields {
		d.Set(f, coerceString(raw[string(f)]))
	}
	return d.Normalize()
}

// StudentInfoFromMap coerces a loosely typed payload into StudentInfo.
func StudentInfoFromMap(raw map[string]any) StudentInfo {
	return StudentInfo{
		Name:   coerceString(raw["name"]),
		Email:  coerceString(raw["email"]),
		Branch: coerceString(raw["branch"]),
	}.Normalize()
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, "\n")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := coerceString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	case fmt.Stringer:
		return val.String()
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprint(val)
	default:
		return ""
	}
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
