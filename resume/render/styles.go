package render

import (
	"strings"

	"resume-portal/resume/model"
)

// Shared palette entries. Template-specific colors live next to each skin.
var (
	white     = Hex("FFFFFF")
	ink       = Hex("111827")
	slate     = Hex("1F2937")
	gray      = Hex("6B7280")
	lightGray = Hex("9CA3AF")
	mist      = Hex("E5E7EB")
)

// Standard section titles shared by most skins.
var (
	secObjective      = Section{Field: model.FieldObjective, Title: "Objective", Kind: KindParagraph}
	secEducation      = Section{Field: model.FieldEducation, Title: "Education", Kind: KindEntries}
	secSkills         = Section{Field: model.FieldSkills, Title: "Skills", Kind: KindChips}
	secLanguages      = Section{Field: model.FieldLanguages, Title: "Languages", Kind: KindChips}
	secExperience     = Section{Field: model.FieldExperience, Title: "Experience", Kind: KindEntries}
	secProjects       = Section{Field: model.FieldProjects, Title: "Projects", Kind: KindEntries}
	secCertifications = Section{Field: model.FieldCertifications, Title: "Certifications", Kind: KindList}
	secAchievements   = Section{Field: model.FieldAchievements, Title: "Achievements", Kind: KindList}
	secReferences     = Section{Field: model.FieldReferencesInfo, Title: "References", Kind: KindParagraph}
	secAdditional     = Section{Field: model.FieldAdditionalInfo, Title: "Additional Information", Kind: KindParagraph}
)

func with(s Section, title string, kind SectionKind) Section {
	if title != "" {
		s.Title = title
	}
	s.Kind = kind
	return s
}

// contactLine joins the non-empty contact parts with sep.
func contactLine(info model.StudentInfo, sep string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{info.Email, info.Branch} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, sep)
}

// textIf draws s when it is non-empty and returns the new cursor.
func textIf(c Canvas, s string, x, y float64, opts TextOptions) float64 {
	if strings.TrimSpace(s) == "" {
		return y
	}
	return c.Text(s, x, y, opts)
}
