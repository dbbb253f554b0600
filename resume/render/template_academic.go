package render

import "resume-portal/resume/model"

var academicNavy = Hex("1E3A8A")

func academicSkin() *Skin {
	return &Skin{
		Template: model.TemplateAcademic,
		Body: BodyStyle{
			Font: FontSerif, Bold: FontSerifBold, Italic: FontSerifItalic,
			Size: 10.5, LineGap: 1.5,
			Text: ink, Muted: Hex("374151"), Accent: academicNavy,
			ChipFill: Hex("DBEAFE"), ChipText: academicNavy,
		},
		Header: HeaderStyle{
			Font: FontSerifBold, Size: 12.5, Color: academicNavy, Accent: academicNavy,
			Decor: DecorRule, After: 5,
		},
		Chrome: academicChrome,
		Rows: []Row{{{
			X: 55, Width: 485,
			Sections: []Section{
				with(secObjective, "Research Interests", KindParagraph),
				secEducation,
				{Field: model.FieldResearch, Title: "Research Experience", Kind: KindEntries},
				{Field: model.FieldPublications, Title: "Publications", Kind: KindList},
				{Field: model.FieldConferences, Title: "Conferences & Presentations", Kind: KindList},
				{Field: model.FieldTeachingExperience, Title: "Teaching Experience", Kind: KindEntries},
				secExperience,
				secProjects,
				with(secSkills, "", KindInline),
				with(secLanguages, "", KindInline),
				secCertifications,
				with(secAchievements, "Honors & Awards", KindList),
				secReferences,
				secAdditional,
			},
		}}},
		Footer:     FooterStyle{Font: FontSerifItalic, Size: 8, Color: gray},
		SectionGap: 10,
	}
}

func academicChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	c.Line(40, 30, page.Width-40, 30, 2, academicNavy)
	c.Line(40, 34, page.Width-40, 34, 0.5, academicNavy)

	y := c.Text(f.Info.Name, 55, 46, TextOptions{Width: 485, Align: AlignCenter, Font: FontSerifBold, Size: 22, Color: ink})
	y = textIf(c, f.Info.Branch, 55, y+2, TextOptions{Width: 485, Align: AlignCenter, Font: FontSerifItalic, Size: 11, Color: academicNavy})
	y = textIf(c, f.Info.Email, 55, y+1, TextOptions{Width: 485, Align: AlignCenter, Font: FontSerif, Size: 10, Color: gray})

	c.Line(40, y+8, page.Width-40, y+8, 0.5, academicNavy)
	c.Line(40, y+12, page.Width-40, y+12, 2, academicNavy)
	c.Line(40, page.Height-44, page.Width-40, page.Height-44, 0.5, academicNavy)
	return y + 26
}
