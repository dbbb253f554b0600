package render

import "resume-portal/resume/model"

func minimalistSkin() *Skin {
	return &Skin{
		Template: model.TemplateMinimalist,
		Body: BodyStyle{
			Font: FontSans, Bold: FontSansBold, Italic: FontSansItalic,
			Size: 9.5, LineGap: 2,
			Text: slate, Muted: lightGray, Accent: lightGray,
			ChipFill: mist, ChipText: slate,
			Bullet: "-",
		},
		Header: HeaderStyle{
			Font: FontSans, Size: 9, Color: gray,
			Uppercase: true, CharSpacing: 1.5, After: 6,
		},
		Chrome: minimalistChrome,
		Rows: []Row{{{
			X: 60, Width: 475,
			Sections: []Section{
				with(secObjective, "About", KindParagraph),
				secExperience,
				secEducation,
				secProjects,
				with(secSkills, "", KindInline),
				with(secLanguages, "", KindInline),
				secCertifications,
				secAchievements,
				secReferences,
				secAdditional,
			},
		}}},
		Footer:     FooterStyle{X: 60, Width: 475, Font: FontSans, Size: 7, Color: lightGray},
		SectionGap: 16,
	}
}

func minimalistChrome(f *Frame) float64 {
	c := f.Canvas
	y := c.Text(f.Info.Name, 60, 60, TextOptions{Width: 475, Font: FontSans, Size: 26, Color: ink})
	y = textIf(c, contactLine(f.Info, "   "), 60, y+4, TextOptions{Width: 475, Font: FontSans, Size: 9, Color: gray})
	c.Line(60, y+14, 100, y+14, 0.75, ink)
	return y + 32
}
