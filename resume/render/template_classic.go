package render

import "resume-portal/resume/model"

func classicSkin() *Skin {
	body := BodyStyle{
		Font: FontSerif, Bold: FontSerifBold, Italic: FontSerifItalic,
		Size: 10.5, LineGap: 1.5,
		Text: ink, Muted: Hex("4B5563"), Accent: ink,
		ChipFill: mist, ChipText: ink,
	}
	return &Skin{
		Template: model.TemplateClassic,
		Body:     body,
		Header: HeaderStyle{
			Font: FontSerifBold, Size: 12.5, Color: ink, Accent: lightGray,
			Decor: DecorRule, Uppercase: true, After: 5,
		},
		Chrome: classicChrome,
		Rows: []Row{{{
			X: 50, Width: 495,
			Sections: []Section{
				secObjective,
				secEducation,
				secExperience,
				secProjects,
				with(secSkills, "", KindInline),
				with(secLanguages, "", KindInline),
				secCertifications,
				secAchievements,
				secReferences,
				secAdditional,
			},
		}}},
		TwoColumnRows: []Row{
			{{X: 50, Width: 495, Sections: []Section{secObjective}}},
			{
				{
					X: 50, Width: 170,
					Sections: []Section{
						secEducation,
						with(secSkills, "", KindList),
						with(secLanguages, "", KindList),
						secCertifications,
					},
				},
				{
					X: 240, Width: 305,
					Sections: []Section{secExperience, secProjects, secAchievements, secReferences, secAdditional},
				},
			},
		},
		Footer:     FooterStyle{Font: FontSerifItalic, Size: 8, Color: gray, Rule: true, RuleColor: lightGray},
		SectionGap: 10,
	}
}

func classicChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	y := c.Text(f.Info.Name, 50, 42, TextOptions{Width: page.Width - 100, Align: AlignCenter, Font: FontSerifBold, Size: 24, Color: ink})
	y = textIf(c, contactLine(f.Info, "  |  "), 50, y+2, TextOptions{Width: page.Width - 100, Align: AlignCenter, Font: FontSerif, Size: 10, Color: gray})
	c.Line(50, y+6, page.Width-50, y+6, 1.2, ink)
	c.Line(50, y+9, page.Width-50, y+9, 0.4, ink)
	return y + 22
}
