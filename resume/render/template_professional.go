package render

import "resume-portal/resume/model"

var (
	professionalTeal = Hex("0F766E")
	professionalBand = Hex("F3F4F6")
)

func professionalSkin() *Skin {
	return &Skin{
		Template: model.TemplateProfessional,
		Body: BodyStyle{
			Font: FontSans, Bold: FontSansBold, Italic: FontSansItalic,
			Size: 10, LineGap: 1.5,
			Text: slate, Muted: gray, Accent: professionalTeal,
			ChipFill: Hex("CCFBF1"), ChipText: professionalTeal,
		},
		Header: HeaderStyle{
			Font: FontSansBold, Size: 12, Color: professionalTeal, Accent: mist,
			Decor: DecorRule, After: 6,
		},
		Chrome: professionalChrome,
		Rows: []Row{{{
			X: 40, Width: 515,
			Sections: []Section{
				with(secObjective, "Professional Summary", KindParagraph),
				secExperience,
				secEducation,
				secProjects,
				secSkills,
				secLanguages,
				secCertifications,
				secAchievements,
				secReferences,
				secAdditional,
			},
		}}},
		TwoColumnRows: []Row{{
			{
				X: 40, Width: 175,
				Sections: []Section{secSkills, secLanguages, secCertifications, with(secEducation, "", KindTimeline)},
			},
			{
				X: 235, Width: 320,
				Sections: []Section{
					with(secObjective, "Professional Summary", KindParagraph),
					secExperience,
					secProjects,
					secAchievements,
					secReferences,
					secAdditional,
				},
			},
		}},
		Footer:     FooterStyle{Font: FontSans, Size: 7.5, Color: gray, Rule: true, RuleColor: mist},
		SectionGap: 11,
	}
}

func professionalChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	c.Rect(0, 0, page.Width, 104, professionalBand)
	c.Rect(0, 0, 8, 104, professionalTeal)

	y := c.Text(f.Info.Name, 40, 28, TextOptions{Width: 515, Font: FontSansBold, Size: 24, Color: ink})
	y = textIf(c, f.Info.Branch, 40, y+2, TextOptions{Width: 515, Font: FontSans, Size: 11, Color: professionalTeal})
	textIf(c, f.Info.Email, 40, y+2, TextOptions{Width: 515, Font: FontSans, Size: 9.5, Color: gray})
	return 124
}
