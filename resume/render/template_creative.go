package render

import "resume-portal/resume/model"

var (
	creativePurple = Hex("6D28D9")
	creativePink   = Hex("EC4899")
	creativeLilac  = Hex("EDE9FE")
	creativeAmber  = Hex("F59E0B")
)

func creativeSkin() *Skin {
	return &Skin{
		Template: model.TemplateCreative,
		Body: BodyStyle{
			Font: FontSans, Bold: FontSansBold, Italic: FontSansItalic,
			Size: 9.5, LineGap: 1.5,
			Text: slate, Muted: Hex("7C3AED"), Accent: creativePink,
			ChipFill: creativeLilac, ChipText: creativePurple,
			Bullet: "»",
		},
		Header: HeaderStyle{
			Font: FontSansBold, Size: 13, Color: creativePurple, Accent: creativePink,
			Decor: DecorDot, After: 6,
		},
		Chrome: creativeChrome,
		Rows: []Row{
			{
				{
					X: 40, Width: 320,
					Sections: []Section{
						with(secObjective, "Hello!", KindParagraph),
						secExperience,
						secProjects,
					},
				},
				{
					X: 380, Width: 175,
					Sections: []Section{
						with(secSkills, "Toolbox", KindChips),
						secLanguages,
						with(secEducation, "", KindTimeline),
						secCertifications,
						with(secAchievements, "Highlights", KindList),
					},
				},
			},
			{{X: 40, Width: 515, Sections: []Section{secReferences, secAdditional}}},
		},
		Footer:     FooterStyle{Font: FontSansItalic, Size: 7.5, Color: creativePurple},
		SectionGap: 12,
	}
}

func creativeChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()

	c.SetAlpha(0.15)
	c.Circle(page.Width-60, 40, 90, creativePink)
	c.Circle(40, page.Height-30, 70, creativeAmber)
	c.Circle(page.Width-20, page.Height-140, 45, creativePurple)
	c.SetAlpha(1)

	c.Polygon([]Point{
		{X: 0, Y: 0},
		{X: page.Width, Y: 0},
		{X: page.Width, Y: 110},
		{X: 0, Y: 160},
	}, creativePurple)

	c.Text("RESUME", page.Width-20, 20, TextOptions{
		Width: 120, Font: FontSansBold, Size: 9, Color: creativeLilac,
		CharSpacing: 3, Rotation: 90,
	})

	y := c.Text(f.Info.Name, 40, 36, TextOptions{Width: 460, Font: FontSansBold, Size: 30, Color: white})
	y = textIf(c, f.Info.Branch, 40, y+2, TextOptions{Width: 460, Font: FontSans, Size: 12, Color: creativeLilac})
	textIf(c, f.Info.Email, 40, y+2, TextOptions{Width: 460, Font: FontSansItalic, Size: 10, Color: creativeLilac})
	return 180
}
