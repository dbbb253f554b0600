package render

import "resume-portal/resume/model"

var (
	executiveNavy = Hex("1F2A44")
	executiveGold = Hex("C9A227")
)

func executiveSkin() *Skin {
	return &Skin{
		Template: model.TemplateExecutive,
		Body: BodyStyle{
			Font: FontSans, Bold: FontSansBold, Italic: FontSansItalic,
			Size: 10, LineGap: 1.5,
			Text: slate, Muted: gray, Accent: executiveGold,
			ChipFill: Hex("E8EDF5"), ChipText: executiveNavy,
		},
		Header: HeaderStyle{
			Font: FontSansBold, Size: 12, Color: executiveNavy, Accent: executiveGold,
			Decor: DecorLeftBar, Uppercase: true, After: 7,
		},
		Chrome: executiveChrome,
		Rows: []Row{
			{
				{X: 50, Width: 235, Sections: []Section{with(secSkills, "Core Competencies", KindChips)}},
				{X: 310, Width: 235, Sections: []Section{secLanguages, secCertifications}},
			},
			{{
				X: 50, Width: 495,
				Sections: []Section{
					with(secObjective, "Executive Summary", KindParagraph),
					with(secExperience, "Professional Experience", KindEntries),
					secProjects,
					with(secEducation, "", KindTimeline),
					secAchievements,
					secReferences,
					secAdditional,
				},
			}},
		},
		Footer:     FooterStyle{Font: FontSans, Size: 7.5, Color: gray, Rule: true, RuleColor: executiveGold},
		SectionGap: 12,
	}
}

func executiveChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	c.Rect(0, 0, page.Width, 120, executiveNavy)
	c.Rect(0, 120, page.Width, 4, executiveGold)

	y := c.Text(f.Info.Name, 50, 30, TextOptions{Width: page.Width - 100, Font: FontSerifBold, Size: 28, Color: white})
	y = textIf(c, f.Info.Branch, 50, y+4, TextOptions{Width: page.Width - 100, Font: FontSans, Size: 11, Color: executiveGold})
	textIf(c, f.Info.Email, 50, y+2, TextOptions{Width: page.Width - 100, Font: FontSans, Size: 10, Color: mist})
	return 146
}
