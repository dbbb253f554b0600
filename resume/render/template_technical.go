package render

import "resume-portal/resume/model"

var (
	terminalBg     = Hex("0D1117")
	terminalBar    = Hex("161B22")
	terminalPanel  = Hex("21262D")
	terminalGreen  = Hex("3FB950")
	terminalBlue   = Hex("79C0FF")
	terminalText   = Hex("C9D1D9")
	terminalBright = Hex("E6EDF3")
	terminalDim    = Hex("8B949E")
)

func technicalSkin() *Skin {
	return &Skin{
		Template: model.TemplateTechnical,
		Body: BodyStyle{
			Font: FontMono, Bold: FontMonoBold, Italic: FontMono,
			Size: 9, LineGap: 1.5,
			Text: terminalText, Muted: terminalDim, Accent: terminalGreen,
			ChipFill: terminalPanel, ChipText: terminalBlue,
			Bullet: ">",
		},
		Header: HeaderStyle{
			Font: FontMonoBold, Size: 12, Color: terminalGreen,
			Prefix: "$ ", Lowercase: true, After: 6,
		},
		Chrome: technicalChrome,
		Rows: []Row{{{
			X: 45, Width: 505,
			Sections: []Section{
				with(secObjective, "cat about.txt", KindParagraph),
				secSkills,
				secExperience,
				secProjects,
				secEducation,
				secLanguages,
				secCertifications,
				secAchievements,
				secReferences,
				secAdditional,
			},
		}}},
		Footer:     FooterStyle{Font: FontMono, Size: 7, Color: terminalDim},
		SectionGap: 12,
	}
}

func technicalChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	c.Rect(0, 0, page.Width, page.Height, terminalBg)

	c.RoundedRect(30, 24, page.Width-60, 92, 6, terminalBar)
	c.Rect(30, 44, page.Width-60, 0.75, terminalPanel)
	for i, dot := range []Color{Hex("FF5F56"), Hex("FFBD2E"), Hex("27C93F")} {
		c.Circle(44+float64(i)*14, 34, 4, dot)
	}
	c.Text("~/resume", 30, 29, TextOptions{Width: page.Width - 60, Align: AlignCenter, Font: FontMono, Size: 8, Color: terminalDim})

	y := c.Text("$ whoami", 45, 54, TextOptions{Width: 505, Font: FontMonoBold, Size: 10, Color: terminalGreen})
	y = c.Text(f.Info.Name, 45, y+2, TextOptions{Width: 505, Font: FontMonoBold, Size: 22, Color: terminalBright})
	textIf(c, contactLine(f.Info, " // "), 45, y+2, TextOptions{Width: 505, Font: FontMono, Size: 9, Color: terminalBlue})
	return 136
}
