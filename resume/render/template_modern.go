package render

import "resume-portal/resume/model"

const modernSidebarWidth = 190.0

var (
	modernNavy   = Hex("1E3A5F")
	modernBlue   = Hex("3B82F6")
	modernSky    = Hex("BFDBFE")
	modernDivide = Hex("4A6FA5")
	modernChip   = Hex("2C5282")
)

func modernSkin() *Skin {
	body := BodyStyle{
		Font: FontSans, Bold: FontSansBold, Italic: FontSansItalic,
		Size: 9.5, LineGap: 1.5,
		Text: slate, Muted: gray, Accent: modernBlue,
		ChipFill: Hex("DBEAFE"), ChipText: modernNavy,
	}
	sidebarBody := body
	sidebarBody.Text = white
	sidebarBody.Muted = modernSky
	sidebarBody.Accent = modernSky
	sidebarBody.ChipFill = modernChip
	sidebarBody.ChipText = white

	sidebarHeader := HeaderStyle{
		Font: FontSansBold, Size: 11, Color: white, Accent: modernBlue,
		Decor: DecorUnderline, Uppercase: true, After: 6,
	}

	return &Skin{
		Template: model.TemplateModern,
		Body:     body,
		Header: HeaderStyle{
			Font: FontSansBold, Size: 13, Color: modernNavy, Accent: modernBlue,
			Decor: DecorUnderline, Uppercase: true, After: 7,
		},
		Chrome: modernChrome,
		Rows: []Row{{
			{
				X: 20, Width: modernSidebarWidth - 40, Anchor: "sidebar", Clip: true,
				Header: &sidebarHeader, Body: &sidebarBody,
				Sections: []Section{secSkills, secLanguages, secCertifications},
			},
			{
				X: modernSidebarWidth + 25, Width: 595 - modernSidebarWidth - 55,
				Sections: []Section{
					with(secObjective, "Profile", KindParagraph),
					secExperience,
					secProjects,
					with(secEducation, "", KindTimeline),
					secAchievements,
					secReferences,
					secAdditional,
				},
			},
		}},
		Footer:     FooterStyle{X: modernSidebarWidth + 10, Width: 595 - modernSidebarWidth - 20, Font: FontSans, Size: 7, Color: gray},
		SectionGap: 12,
	}
}

func modernChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	c.Rect(0, 0, modernSidebarWidth, page.Height, modernNavy)

	cx := modernSidebarWidth / 2
	c.Circle(cx, 72, 36, modernBlue)
	c.Text(initials(f.Info.Name), cx-36, 72-13, TextOptions{
		Width: 72, Align: AlignCenter, Font: FontSansBold, Size: 22, Color: white,
	})

	w := modernSidebarWidth - 40
	y := c.Text(f.Info.Name, 20, 122, TextOptions{Width: w, Align: AlignCenter, Font: FontSansBold, Size: 16, Color: white})
	y = textIf(c, f.Info.Branch, 20, y+4, TextOptions{Width: w, Align: AlignCenter, Font: FontSans, Size: 10, Color: modernSky})
	y = textIf(c, f.Info.Email, 20, y+2, TextOptions{Width: w, Align: AlignCenter, Font: FontSans, Size: 8.5, Color: modernSky})
	c.Line(20, y+10, modernSidebarWidth-20, y+10, 0.5, modernDivide)
	f.SetAnchor("sidebar", y+24)

	return 40
}
