package render

import (
	"strings"

	"resume-portal/resume/model"
)

var (
	elegantCream = Hex("FDFBF7")
	elegantGold  = Hex("B08D57")
	elegantInk   = Hex("2D2A26")
)

func elegantSkin() *Skin {
	return &Skin{
		Template: model.TemplateElegant,
		Body: BodyStyle{
			Font: FontSerif, Bold: FontSerifBold, Italic: FontSerifItalic,
			Size: 10.5, LineGap: 2,
			Text: elegantInk, Muted: Hex("7A6F62"), Accent: elegantGold,
			ChipFill: Hex("F3ECE0"), ChipText: elegantInk,
			Bullet: "·",
		},
		Header: HeaderStyle{
			Font: FontSerif, Size: 11, Color: elegantInk, Accent: elegantGold,
			Decor: DecorDiamond, Align: AlignCenter, Uppercase: true, CharSpacing: 2, After: 6,
		},
		Chrome: elegantChrome,
		Rows: []Row{{{
			X: 70, Width: 455,
			Sections: []Section{
				with(secObjective, "Profile", KindParagraph),
				secExperience,
				secEducation,
				secProjects,
				with(secSkills, "Expertise", KindInline),
				with(secLanguages, "", KindInline),
				secCertifications,
				secAchievements,
				secReferences,
				secAdditional,
			},
		}}},
		Footer:     FooterStyle{X: 70, Width: 455, Font: FontSerifItalic, Size: 7.5, Color: elegantGold},
		SectionGap: 14,
	}
}

func elegantChrome(f *Frame) float64 {
	c := f.Canvas
	page := c.PageSize()
	c.Rect(0, 0, page.Width, page.Height, elegantCream)

	inset := 22.0
	c.Line(inset, inset, page.Width-inset, inset, 0.75, elegantGold)
	c.Line(inset, page.Height-inset, page.Width-inset, page.Height-inset, 0.75, elegantGold)
	c.Line(inset, inset, inset, page.Height-inset, 0.75, elegantGold)
	c.Line(page.Width-inset, inset, page.Width-inset, page.Height-inset, 0.75, elegantGold)
	inner := inset + 4
	c.Line(inner, inner, page.Width-inner, inner, 0.3, elegantGold)
	c.Line(inner, page.Height-inner, page.Width-inner, page.Height-inner, 0.3, elegantGold)

	y := c.Text(strings.ToUpper(f.Info.Name), 70, 58, TextOptions{
		Width: 455, Align: AlignCenter, Font: FontSerif, Size: 24, Color: elegantInk, CharSpacing: 3,
	})
	drawDiamond(c, page.Width/2, y+8, 3.5, elegantGold)
	c.Line(page.Width/2-70, y+8, page.Width/2-9, y+8, 0.5, elegantGold)
	c.Line(page.Width/2+9, y+8, page.Width/2+70, y+8, 0.5, elegantGold)
	textIf(c, contactLine(f.Info, "  ·  "), 70, y+18, TextOptions{
		Width: 455, Align: AlignCenter, Font: FontSerifItalic, Size: 10, Color: Hex("7A6F62"),
	})
	return y + 50
}
