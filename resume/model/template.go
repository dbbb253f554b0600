package model

import "strings"

// Template names a resume layout algorithm.
type Template string

const (
	TemplateModern       Template = "modern"
	TemplateClassic      Template = "classic"
	TemplateExecutive    Template = "executive"
	TemplateMinimalist   Template = "minimalist"
	TemplateCreative     Template = "creative"
	TemplateTechnical    Template = "technical"
	TemplateProfessional Template = "professional"
	TemplateAcademic     Template = "academic"
	TemplateElegant      Template = "elegant"
)

// DefaultTemplate is used for unknown template names.
const DefaultTemplate = TemplateModern

// Templates lists the built-in templates in presentation order.
var Templates = []Template{
	TemplateModern,
	TemplateClassic,
	TemplateExecutive,
	TemplateMinimalist,
	TemplateCreative,
	TemplateTechnical,
	TemplateProfessional,
	TemplateAcademic,
	TemplateElegant,
}

// NormalizeTemplateName lowercases and trims a requested template name.
func NormalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Title returns the display name, e.g. "Technical".
func (t Template) Title() string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Layout is the requested column structure. Most templates ignore it.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
)

// ParseLayout maps a requested layout onto a known value, defaulting to single-column.
func ParseLayout(name string) Layout {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(LayoutTwoColumn), "two_column", "twocolumn", "two":
		return LayoutTwoColumn
	default:
		return LayoutSingleColumn
	}
}

// FileName builds the suggested download name: <Name_with_underscores>_<template>_Resume.pdf.
func FileName(studentName string, template string) string {
	name := strings.TrimSpace(studentName)
	if name == "" {
		name = DefaultStudentName
	}
	name = strings.Join(strings.Fields(name), "_")
	name = strings.NewReplacer("/", "_", "\\", "_", "\"", "").Replace(name)
	return name + "_" + template + "_Resume.pdf"
}
