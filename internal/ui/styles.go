package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, derived from the current theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorOutbound    color.Color
	ColorInbound     color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Contact list styles
var (
	ContactItemStyle     lipgloss.Style
	ContactSelectedStyle lipgloss.Style
	ContactNameStyle     lipgloss.Style
	ContactPreviewStyle  lipgloss.Style
	ContactTimeStyle     lipgloss.Style
	UnreadBadgeStyle     lipgloss.Style
	AvatarStyle          lipgloss.Style
)

// Chat styles
var (
	ChatHeaderStyle       lipgloss.Style
	ChatPresenceStyle     lipgloss.Style
	ChatTypingStyle       lipgloss.Style
	OutboundBubbleStyle   lipgloss.Style
	InboundBubbleStyle    lipgloss.Style
	BubbleMetaStyle       lipgloss.Style
	StatusReadStyle       lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	ChatPlaceholderStyle  lipgloss.Style
)

// Panel page styles (registration, profile, settings)
var (
	PageTitleStyle      lipgloss.Style
	SectionTitleStyle   lipgloss.Style
	FieldLabelStyle     lipgloss.Style
	FieldValueStyle     lipgloss.Style
	HelpStyle           lipgloss.Style
	ToggleOnStyle       lipgloss.Style
	ToggleOffStyle      lipgloss.Style
	ActionStyle         lipgloss.Style
	DangerActionStyle   lipgloss.Style
	SelectedRowStyle    lipgloss.Style
	StatusLoadingStyle  lipgloss.Style
	StatusErrorStyle    lipgloss.Style
	MarkdownCodeStyle   lipgloss.Style
	MarkdownLinkStyle   lipgloss.Style
	MarkdownInlineStyle lipgloss.Style
	MarkdownBoldStyle   lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorOutbound = lipgloss.Color(t.OutboundBg)
	ColorInbound = lipgloss.Color(t.InboundBg)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	ContactItemStyle = lipgloss.NewStyle().
		Padding(0, 1)
	ContactSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Padding(0, 1)
	ContactNameStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	ContactPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	ContactTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)
	UnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	AvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Width(4).
		Align(lipgloss.Center)

	ChatHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	ChatPresenceStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	ChatTypingStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)
	OutboundBubbleStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorOutbound).
		Padding(0, 1)
	InboundBubbleStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorInbound).
		Padding(0, 1)
	BubbleMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	StatusReadStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)
	ChatPlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PageTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	SectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FieldLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	FieldValueStyle = lipgloss.NewStyle().
		Foreground(ColorText)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)
	ToggleOnStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	ToggleOffStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	ActionStyle = lipgloss.NewStyle().
		Foreground(ColorText)
	DangerActionStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	SelectedRowStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText)
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	MarkdownCodeStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg))
	MarkdownInlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Link)).
		Background(lipgloss.Color(t.CodeBg))
	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Link)).
		Underline(true)
	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true)
}
