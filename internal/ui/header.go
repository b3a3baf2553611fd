package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width       int
	contactName string
	subtitle    string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetContactName sets the active contact shown on the right
func (h *Header) SetContactName(name string) {
	h.contactName = name
}

// SetSubtitle sets muted text shown after the contact name, such as the
// registered phone number or the open panel.
func (h *Header) SetSubtitle(subtitle string) {
	h.subtitle = subtitle
}

// View renders the header
func (h *Header) View() string {
	titleText := " chatsync"
	var rightText string
	if h.contactName != "" {
		rightText = h.contactName
	}
	if h.subtitle != "" {
		if rightText != "" {
			rightText += " "
		}
		rightText += "(" + h.subtitle + ")"
	}
	if rightText != "" {
		rightText += " "
	}

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The subtitle portion is drawn in the muted text color.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	subtitleStart := -1
	if h.subtitle != "" {
		marker := []rune("(" + h.subtitle + ")")
		if idx := strings.LastIndex(content, string(marker)); idx >= 0 {
			subtitleStart = len([]rune(content[:idx]))
		}
	}

	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 9) // " chatsync"

		if subtitleStart >= 0 && i >= subtitleStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
