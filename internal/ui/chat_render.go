package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/chatsync/chatsync/internal/conversation"
)

// Compiled regex patterns for inline formatting inside message bodies
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Delivery status glyphs
const (
	GlyphSending   = "◷"
	GlyphSent      = "✓"
	GlyphDelivered = "✓✓"
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineMarkdown applies bold, inline code and link formatting to a line
func renderInlineMarkdown(line string) string {
	// Protect code spans from the other patterns
	var codeSpans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		placeholder := fmt.Sprintf("\x00CODE%d\x00", len(codeSpans))
		codeSpans = append(codeSpans, MarkdownInlineStyle.Render(code))
		return placeholder
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(parts[1]) + " (" + parts[2] + ")"
	})

	for i, rendered := range codeSpans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// renderMessageBody renders message text with fenced code blocks highlighted
// and everything else wrapped to width.
func renderMessageBody(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	var code strings.Builder
	inCode := false
	lang := ""

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "```") {
			if !inCode {
				inCode = true
				lang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				code.Reset()
			} else {
				inCode = false
				out = append(out, ansi.Hardwrap(highlightCode(code.String(), lang), width, true))
			}
			continue
		}
		if inCode {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}
		out = append(out, wrapText(renderInlineMarkdown(line), width))
	}

	// Unterminated fence: show what we have
	if inCode {
		out = append(out, ansi.Hardwrap(highlightCode(code.String(), lang), width, true))
	}
	return strings.Join(out, "\n")
}

// statusGlyph returns the styled delivery indicator for an outbound message.
func statusGlyph(s conversation.Status) string {
	switch s {
	case conversation.Sending:
		return BubbleMetaStyle.Render(GlyphSending)
	case conversation.Sent:
		return BubbleMetaStyle.Render(GlyphSent)
	case conversation.Delivered:
		return BubbleMetaStyle.Render(GlyphDelivered)
	default:
		return StatusReadStyle.Render(GlyphDelivered)
	}
}

// renderBubble renders one message aligned within a row of the given width.
// Outbound messages sit on the right with a status glyph, inbound on the left.
func renderBubble(m conversation.Message, width int) string {
	maxWidth := max(width*BubbleWidthPercent/100, 10)

	style := InboundBubbleStyle
	if m.IsOutbound() {
		style = OutboundBubbleStyle
	}
	bubble := style.Render(renderMessageBody(m.Text, maxWidth-style.GetHorizontalPadding()))

	meta := BubbleMetaStyle.Render(m.Timestamp.Format("15:04"))
	align := lipgloss.Left
	if m.IsOutbound() {
		meta += " " + statusGlyph(m.EffectiveStatus())
		align = lipgloss.Right
	}

	block := lipgloss.JoinVertical(align, bubble, meta)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// renderChatHeader renders the avatar, contact name and presence line.
func renderChatHeader(name, initials string, typing bool) string {
	presence := ChatPresenceStyle.Render("online")
	if typing {
		presence = ChatTypingStyle.Render("typing...")
	}
	avatar := AvatarStyle.Render(initials)
	indent := strings.Repeat(" ", lipgloss.Width(avatar)+1)
	return avatar + " " + ChatHeaderStyle.Render(name) + "\n" + indent + presence
}

// renderEmptyChat renders the placeholder shown when no contact is selected
func renderEmptyChat() string {
	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var sb strings.Builder
	sb.WriteString(msgStyle.Italic(true).Render("Select a chat to start messaging"))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("Press "))
	sb.WriteString(keyStyle.Render("enter"))
	sb.WriteString(msgStyle.Render(" on a contact to open it, or "))
	sb.WriteString(keyStyle.Render("/"))
	sb.WriteString(msgStyle.Render(" to search"))
	return sb.String()
}
