package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(name string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(
			Class("inline-flex items-center justify-center size-8 rounded-full bg-primary text-primary-content"),
			Icon("lucide--compass size-4", ""),
		),
		Span(
			Class("font-bold text-xl"),
			g.Text(name),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. Without an aria label it is hidden from
// assistive technology.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-10 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)
	iconName := convertIconName(icon)
	sizeClass := fmt.Sprintf("text-%s size-5", color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify %s", sizeClass)),
			g.Attr("data-icon", iconName),
			g.Attr("aria-hidden", "true"),
		),
	)
}

// postForm wraps children in a bodyless POST form, used for buttons that fire
// a single event
func postForm(action string, children ...g.Node) g.Node {
	return g.El("form",
		g.Attr("method", "post"),
		g.Attr("action", action),
		g.Group(children),
	)
}

func autofocus(on bool) g.Node {
	return g.If(on, g.Attr("autofocus"))
}

func disabled(on bool) g.Node {
	return g.If(on, g.Attr("disabled"))
}
