package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       string
	OGImage     string
	// RefreshSeconds, when set, reloads the page while a submission is pending
	RefreshSeconds int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "northbeam"
	}

	if config.Title == "" {
		config.Title = "Northbeam Capital - Investment Strategy & Applied AI"
	}

	if config.Description == "" {
		config.Description = "Investment strategy and applied AI consulting for organizations and individuals."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				g.If(config.RefreshSeconds > 0,
					Meta(g.Attr("http-equiv", "refresh"), Content(strconv.Itoa(config.RefreshSeconds))),
				),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				ID("top"),
				g.Group(content),

				Script(Src("/static/js/contact-panel.js")),
			),
		),
	})
}
