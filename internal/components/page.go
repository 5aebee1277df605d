package components

import (
	g "maragu.dev/gomponents"

	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/content"
)

// LandingView is the state of every component on the landing page
type LandingView struct {
	Site        content.Site
	Panel       PanelView
	Contact     contact.Snapshot[contact.PageFields]
	Testimonial int
}

// Pending reports whether any form is waiting on the relay
func (v LandingView) Pending() bool {
	return v.Panel.Organization.Status == contact.StatusLoading ||
		v.Panel.Individual.Status == contact.StatusLoading ||
		v.Contact.Status == contact.StatusLoading
}

func LandingPage(v LandingView) g.Node {
	config := PageConfig{
		Title:       v.Site.Name + " - Investment Strategy & Applied AI",
		Description: v.Site.Tagline,
	}
	if v.Pending() {
		config.RefreshSeconds = 2
	}

	return Layout(
		config,
		Topbar(v.Site.Name, v.Panel),
		Hero(v.Site),
		Features(v.Site.Features),
		Process(v.Site.Process),
		Testimonials(v.Site.Testimonials, v.Testimonial),
		ContactSection(v.Contact),
		PageFooter(v.Site.Name, v.Site.Tagline),
	)
}
