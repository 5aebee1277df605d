package content

// Feature is one card in the features grid
type Feature struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

// Step is one stage of the engagement process
type Step struct {
	Number      string
	Title       string
	Description string
}

// Testimonial is a client quote shown in the carousel
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

// Site is the complete marketing copy
type Site struct {
	Name         string
	Tagline      string
	Headline     string
	Highlight    string
	Subheadline  string
	Features     []Feature
	Process      []Step
	Testimonials []Testimonial
}

// Default returns a fresh copy of the site copy
func Default() Site {
	return Site{
		Name:        "Northbeam Capital",
		Tagline:     "Investment strategy and applied AI for people who build things.",
		Headline:    "Capital With Clarity,",
		Highlight:   "Intelligence With Purpose",
		Subheadline: "We help organizations and individuals invest with conviction and put AI to work where it pays off: rigorous research, transparent models, and advisors who pick up the phone.",
		Features: []Feature{
			{"lucide--line-chart", "Portfolio Strategy", "Evidence-based allocation for funds, family offices and individuals, stress-tested against the scenarios that matter to you.", "primary"},
			{"lucide--brain-circuit", "Applied AI Consulting", "From opportunity mapping to production models: we scope, build and hand over AI systems your team can own.", "secondary"},
			{"lucide--shield-check", "Risk & Due Diligence", "Independent review of deals, vendors and models, with findings written for decision makers rather than auditors.", "accent"},
		},
		Process: []Step{
			{"01", "Discovery Call", "A free 30-minute conversation to understand your goals, constraints and timeline."},
			{"02", "Assessment", "We review your portfolio, data or operations and deliver a written diagnosis within two weeks."},
			{"03", "Roadmap", "A prioritized plan with costs, expected returns and the risks we see along the way."},
			{"04", "Execution", "We implement alongside your team, report monthly and step back once you are self-sufficient."},
		},
		Testimonials: []Testimonial{
			{"Northbeam rebuilt our allocation model in six weeks and explained every assumption along the way. Our board finally trusts the numbers.", "Helena Marsh", "CIO, Alder Family Office"},
			{"They talked us out of an AI project we did not need and into one that paid for itself in a quarter.", "Tomás Reyes", "COO, Brightwater Logistics"},
			{"Clear, patient advice on my retirement plan without any product pushing. I recommend them to everyone.", "Priya Nair", "Private client"},
			{"Their due diligence report caught a data-licensing issue two other firms missed.", "Daniel Okafor", "Partner, Kestrel Ventures"},
		},
	}
}
