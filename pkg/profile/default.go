package profile

var defaultProfile = Profile{
	Hero: Hero{
		Name:        "Induwara Uthsara",
		Initials:    "IU",
		Eyebrow:     "Full-Stack Web Developer · Colombo, Sri Lanka",
		Tagline:     "Building future-ready digital experiences",
		Intro:       "I transform ambitious ideas into resilient products—from research and design to deployment on the cloud. My mission is to bridge creativity and code for startups, communities, and mission-driven teams.",
		Meta:        []string{"Currently leveling up student innovators at UCSC", "Open to freelance & collaborative opportunities"},
		PortraitSrc: "/induwara.jpg",
		PortraitAlt: "Portrait of Induwara Uthsara",
	},
	Contact: Contact{
		Email:        "induwarauthsara@gmail.com",
		CTA:          "Let’s Collaborate",
		Conversation: "Start a conversation",
		Greeting:     "Say hello",
		Pitch:        "Share your ideas, partnership requests, or let’s plan the next workshop together.",
		LinksHeading: "Digital homes",
	},
	Copy: Copy{
		Work: SectionCopy{
			Eyebrow: "Impact Portfolio",
			Heading: "Designing systems that scale with ambition",
			Lead:    "From ERP suites and ticketing platforms to healthcare, education, and AI-driven applications, I create experiences that are intuitive, performant, and cloud-ready.",
		},
		Community: SectionCopy{
			Eyebrow: "Journey",
			Heading: "Leading with community, mentoring, and innovation",
		},
		PassionTitle: "What keeps me curious",
		Tech: SectionCopy{
			Eyebrow: "Operating Stack",
			Heading: "Tools shaping every launch",
		},
		Connect: SectionCopy{
			Eyebrow: "Let’s Connect",
			Heading: "Collaborate, mentor, or co-create",
			Lead:    "I love collaborating with founders, community builders, and creators who are shaping the future of work, learning, and human-centered tech.",
		},
		Footer: "Crafted with curiosity and purpose.",
	},
	Highlights: []Highlight{
		{
			Symbol:      "🧠",
			Title:       "Full-Stack Web Developer",
			Description: "Crafting human-centered products with the MERN stack, PHP, and clean design systems.",
		},
		{
			Symbol:      "🚀",
			Title:       "Beta Microsoft Learn Ambassador",
			Description: "Empowering student communities through hands-on workshops on Git, GitHub, Copilot, and AI.",
		},
		{
			Symbol:      "💼",
			Title:       "Founder · Cyex Tech Solutions",
			Description: "Building scalable solutions for startups—from ERP platforms to AI-assisted web applications.",
		},
	},
	Experiences: []Experience{
		{
			Title:       "Founder · Cyex Tech Solutions",
			Period:      "2022 — Present",
			Description: "Leading a freelance collective delivering ERP, ticketing, healthcare, and education systems with automation-first principles.",
		},
		{
			Title:       "Microsoft Learn Student Ambassador (Beta)",
			Period:      "2023 — Present",
			Description: "Organize hackathons, lightning talks, and tooling deep-dives that help students ship real-world projects faster.",
		},
		{
			Title:       "Information Systems Undergraduate · UCSC",
			Period:      "2021 — Present",
			Description: "Blending business strategy with applied software engineering to create meaningful digital experiences.",
		},
	},
	PassionAreas: []string{
		"AI-powered product experiences and intelligent automation",
		"Developer tooling, DX, and Git-native collaboration",
		"UI/UX systems that merge clarity, accessibility, and delight",
	},
	TechStack: []TechCategory{
		{Name: "Frontend", Items: []string{"React", "TypeScript", "TailwindCSS", "GSAP"}},
		{Name: "Backend", Items: []string{"Node.js", "Express.js", "PHP"}},
		{Name: "Database", Items: []string{"MongoDB", "MySQL"}},
		{Name: "Cloud", Items: []string{"Azure", "Google Cloud", "GitHub Actions"}},
		{Name: "AI", Items: []string{"LangChain basics", "OpenAI GPT", "Google Gemini"}},
	},
	Links: []ResourceLink{
		{Label: "induwara.dev", Href: "https://induwara.dev"},
		{Label: "LinkedIn", Href: "https://www.linkedin.com/in/induwarauthsara"},
		{Label: "blog.induwara.dev", Href: "https://blog.induwara.dev"},
		{Label: "GitHub", Href: "https://github.com/induwarauthsara"},
	},
}

// Default returns a copy of the built-in profile.
func Default() *Profile {
	return defaultProfile.Clone()
}
