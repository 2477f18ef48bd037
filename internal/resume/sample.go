package resume

// SampleDocument returns the bundled document that seeds the store on first
// load and after a corrupt state file. Callers receive a fresh copy each time.
func SampleDocument() *Document {
	return &Document{
		PersonalInfo: PersonalInfo{
			FullName: "Alex Rivera",
			Email:    "alex.rivera@example.com",
			Phone:    "(555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/arivera",
		},
		Summary: "Creative and detail-oriented Software Engineer with 5+ years of experience. I specialize in building scalable web applications and intuitive user interfaces.",
		Variations: &ContentVariations{
			SummaryCreative:  "I weave code into compelling user stories. As a Software Engineer, I treat every pixel as a promise kept to the user.",
			SummaryCorporate: "Results-driven Software Engineer with 5 years of tenure in high-paced agile environments. Committed to operational excellence.",
			SummaryTechnical: "Full-stack engineer proficient in React, Node.js, and AWS. Architected 15+ scalable microservices.",
		},
		Experience: []ExperienceItem{
			{
				Role:     "Senior Frontend Engineer",
				Company:  "TechNova Solutions",
				Duration: "2021 - Present",
				Description: []string{
					"Orchestrated a team of 4 developers to rebuild the core dashboard using React, improving load times by 40%.",
					"Engineered a comprehensive design system using Tailwind CSS, ensuring visual consistency across 15+ products.",
				},
			},
			{
				Role:     "Web Developer",
				Company:  "Creative Pulse Agency",
				Duration: "2018 - 2021",
				Description: []string{
					"Developed responsive websites for diverse clients including e-commerce and non-profit organizations.",
					"Collaborated with designers to translate Figma prototypes into pixel-perfect, accessible code.",
				},
			},
		},
		Projects: []ProjectItem{
			{
				Name:         "E-Commerce Dashboard",
				Description:  "Built a real-time analytics dashboard for store owners to track sales and inventory.",
				Technologies: []string{"React", "D3.js", "Firebase"},
				Link:         "github.com/alexr/dashboard",
			},
			{
				Name:         "TaskMaster AI",
				Description:  "An AI-powered todo list that prioritizes tasks based on deadlines and complexity.",
				Technologies: []string{"TypeScript", "OpenAI API", "Node.js"},
				Link:         "taskmaster.io",
			},
		},
		Education: []EducationItem{
			{Degree: "B.S. Computer Science", School: "University of California, Berkeley", Year: "2018"},
		},
		Skills: []string{"React", "TypeScript", "Node.js", "Tailwind CSS", "GraphQL", "AWS"},
		Critique: &ResumeCritique{
			Score:           85,
			Feedback:        []string{"Strong action verbs used.", "Good quantification of results.", "Clean layout."},
			ImprovementPlan: "Add more specific certifications or awards to stand out further.",
			MissingKeywords: []string{"Docker", "Kubernetes", "CI/CD"},
			Analysis: &AnalysisMetrics{
				Tone:                "Professional",
				GrammarScore:        98,
				EmploymentGaps:      []string{"No gaps detected"},
				ActionVerbStrength:  "Strong",
				QuantificationScore: 80,
				ProjectComplexity:   "High",
			},
		},
		CareerTools: &CareerTools{
			CoverLetter: "Dear Hiring Manager,\n\nI am writing to express my strong interest...",
			InterviewPrep: []InterviewPrep{
				{Question: "Tell me about a time you optimized a slow application.", Answer: "Focus on the 40% load time...", Type: PrepBehavioral},
				{Question: "Explain the virtual DOM.", Answer: "The Virtual DOM is a lightweight copy...", Type: PrepTechnical},
			},
			LinkedInHeadline:        "Senior Frontend Engineer | React & TypeScript Expert",
			LinkedInAbout:           "Passionate Senior Frontend Engineer with 5+ years of experience...",
			ColdEmailRecruiter:      "Hi [Name], I'm a Senior Engineer admiring your work at [Company]...",
			LinkedInPostOpenToWork:  "Exciting news! I'm officially looking for my next challenge in Frontend Engineering...",
			TwitterBio:              "Building the web pixel by pixel. Sr. Frontend Engineer. #ReactJS",
			WebsiteBio:              "Hi, I'm Alex. I build accessible, performant web applications.",
			GithubReadmeSnippet:     "## Hi there\nI'm Alex, a Frontend Engineer...",
			SalaryEstimation:        "$140,000 - $180,000",
			SuggestedCertifications: []string{"AWS Certified Developer", "Meta Frontend Developer"},
			SuggestedRoles:          []string{"Frontend Architect", "Full Stack Developer", "UI Engineer"},
			SoftSkills:              []string{"Mentorship", "Communication", "Agile Leadership"},
			SpanishSummary:          "Ingeniero de software creativo y orientado a los detalles...",
		},
	}
}
