package taxonomy

// Default returns the built-in directory taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultCategories, defaultSubcategories, defaultTags)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultCategories = []Entry{
	{ID: 1, Label: "Writing & Content"},
	{ID: 2, Label: "Image & Design"},
	{ID: 3, Label: "Video & Animation"},
	{ID: 4, Label: "Audio & Voice"},
	{ID: 5, Label: "Code & Development"},
	{ID: 6, Label: "Productivity"},
	{ID: 7, Label: "Business & Marketing"},
	{ID: 8, Label: "Education & Research"},
	{ID: 9, Label: "Chat & Assistants"},
	{ID: 10, Label: "Data & Analytics"},
	{ID: 11, Label: "Health & Lifestyle"},
	{ID: 12, Label: "Automation & Agents"},
}

var defaultSubcategories = []Entry{
	{ID: 1, Label: "Copywriting", Parent: 1},
	{ID: 2, Label: "Blogging & SEO", Parent: 1},
	{ID: 3, Label: "Paraphrasing & Rewriting", Parent: 1},
	{ID: 4, Label: "Storytelling & Fiction", Parent: 1},
	{ID: 5, Label: "Image Generation", Parent: 2},
	{ID: 6, Label: "Photo Editing", Parent: 2},
	{ID: 7, Label: "Logo & Branding", Parent: 2},
	{ID: 8, Label: "UI & UX Design", Parent: 2},
	{ID: 9, Label: "Video Generation", Parent: 3},
	{ID: 10, Label: "Video Editing", Parent: 3},
	{ID: 11, Label: "Avatars & Presenters", Parent: 3},
	{ID: 12, Label: "Text to Speech", Parent: 4},
	{ID: 13, Label: "Music Generation", Parent: 4},
	{ID: 14, Label: "Transcription", Parent: 4},
	{ID: 15, Label: "Code Assistants", Parent: 5},
	{ID: 16, Label: "Code Review", Parent: 5},
	{ID: 17, Label: "Testing & QA", Parent: 5},
	{ID: 18, Label: "Low-Code & No-Code", Parent: 5},
	{ID: 19, Label: "Note Taking", Parent: 6},
	{ID: 20, Label: "Scheduling & Calendar", Parent: 6},
	{ID: 21, Label: "Email Assistants", Parent: 6},
	{ID: 22, Label: "Presentations", Parent: 6},
	{ID: 23, Label: "Sales", Parent: 7},
	{ID: 24, Label: "Social Media", Parent: 7},
	{ID: 25, Label: "Customer Support", Parent: 7},
	{ID: 26, Label: "Advertising", Parent: 7},
	{ID: 27, Label: "Tutoring & Learning", Parent: 8},
	{ID: 28, Label: "Research Assistants", Parent: 8},
	{ID: 29, Label: "Summarization", Parent: 8},
	{ID: 30, Label: "Chatbots", Parent: 9},
	{ID: 31, Label: "Personal Assistants", Parent: 9},
	{ID: 32, Label: "Companions & Roleplay", Parent: 9},
	{ID: 33, Label: "Data Visualization", Parent: 10},
	{ID: 34, Label: "Spreadsheets", Parent: 10},
	{ID: 35, Label: "Business Intelligence", Parent: 10},
	{ID: 36, Label: "Fitness & Wellness", Parent: 11},
	{ID: 37, Label: "Mental Health", Parent: 11},
	{ID: 38, Label: "Workflow Automation", Parent: 12},
	{ID: 39, Label: "Autonomous Agents", Parent: 12},
}

var defaultTags = []Entry{
	{ID: 1, Label: "Free"},
	{ID: 2, Label: "Freemium"},
	{ID: 3, Label: "Paid"},
	{ID: 4, Label: "Free Trial"},
	{ID: 5, Label: "Open Source"},
	{ID: 6, Label: "API Available"},
	{ID: 7, Label: "Browser Extension"},
	{ID: 8, Label: "Mobile App"},
	{ID: 9, Label: "Desktop App"},
	{ID: 10, Label: "Web App"},
	{ID: 11, Label: "Self-Hosted"},
	{ID: 12, Label: "Enterprise"},
	{ID: 13, Label: "Startups"},
	{ID: 14, Label: "Students"},
	{ID: 15, Label: "Developers"},
	{ID: 16, Label: "Designers"},
	{ID: 17, Label: "Marketers"},
	{ID: 18, Label: "Writers"},
	{ID: 19, Label: "Researchers"},
	{ID: 20, Label: "Educators"},
	{ID: 21, Label: "GPT-4"},
	{ID: 22, Label: "Claude"},
	{ID: 23, Label: "Gemini"},
	{ID: 24, Label: "Llama"},
	{ID: 25, Label: "Stable Diffusion"},
	{ID: 26, Label: "Midjourney"},
	{ID: 27, Label: "Whisper"},
	{ID: 28, Label: "Multimodal"},
	{ID: 29, Label: "Large Language Model"},
	{ID: 30, Label: "Fine-Tuning"},
	{ID: 31, Label: "Retrieval-Augmented Generation"},
	{ID: 32, Label: "Embeddings"},
	{ID: 33, Label: "Vector Database"},
	{ID: 34, Label: "Prompt Engineering"},
	{ID: 35, Label: "Text Generation"},
	{ID: 36, Label: "Text to Image"},
	{ID: 37, Label: "Image to Image"},
	{ID: 38, Label: "Text to Video"},
	{ID: 39, Label: "Image to Video"},
	{ID: 40, Label: "Speech to Text"},
	{ID: 41, Label: "Voice Cloning"},
	{ID: 42, Label: "Translation"},
	{ID: 43, Label: "Multilingual"},
	{ID: 44, Label: "Grammar Checking"},
	{ID: 45, Label: "SEO"},
	{ID: 46, Label: "Email Marketing"},
	{ID: 47, Label: "Lead Generation"},
	{ID: 48, Label: "CRM"},
	{ID: 49, Label: "E-commerce"},
	{ID: 50, Label: "Product Descriptions"},
	{ID: 51, Label: "Social Posts"},
	{ID: 52, Label: "Video Scripts"},
	{ID: 53, Label: "Podcasting"},
	{ID: 54, Label: "Subtitles"},
	{ID: 55, Label: "Dubbing"},
	{ID: 56, Label: "Background Removal"},
	{ID: 57, Label: "Upscaling"},
	{ID: 58, Label: "Inpainting"},
	{ID: 59, Label: "3D Generation"},
	{ID: 60, Label: "Interior Design"},
	{ID: 61, Label: "Fashion"},
	{ID: 62, Label: "Architecture"},
	{ID: 63, Label: "Game Development"},
	{ID: 64, Label: "Code Generation"},
	{ID: 65, Label: "Code Completion"},
	{ID: 66, Label: "Debugging"},
	{ID: 67, Label: "Documentation"},
	{ID: 68, Label: "SQL"},
	{ID: 69, Label: "DevOps"},
	{ID: 70, Label: "Security"},
	{ID: 71, Label: "Privacy Focused"},
	{ID: 72, Label: "Compliance"},
	{ID: 73, Label: "Legal"},
	{ID: 74, Label: "Finance"},
	{ID: 75, Label: "Accounting"},
	{ID: 76, Label: "Human Resources"},
	{ID: 77, Label: "Recruiting"},
	{ID: 78, Label: "Real Estate"},
	{ID: 79, Label: "Healthcare"},
	{ID: 80, Label: "Meditation"},
	{ID: 81, Label: "Nutrition"},
	{ID: 82, Label: "Travel"},
	{ID: 83, Label: "Meetings"},
	{ID: 84, Label: "Knowledge Base"},
	{ID: 85, Label: "Search Engine"},
	{ID: 86, Label: "PDF"},
	{ID: 87, Label: "Spreadsheet Formulas"},
	{ID: 88, Label: "Dashboards"},
	{ID: 89, Label: "Forecasting"},
	{ID: 90, Label: "Sentiment Analysis"},
	{ID: 91, Label: "Web Scraping"},
	{ID: 92, Label: "Integrations"},
	{ID: 93, Label: "Zapier"},
	{ID: 94, Label: "Slack"},
	{ID: 95, Label: "Chrome"},
	{ID: 96, Label: "Notion"},
	{ID: 97, Label: "Discord"},
	{ID: 98, Label: "Real-Time"},
	{ID: 99, Label: "Collaboration"},
	{ID: 100, Label: "No Signup Required"},
}
