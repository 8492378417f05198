package model

// SampleTasks returns a fresh copy of the seed task list.
func SampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "Complete project proposal", Priority: true},
		{ID: 2, Text: "Schedule team meeting", Completed: true},
		{ID: 3, Text: "Review quarterly reports", Priority: true},
		{ID: 4, Text: "Prepare presentation slides", Priority: true},
		{ID: 5, Text: "Update project documentation"},
	}
}

// SampleProjects returns a fresh copy of the seed project list.
func SampleProjects() []Project {
	return []Project{
		{
			ID:          1,
			Title:       "Website Redesign",
			Description: "Complete redesign of company website with modern UI/UX",
			Status:      StatusActive,
			Files:       []string{"design-mockup.pdf", "content-plan.docx"},
		},
		{
			ID:          2,
			Title:       "Marketing Campaign",
			Description: "Q4 social media marketing campaign planning and execution",
			Status:      StatusActive,
			Files:       []string{"campaign-budget.xlsx"},
		},
		{
			ID:          3,
			Title:       "Product Launch",
			Description: "Launch of new productivity software",
			Status:      StatusCompleted,
			Files:       []string{"launch-plan.pdf", "press-release.docx"},
		},
	}
}
