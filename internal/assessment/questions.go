package assessment

// Category tags grouping the quiz questions. Every question carries exactly
// one of these, and the weight matrix is keyed over the same set.
const (
	CategoryAnalytical     = "analytical"
	CategoryOrganizational = "organizational"
	CategoryMathematical   = "mathematical"
	CategoryVerbal         = "verbal"
	CategoryCreative       = "creative"
	CategoryTechnical      = "technical"
	CategoryInterpersonal  = "interpersonal"
)

// Categories lists every category tag in catalog order.
func Categories() []string {
	return []string{
		CategoryAnalytical,
		CategoryOrganizational,
		CategoryMathematical,
		CategoryVerbal,
		CategoryCreative,
		CategoryTechnical,
		CategoryInterpersonal,
	}
}

// Question is one quiz item. Options are ordered strongest-fit first: the
// scorer treats option 0 as full signal for the category and the last
// option as zero signal.
type Question struct {
	ID       int      `json:"id"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

// DefaultQuestions returns the fixed catalog used by the aptitude and
// personality assessments. Immutable, defined at startup.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:       1,
			Prompt:   "When facing a complex problem, how do you usually approach it?",
			Options:  []string{"Break it into smaller parts and analyze each one", "Sketch a rough plan and refine as I go", "Ask someone who solved something similar", "Try things until something works"},
			Category: CategoryAnalytical,
		},
		{
			ID:       2,
			Prompt:   "How comfortable are you interpreting charts, trends, and reports?",
			Options:  []string{"Very comfortable, I enjoy finding patterns", "Comfortable with some guidance", "I can manage simple ones", "I avoid them when possible"},
			Category: CategoryAnalytical,
		},
		{
			ID:       3,
			Prompt:   "How do you manage deadlines when several tasks compete for your time?",
			Options:  []string{"I plan everything in advance with a clear schedule", "I keep a priority list and adjust daily", "I handle whatever is most urgent", "I work best under last-minute pressure"},
			Category: CategoryOrganizational,
		},
		{
			ID:       4,
			Prompt:   "How would others describe your workspace and files?",
			Options:  []string{"Meticulously organized and labeled", "Mostly tidy with a system only I understand", "A bit cluttered but I find things", "Chaotic, I rely on memory"},
			Category: CategoryOrganizational,
		},
		{
			ID:       5,
			Prompt:   "How do you feel about working with numbers and calculations?",
			Options:  []string{"I genuinely enjoy it and seek it out", "I am confident when the context is practical", "I can do it but prefer not to", "I find it draining"},
			Category: CategoryMathematical,
		},
		{
			ID:       6,
			Prompt:   "When a budget or estimate is needed, what is your role?",
			Options:  []string{"I build the model and check the math", "I review the figures others produce", "I contribute rough numbers", "I leave the numbers to someone else"},
			Category: CategoryMathematical,
		},
		{
			ID:       7,
			Prompt:   "How confident are you presenting an idea to a group?",
			Options:  []string{"Very confident, I enjoy public speaking", "Confident with preparation", "Nervous but I get through it", "I strongly prefer writing over speaking"},
			Category: CategoryVerbal,
		},
		{
			ID:       8,
			Prompt:   "How do you handle explaining a difficult topic to a beginner?",
			Options:  []string{"I adapt examples until it clicks for them", "I prepare a structured walkthrough", "I point them to good material", "I find simplifying things frustrating"},
			Category: CategoryVerbal,
		},
		{
			ID:       9,
			Prompt:   "When given an open-ended task, what excites you most?",
			Options:  []string{"Inventing something nobody has tried", "Putting a fresh twist on a proven idea", "Executing a known approach well", "Having clear instructions to follow"},
			Category: CategoryCreative,
		},
		{
			ID:       10,
			Prompt:   "How often do you sketch, write, design, or build things for fun?",
			Options:  []string{"Regularly, it is how I relax", "Sometimes, when inspiration strikes", "Rarely, only when required", "Almost never"},
			Category: CategoryCreative,
		},
		{
			ID:       11,
			Prompt:   "How do you react when software or a device misbehaves?",
			Options:  []string{"I dig into settings or logs until I fix it", "I search for a solution and follow it", "I ask a more technical friend", "I wait for someone else to sort it out"},
			Category: CategoryTechnical,
		},
		{
			ID:       12,
			Prompt:   "How interested are you in learning new tools and technologies?",
			Options:  []string{"Very interested, I learn them proactively", "Interested when they help my work", "Neutral, I learn what is required", "I prefer sticking to what I know"},
			Category: CategoryTechnical,
		},
		{
			ID:       13,
			Prompt:   "In a team conflict, what role do you naturally take?",
			Options:  []string{"Mediator who helps both sides be heard", "Organizer who refocuses everyone on the goal", "Supporter who backs the stronger case", "Observer who stays out of it"},
			Category: CategoryInterpersonal,
		},
		{
			ID:       14,
			Prompt:   "How energized are you after a day of back-to-back meetings with people?",
			Options:  []string{"Energized, I thrive on interaction", "Fine, as long as the meetings are useful", "Tired, I need quiet time after", "Drained, I avoid such days"},
			Category: CategoryInterpersonal,
		},
	}
}
