package intent

// Intent is the closed-set classification of a user message's purpose.
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentFarewell        Intent = "farewell"
	IntentQuestion        Intent = "question"
	IntentBookAppointment Intent = "book_appointment"
	IntentCheckWeather    Intent = "check_weather"
	IntentOrderFood       Intent = "order_food"
	IntentGetHelp         Intent = "get_help"
	IntentUnknown         Intent = "unknown"
)

// catalogEntry binds an intent to its keyword patterns. Each pattern is an
// ordered list of required lowercase words.
type catalogEntry struct {
	Intent   Intent
	Patterns [][]string
}

// defaultCatalog returns the built-in pattern catalog. Slice order matters:
// when two intents tie on score, the one declared first wins.
func defaultCatalog() []catalogEntry {
	return []catalogEntry{
		{
			Intent: IntentGreeting,
			Patterns: [][]string{
				{"hello"},
				{"hi"},
				{"hey"},
				{"good", "morning"},
				{"good", "afternoon"},
				{"good", "evening"},
			},
		},
		{
			Intent: IntentFarewell,
			Patterns: [][]string{
				{"bye"},
				{"goodbye"},
				{"see", "you"},
				{"exit"},
				{"quit"},
			},
		},
		{
			Intent: IntentQuestion,
			Patterns: [][]string{
				{"what"},
				{"when"},
				{"where"},
				{"how"},
				{"why"},
				{"who"},
			},
		},
		{
			Intent: IntentBookAppointment,
			Patterns: [][]string{
				{"book", "appointment"},
				{"schedule", "meeting"},
				{"make", "appointment"},
				{"reserve"},
			},
		},
		{
			Intent: IntentCheckWeather,
			Patterns: [][]string{
				{"weather"},
				{"temperature"},
				{"forecast"},
				{"rain"},
				{"sunny"},
			},
		},
		{
			Intent: IntentOrderFood,
			Patterns: [][]string{
				{"order", "food"},
				{"order", "pizza"},
				{"want", "to", "eat"},
				{"hungry"},
			},
		},
		{
			Intent: IntentGetHelp,
			Patterns: [][]string{
				{"help"},
				{"assist"},
				{"support"},
			},
		},
	}
}
