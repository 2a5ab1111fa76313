package cli

import (
	"mcq-trainer/internal/domain"
)

// sampleBanks provides a minimal built-in bank so the trainer works out
// of the box; swap in a file or Postgres bank via config for real use.
func sampleBanks(bankID string) map[string][]domain.Question {
	return map[string][]domain.Question{
		bankID: {
			{
				ID:       "sample-1",
				Question: "Which keyword declares a new variable with inferred type in Go?",
				Options:  []string{"var", ":=", "let", "def"},
				Correct:  1,
				Category: "Go Basics",
				Explanation: "The short declaration := both declares and " +
					"initializes a variable inside a function body.",
			},
			{
				ID:          "sample-2",
				Question:    "What does a nil map lookup return?",
				Options:     []string{"A panic", "The zero value", "An error", "Undefined behavior"},
				Correct:     1,
				Category:    "Go Basics",
				Explanation: "Reading from a nil map yields the element type's zero value; only writes panic.",
			},
			{
				ID:          "sample-3",
				Question:    "Which HTTP status code means Not Found?",
				Options:     []string{"400", "401", "404", "500"},
				Correct:     2,
				Category:    "Web",
				Explanation: "404 indicates the server cannot find the requested resource.",
			},
			{
				ID:          "sample-4",
				Question:    "Which command lists files in a directory on Unix?",
				Options:     []string{"dir", "ls", "list", "show"},
				Correct:     1,
				Category:    "Unix",
				Explanation: "ls lists directory contents; dir exists on some systems but ls is the standard.",
			},
			{
				ID:          "sample-5",
				Question:    "What is the time complexity of a map lookup?",
				Options:     []string{"O(1) average", "O(log n)", "O(n)", "O(n log n)"},
				Correct:     0,
				Category:    "Algorithms",
				Explanation: "Hash map lookups are constant time on average.",
			},
		},
	}
}
