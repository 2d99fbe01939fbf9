package workout

import "net/url"

const (
	searchBaseURL  = "https://www.google.com/search?q="
	exerciseFilter = "site:musclewiki.com"
)

// ExerciseLink builds a search link restricted to the exercise reference site
func ExerciseLink(exercise string) string {
	return searchBaseURL + url.QueryEscape(exerciseFilter+" "+exercise)
}

// RefLink builds a search link for a term plus a suffix, e.g. "Arm Circles warm up"
func RefLink(term, suffix string) string {
	return searchBaseURL + url.QueryEscape(term+" "+suffix)
}
