package session

import "math"

// Grade buckets a percentage for the results screen.
type Grade int

const (
	GradeLow  Grade = iota // below 50%
	GradeMid               // 50% to 79%
	GradeHigh              // 80% and up
)

// Summary holds the data displayed on the results screen.
type Summary struct {
	Result
	Percent  int
	Grade    Grade
	Headline string
}

// Summarize derives the display figures for r.
func Summarize(r Result) Summary {
	s := Summary{Result: r}
	if r.TotalQuestions > 0 {
		s.Percent = int(math.Round(float64(r.Score) * 100 / float64(r.TotalQuestions)))
	}

	switch {
	case s.Percent >= 80:
		s.Grade = GradeHigh
		s.Headline = "Great job!"
	case s.Percent >= 50:
		s.Grade = GradeMid
		s.Headline = "Game Complete"
	default:
		s.Grade = GradeLow
		s.Headline = "Game Complete"
	}
	return s
}
