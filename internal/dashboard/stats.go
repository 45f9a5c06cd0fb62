package dashboard

import "math"

// Stats are the four dashboard counters and the yearly goal progress.
type Stats struct {
	BooksRead        int `json:"books_read"`
	BooksThisMonth   int `json:"books_this_month"`
	ReviewsCount     int `json:"reviews_count"`
	ReviewsThisMonth int `json:"reviews_this_month"`
	GoalProgress     int `json:"goal_progress"`
	GoalTarget       int `json:"goal_target"`
	GoalPercentage   int `json:"goal_percentage"`
}

// ComputeStats derives the counters. Goal progress counts every finished
// book, not only this year's.
func ComputeStats(booksRead, booksThisMonth, reviews, reviewsThisMonth, goalTarget int) Stats {
	return Stats{
		BooksRead:        booksRead,
		BooksThisMonth:   booksThisMonth,
		ReviewsCount:     reviews,
		ReviewsThisMonth: reviewsThisMonth,
		GoalProgress:     booksRead,
		GoalTarget:       goalTarget,
		GoalPercentage:   GoalPercentage(booksRead, goalTarget),
	}
}

// GoalPercentage is round(progress/target*100) clamped to [0, 100].
func GoalPercentage(progress, target int) int {
	if target <= 0 || progress <= 0 {
		return 0
	}
	pct := int(math.Round(float64(progress) / float64(target) * 100))
	return min(pct, 100)
}
