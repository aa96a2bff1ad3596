package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandovabarbora/articles-checker/internal/model"
)

const subjectPrefix = "New Journal Articles Available"

// Subject builds the digest subject line for the given date.
func Subject(now time.Time) string {
	return fmt.Sprintf("%s - %s", subjectPrefix, now.Format("2006-01-02"))
}

// Body builds the plain-text digest body. Articles are grouped by journal
// in the order each journal first appears in the input, and within a
// journal in input order.
func Body(articles []model.Article) string {
	var order []string
	grouped := map[string][]model.Article{}
	for _, a := range articles {
		if _, ok := grouped[a.Journal]; !ok {
			order = append(order, a.Journal)
		}
		grouped[a.Journal] = append(grouped[a.Journal], a)
	}

	var b strings.Builder
	b.WriteString("Here are the latest articles:\n\n")
	for _, journal := range order {
		fmt.Fprintf(&b, "\n%s:\n", journal)
		for _, a := range grouped[journal] {
			fmt.Fprintf(&b, "- %s\n  %s\n", a.Title, a.Link)
		}
	}
	return b.String()
}
