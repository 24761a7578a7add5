package productpage

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ReviewThanksMessage  = "Thank you for your review!"
	ReviewMissingMessage = "Please enter your name and comment."
)

// Reviewer simulates the review form. Reviews are logged, never stored.
type Reviewer struct {
	form   ReviewForm
	notice *notice
	log    zerolog.Logger
}

// Submit validates the form. It reports whether the review was accepted.
func (r *Reviewer) Submit() bool {
	if r.form == nil {
		return false
	}
	name := strings.TrimSpace(r.form.Name())
	comment := strings.TrimSpace(r.form.Comment())
	if name == "" || comment == "" {
		r.notice.show(ReviewMissingMessage, MessageError, false)
		return false
	}

	r.log.Info().
		Str("review_id", uuid.NewString()).
		Str("name", name).
		Int("comment_len", len(comment)).
		Msg("review submitted")

	r.form.Reset()
	r.notice.show(ReviewThanksMessage, MessageSuccess, true)
	return true
}
