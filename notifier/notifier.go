// Package notifier fires the external announcement when an article is
// approved. Failures are reported to the caller but never block or roll back
// the approval itself.
package notifier

import (
	"fmt"

	"news-portal-api/models"

	"github.com/rs/zerolog/log"
)

type Notifier interface {
	Notify(article *models.Article) error
}

// SocialNotifier posts an announcement about the approved article to the
// portal's social account. The outbound call is delegated so the hook stays
// synchronous and side-effect free beyond the single post.
type SocialNotifier struct {
	// Post performs the actual outbound call. Left nil, the notifier only
	// logs the announcement, which is the behavior in development setups
	// without social credentials.
	Post func(status string) error
}

func NewSocialNotifier() *SocialNotifier {
	return &SocialNotifier{}
}

func (n *SocialNotifier) Notify(article *models.Article) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panicked: %v", r)
		}
	}()

	status := fmt.Sprintf("New article: %s by %s", article.Title, article.Journalist.Username)

	if n.Post == nil {
		log.Info().Str("title", article.Title).Msg("Article announcement (no social account configured)")
		return nil
	}

	if err := n.Post(status); err != nil {
		return fmt.Errorf("social post failed: %w", err)
	}
	return nil
}
