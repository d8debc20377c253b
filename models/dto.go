package models

type RegisterRequest struct {
	Username        string   `json:"username" binding:"required,min=3,max=50"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	PasswordConfirm string   `json:"password_confirm" binding:"required"`
	Role            UserRole `json:"role,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	// Ignored unless Role is reader.
	SubscribedPublisherIDs  []uint `json:"subscribed_publisher_ids,omitempty"`
	SubscribedJournalistIDs []uint `json:"subscribed_journalist_ids,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Content     string `json:"content" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type UpdateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required"`
}

type ApproveArticleResponse struct {
	Article Article `json:"article"`
	// True when the article was approved but the notification hook failed.
	NotifyFailed bool `json:"notify_failed"`
}

type CreateNewsletterRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Content     string `json:"content" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type UpdateNewsletterRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required"`
}

type RegisterPublisherRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
}

type StaffRequest struct {
	Username string    `json:"username" binding:"required"`
	Kind     StaffKind `json:"kind" binding:"required,oneof=editor journalist"`
}

type SubscribeRequest struct {
	PublisherIDs  []uint `json:"publisher_ids"`
	JournalistIDs []uint `json:"journalist_ids"`
}

type SubscriptionsResponse struct {
	Publishers  []Publisher `json:"publishers"`
	Journalists []User      `json:"journalists"`
}

// Dashboard payloads, one shape per role.

type ReaderDashboard struct {
	Articles              []Article    `json:"articles"`
	Newsletters           []Newsletter `json:"newsletters"`
	SubscribedPublishers  []Publisher  `json:"subscribed_publishers"`
	SubscribedJournalists []User       `json:"subscribed_journalists"`
}

type JournalistDashboard struct {
	MyArticles    []Article    `json:"my_articles"`
	MyNewsletters []Newsletter `json:"my_newsletters"`
	Publishers    []Publisher  `json:"publishers"`
}

type EditorDashboard struct {
	PendingArticles []Article   `json:"pending_articles"`
	RecentArticles  []Article   `json:"recent_articles"`
	Publishers      []Publisher `json:"publishers"`
}
