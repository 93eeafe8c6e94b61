package feed

import "time"

// FeedPostDTO is a post enriched with creator display info and like data.
type FeedPostDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MediaRefs       []string  `json:"media_refs"`
	CreatedAt       time.Time `json:"created_at"`
	CreatorID       string    `json:"creator_id"`
	CreatorUsername string    `json:"creator_username"`
	CreatorAvatar   string    `json:"creator_avatar"`
	LikesCount      int64     `json:"likes_count"`
	ViewerLiked     bool      `json:"user_liked"`
}

// FeedPage is the paginated feed envelope. An empty following set is a normal
// successful response carrying an explanatory message.
type FeedPage struct {
	Posts   []*FeedPostDTO `json:"posts"`
	Message string         `json:"message,omitempty"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int64          `json:"total"`
	Pages   int            `json:"pages"`
}

// CreatorCardDTO is a creator as shown in discovery listings.
type CreatorCardDTO struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	FollowersCount int64  `json:"followers_count"`
	PostsCount     int64  `json:"posts_count"`
	Following      bool   `json:"following"`
}

type CreatorPage struct {
	Creators []*CreatorCardDTO `json:"creators"`
	Message  string            `json:"message,omitempty"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
	Pages    int               `json:"pages"`
}
