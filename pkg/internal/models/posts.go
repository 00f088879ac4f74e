package models

// PostDisplayLength is how many characters of the text a post shows as its name.
const PostDisplayLength = 15

type Post struct {
	BaseModel

	Text     string  `json:"text"`
	Language string  `json:"language"`
	Image    *string `json:"image"`

	AuthorID uint   `json:"author_id" gorm:"index"`
	Author   User   `json:"author"`
	GroupID  *uint  `json:"group_id" gorm:"index"`
	Group    *Group `json:"group"`

	Comments []Comment `json:"comments,omitempty"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

type PostMetric struct {
	CommentCount int64 `json:"comment_count"`
}

func (v Post) String() string {
	runes := []rune(v.Text)
	if len(runes) > PostDisplayLength {
		return string(runes[:PostDisplayLength])
	}
	return v.Text
}

type Comment struct {
	BaseModel

	Text     string `json:"text"`
	PostID   uint   `json:"post_id" gorm:"index"`
	Post     Post   `json:"-"`
	AuthorID uint   `json:"author_id"`
	Author   User   `json:"author"`
}

func (v Comment) String() string {
	return v.Text
}
