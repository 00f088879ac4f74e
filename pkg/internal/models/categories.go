package models

type Group struct {
	BaseModel

	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
	Posts       []Post `json:"posts,omitempty"`
}

func (v Group) String() string {
	return v.Title
}
