package models

type User struct {
	BaseModel

	Username    string `json:"username" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Password    string `json:"-"`
	IsStaff     bool   `json:"is_staff"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
}

// DisplayName is the nick when set and the username otherwise.
func (v User) DisplayName() string {
	if len(v.Nick) > 0 {
		return v.Nick
	}
	return v.Username
}
