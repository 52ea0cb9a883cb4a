package models

// Tag labels posts. Names are unique across the whole table.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Posts []Post `gorm:"many2many:posts_tags;" json:"posts"`
}
