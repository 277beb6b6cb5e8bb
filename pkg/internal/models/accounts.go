package models

// Account is the local projection of an identity issued by the external
// auth provider. Rows are synced from verified token claims, never edited
// through this service.
type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	Posts []Post `json:"posts" gorm:"foreignKey:AuthorID"`
}
