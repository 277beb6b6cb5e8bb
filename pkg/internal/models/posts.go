package models

type Post struct {
	BaseModel

	Text string `json:"text"`

	// Opaque reference into the external media store; validated nowhere
	// in this service.
	Attachment *string `json:"attachment"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`
}
