package services

import (
	"fmt"
	"strings"

	"github.com/plumepress/plume/pkg/internal/models"
)

// PostForm carries the submitted fields of both the create and the edit
// cycle. The group is referenced by its slug; an empty slug means the
// post belongs to no group.
type PostForm struct {
	Text       string  `json:"text" form:"text"`
	Group      string  `json:"group" form:"group"`
	Attachment *string `json:"attachment" form:"attachment"`
}

// ResolvePostForm is the shared validation step of the create and edit
// cycles. A non-empty error map is a normal outcome for the caller to
// re-present, not a failure; nothing gets persisted while it is set.
func ResolvePostForm(form PostForm) (string, *models.Group, map[string]string) {
	errs := map[string]string{}

	text := strings.TrimSpace(form.Text)
	if len(text) == 0 {
		errs["text"] = "this field cannot be blank"
	}

	var group *models.Group
	if len(form.Group) > 0 {
		if item, err := GetGroup(form.Group); err != nil {
			errs["group"] = fmt.Sprintf("no group with slug %s", form.Group)
		} else {
			group = &item
		}
	}

	if len(errs) > 0 {
		return text, nil, errs
	}

	return text, group, nil
}
