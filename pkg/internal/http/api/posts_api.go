package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/plumepress/plume/pkg/internal/auth"
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/plumepress/plume/pkg/internal/http/exts"
	"github.com/plumepress/plume/pkg/internal/models"
	"github.com/plumepress/plume/pkg/internal/services"
)

func listPost(c *fiber.Ctx) error {
	requested := c.QueryInt("page", 1)

	items, err := services.ListPost(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page": services.Paginate(items, services.PageSize(), requested),
	})
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(item)
}

// newPost serves the blank create form. Both verbs of the create route
// sit behind the same guard, an anonymous GET bounces to login too.
func newPost(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if services.GuardCreate(auth.Identity(user, authenticated)) == services.GuardLoginRequired {
		return auth.RedirectToLogin(c)
	}

	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"fields": services.PostForm{},
		"groups": groups,
	})
}

func createPost(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if services.GuardCreate(auth.Identity(user, authenticated)) == services.GuardLoginRequired {
		return auth.RedirectToLogin(c)
	}

	var form services.PostForm
	if err := exts.BindAndValidate(c, &form); err != nil {
		return err
	}

	text, group, errs := services.ResolvePostForm(form)
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"fields": form,
			"errors": errs,
		})
	}

	if _, err := services.NewPost(user, text, group, form.Attachment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/" + user.Name)
}

// editPost handles both verbs of the edit route: GET re-presents the
// form primed from the post, POST runs the shared form cycle. The target
// is fetched before identity is considered, a missing id is not-found
// for everyone.
func editPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	detailURL := fmt.Sprintf("/posts/%d", item.ID)

	user, authenticated := c.Locals("user").(models.Account)
	if services.GuardEdit(item, auth.Identity(user, authenticated)) == services.GuardRedirectDetail {
		return c.Redirect(detailURL)
	}

	if c.Method() == fiber.MethodGet {
		form := services.PostForm{
			Text:       item.Text,
			Attachment: item.Attachment,
		}
		if item.Group != nil {
			form.Group = item.Group.Slug
		}

		groups, err := services.ListGroup()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(fiber.Map{
			"post":    item,
			"fields":  form,
			"groups":  groups,
			"is_edit": true,
		})
	}

	var form services.PostForm
	if err := exts.BindAndValidate(c, &form); err != nil {
		return err
	}

	text, group, errs := services.ResolvePostForm(form)
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"post":    item,
			"fields":  form,
			"errors":  errs,
			"is_edit": true,
		})
	}

	if _, err := services.EditPost(item, text, group, form.Attachment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(detailURL)
}
