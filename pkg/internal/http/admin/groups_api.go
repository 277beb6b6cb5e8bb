package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumepress/plume/pkg/internal/http/exts"
	"github.com/plumepress/plume/pkg/internal/services"
)

func adminListGroup(c *fiber.Ctx) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func adminNewGroup(c *fiber.Ctx) error {
	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		// Slug uniqueness is the store's contract, surfaced here.
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminEditGroup(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("groupId", 0)

	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	group, err = services.EditGroup(group, data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
