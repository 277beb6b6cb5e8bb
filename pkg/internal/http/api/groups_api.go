package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/plumepress/plume/pkg/internal/services"
)

func listGroupPost(c *fiber.Ctx) error {
	requested := c.QueryInt("page", 1)

	// An unknown slug is not-found; a known group with zero posts is a
	// valid, empty listing.
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	items, err := services.ListPost(services.FilterPostWithGroup(database.C, group.ID))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  services.Paginate(items, services.PageSize(), requested),
	})
}
