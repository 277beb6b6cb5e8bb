package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/plumepress/plume/pkg/internal/services"
)

func listAccountPost(c *fiber.Ctx) error {
	requested := c.QueryInt("page", 1)

	author, err := services.GetAccount(c.Params("account"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	items, err := services.ListPost(services.FilterPostWithAuthor(database.C, author.ID))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"author": author,
		"page":   services.Paginate(items, services.PageSize(), requested),
	})
}
