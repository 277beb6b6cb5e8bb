package api

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	router := app.Group(baseURL)
	{
		router.Get("/", listPost)
		router.Get("/group/:slug", listGroupPost)
		router.Get("/profile/:account", listAccountPost)

		router.Get("/create", newPost)
		router.Post("/create", createPost)

		router.Get("/posts/:postId", getPost)
		router.Get("/posts/:postId/edit", editPost)
		router.Post("/posts/:postId/edit", editPost)
	}
}
