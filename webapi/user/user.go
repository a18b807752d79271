package user

import (
	"fmt"
	"strconv"

	"github.com/amirasaad/user-management/pkg/dto"
	usersvc "github.com/amirasaad/user-management/pkg/service/user"
	"github.com/amirasaad/user-management/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Prefix is the mount point of the user resource.
const Prefix = "/api/v1/users"

// DeletedMessage is the body returned by a successful delete.
const DeletedMessage = "User successfully deleted."

// Routes registers the user endpoints under Prefix.
func Routes(app fiber.Router, userSvc *usersvc.Service) {
	users := app.Group(Prefix)
	users.Get("/", ListUsers(userSvc))
	users.Get("/username/:username", GetUserByUsername(userSvc))
	users.Get("/:id", GetUser(userSvc))
	users.Post("/", CreateUser(userSvc))
	users.Put("/:id", UpdateUser(userSvc))
	users.Delete("/:id", DeleteUser(userSvc))
}

// ListUsers returns a Fiber handler listing every user.
// @Summary List users
// @Description Retrieve all users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserDTO
// @Failure 401 {string} string
// @Failure 500 {string} string
// @Router /api/v1/users [get]
// @Security BasicAuth
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.ListAll(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(users)
	}
}

// GetUser returns a Fiber handler for retrieving a user by ID.
// @Summary Get user by ID
// @Description Retrieve a user by their ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserDTO
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Router /api/v1/users/{id} [get]
// @Security BasicAuth
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		u, err := userSvc.GetByID(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// GetUserByUsername returns a Fiber handler for retrieving a user by username.
// @Summary Get user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.UserDTO
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Router /api/v1/users/username/{username} [get]
// @Security BasicAuth
func GetUserByUsername(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := userSvc.GetByUsername(c.Context(), c.Params("username"))
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// CreateUser creates a new user.
// @Summary Create a new user
// @Description Create a user; userId and createdAt in the body are ignored
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserDTO true "User data"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {string} string
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /api/v1/users [post]
// @Security BasicAuth
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.UserDTO](c)
		if err != nil {
			return err
		}
		u, err := userSvc.Create(c.Context(), input)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// UpdateUser replaces the mutable fields of a user.
// @Summary Update user
// @Description Replace username, email, firstName and lastName of a user by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UserDTO true "User data"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /api/v1/users/{id} [put]
// @Security BasicAuth
func UpdateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[dto.UserDTO](c)
		if err != nil {
			return err
		}
		u, err := userSvc.Update(c.Context(), id, input)
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// DeleteUser deletes a user.
// @Summary Delete user
// @Tags users
// @Produce plain
// @Param id path int true "User ID"
// @Success 200 {string} string "User successfully deleted."
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Router /api/v1/users/{id} [delete]
// @Security BasicAuth
func DeleteUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return err
		}
		return c.SendString(DeletedMessage)
	}
}

// parseID reads the :id path parameter.
func parseID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", raw, err)
	}
	return id, nil
}
