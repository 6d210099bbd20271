package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bankapi/internal/http/headerutil"
	"bankapi/internal/service"
)

// entityName keys the alert and error headers for this resource.
const entityName = "bankAccount"

var validate = validator.New()

// CreateBankAccount handles POST /api/bank-accounts.
// A payload that already carries an identifier is rejected with 400 and the
// idexists failure-alert headers.
func CreateBankAccount(svc service.BankAccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto service.BankAccountDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := validate.Struct(dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "invalid bankAccount payload")
		}
		return createBankAccount(c, svc, dto)
	}
}

// UpdateBankAccount handles PUT /api/bank-accounts. Payloads without an
// identifier fall back to the create flow, including its 201 response.
func UpdateBankAccount(svc service.BankAccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto service.BankAccountDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := validate.Struct(dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "invalid bankAccount payload")
		}
		if dto.ID == nil {
			return createBankAccount(c, svc, dto)
		}

		out, err := svc.Update(c.UserContext(), dto)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		applyHeaders(c, headerutil.CreateEntityUpdateAlert(entityName, strconv.FormatInt(*out.ID, 10)))
		return c.JSON(out)
	}
}

// ListBankAccounts handles GET /api/bank-accounts. The full collection is
// returned; the scaffold does not paginate or filter.
func ListBankAccounts(svc service.BankAccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetBankAccount handles GET /api/bank-accounts/:id.
func GetBankAccount(svc service.BankAccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		dto, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "bankAccount not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(dto)
	}
}

// DeleteBankAccount handles DELETE /api/bank-accounts/:id. Deletion is
// idempotent: removing an absent account still answers 200 with the
// deletion-alert headers.
func DeleteBankAccount(svc service.BankAccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		applyHeaders(c, headerutil.CreateEntityDeletionAlert(entityName, strconv.FormatInt(id, 10)))
		// SendStatus would backfill the empty body with the status message.
		return c.Status(fiber.StatusOK).Send(nil)
	}
}

// createBankAccount runs the shared create flow for POST and identifier-less PUT.
func createBankAccount(c *fiber.Ctx, svc service.BankAccountService, dto service.BankAccountDTO) error {
	out, err := svc.Create(c.UserContext(), dto)
	if err != nil {
		if errors.Is(err, service.ErrIDExists) {
			applyHeaders(c, headerutil.CreateFailureAlert(entityName, "idexists", err.Error()))
			return writeError(c, fiber.StatusBadRequest, "ID_EXISTS", err.Error())
		}
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}

	id := strconv.FormatInt(*out.ID, 10)
	c.Location("/api/bank-accounts/" + id)
	applyHeaders(c, headerutil.CreateEntityCreationAlert(entityName, id))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// applyHeaders copies a built header collection onto the response.
func applyHeaders(c *fiber.Ctx, h http.Header) {
	for key, values := range h {
		for _, v := range values {
			c.Set(key, v)
		}
	}
}
