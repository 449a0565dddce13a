package handlers

import (
	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/admin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		ListAllUsers(c *fiber.Ctx) error
		GetUserDetails(c *fiber.Ctx) error
		UpdateUserStatus(c *fiber.Ctx) error
		ListAllDonations(c *fiber.Ctx) error
		OverrideDonationStatus(c *fiber.Ctx) error
		AuditDonation(c *fiber.Ctx) error
		GenerateAnalyticsReport(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) ListAllUsers(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	users, err := h.adminService.ListAllUsers(c.Context(), actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users": users,
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) GetUserDetails(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	result, err := h.adminService.GetUserDetails(c.Context(), c.Params("id"), actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetUserDetails, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetUserDetails)
}

func (h *adminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	req := new(domain.UpdateUserStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUserStatus, err)
	}

	result, err := h.adminService.UpdateUserStatus(c.Context(), c.Params("id"), *req.IsActive, actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedUpdateUserStatus, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateUserStatus)
}

func (h *adminHandler) ListAllDonations(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	donations, err := h.adminService.ListAllDonations(c.Context(), actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetAllDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
	}, fiber.StatusOK, domain.MessageSuccessGetAllDonations)
}

func (h *adminHandler) OverrideDonationStatus(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	req := new(domain.UpdateDonationStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOverrideStatus, err)
	}

	result, err := h.adminService.OverrideDonationStatus(c.Context(), c.Params("id"), req.Status, actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedOverrideStatus, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessOverrideStatus)
}

func (h *adminHandler) AuditDonation(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	req := new(domain.AuditDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAuditDonation, err)
	}

	result, err := h.adminService.AuditDonation(c.Context(), c.Params("id"), req.Action, actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedAuditDonation, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessAuditDonation)
}

func (h *adminHandler) GenerateAnalyticsReport(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	result, err := h.adminService.GenerateAnalyticsReport(c.Context(), actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedAnalyticsReport, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessAnalyticsReport)
}
