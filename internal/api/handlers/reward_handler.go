package handlers

import (
	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/reward"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RewardHandler interface {
		AssignReward(c *fiber.Ctx) error
		GetUserRewards(c *fiber.Ctx) error
		GetImpactMetrics(c *fiber.Ctx) error
		GetLeaderboard(c *fiber.Ctx) error
	}

	rewardHandler struct {
		rewardService reward.RewardService
		validator     *validator.Validate
	}
)

func NewRewardHandler(rewardService reward.RewardService, validator *validator.Validate) RewardHandler {
	return &rewardHandler{
		rewardService: rewardService,
		validator:     validator,
	}
}

func (h *rewardHandler) AssignReward(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	req := new(domain.AssignRewardRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignReward, err)
	}

	result, err := h.rewardService.AssignReward(c.Context(), *req, role)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedAssignReward, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessAssignReward)
}

func (h *rewardHandler) GetUserRewards(c *fiber.Ctx) error {
	rewards, err := h.rewardService.GetUserRewards(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetRewards, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"rewards": rewards,
	}, fiber.StatusOK, domain.MessageSuccessGetRewards)
}

func (h *rewardHandler) GetImpactMetrics(c *fiber.Ctx) error {
	result, err := h.rewardService.GetImpactMetrics(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetImpact, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetImpact)
}

func (h *rewardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.rewardService.GetLeaderboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"leaderboard": entries,
	}, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}
