package controller

import (
	"kb-chatbot-be/internal/dto"
	"kb-chatbot-be/internal/pkg/serverutils"
	"kb-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetTopics(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("chat", c.SendChat)
	h.Get("topics", c.GetTopics)
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// The session key is derived from the client's network origin; tabs
	// behind the same address share one topic memory slot.
	sessionID := serverutils.SessionID(ctx)

	res, err := c.chatbotService.SendChat(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatbotController) GetTopics(ctx *fiber.Ctx) error {
	res := c.chatbotService.GetTopics()
	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}
