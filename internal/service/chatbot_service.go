package service

import (
	"context"
	"fmt"
	"time"

	"kb-chatbot-be/internal/constant"
	"kb-chatbot-be/internal/dto"
	"kb-chatbot-be/internal/pkg/logger"
	"kb-chatbot-be/pkg/llm"
	"kb-chatbot-be/pkg/rag"
	"kb-chatbot-be/pkg/rag/prompt"
	"kb-chatbot-be/pkg/store"

	"github.com/google/uuid"
)

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	SendChat(ctx context.Context, sessionID string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetTopics() []*dto.TopicInfoResponse
}

// chatbotService coordinates retrieval, topic memory, prompt construction
// and the model call for one conversational turn.
type chatbotService struct {
	retriever   *rag.Retriever
	kb          *rag.KnowledgeBase
	topicStore  store.TopicStore
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewChatbotService(
	retriever *rag.Retriever,
	kb *rag.KnowledgeBase,
	topicStore store.TopicStore,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		retriever:   retriever,
		kb:          kb,
		topicStore:  topicStore,
		llmProvider: llmProvider,
		logger:      sysLogger,
	}
}

// SendChat handles one question. Retrieval is fully synchronous and
// in-memory; the only slow, cancellable operation is the provider call,
// and it is skipped entirely when retrieval refuses.
func (cs *chatbotService) SendChat(ctx context.Context, sessionID string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	now := time.Now()
	sent := &dto.SendChatResponseChat{
		Id:        uuid.New(),
		Chat:      request.Message,
		Role:      constant.ChatMessageRoleUser,
		CreatedAt: now,
	}

	// 1. Look up topic memory, unless the caller forced a topic
	var memoryTopic string
	if request.Topic == "" {
		memoryTopic, _ = cs.topicStore.GetTopic(sessionID)
	}

	// 2. Retrieve grounding context
	result, ok := cs.retriever.Retrieve(rag.Query{
		Text:        request.Message,
		ForcedTopic: request.Topic,
		MemoryTopic: memoryTopic,
	})

	// 3. Nothing relevant: answer with the fixed refusal. The provider
	// must never be asked to improvise without grounding context.
	if !ok {
		cs.logger.Info("chatbot", "no context found, refusing", map[string]interface{}{
			"session": sessionID,
		})
		return &dto.SendChatResponse{
			Sent: sent,
			Reply: &dto.SendChatResponseChat{
				Id:        uuid.New(),
				Chat:      constant.NoContextReply,
				Role:      constant.ChatMessageRoleModel,
				CreatedAt: time.Now(),
			},
			Grounded: false,
		}, nil
	}

	// 4. Remember the detected topic for the session's next turn
	cs.topicStore.SetTopic(sessionID, result.DetectedTopic)

	// 5. Build the grounded prompt and ask the model
	groundedPrompt := prompt.NewGroundedBuilder(result.Context, request.Message).Build()

	reply, err := cs.llmProvider.Generate(ctx, groundedPrompt)
	if err != nil {
		cs.logger.Error("chatbot", "llm generate failed", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	cs.logger.Info("chatbot", "reply generated", map[string]interface{}{
		"session":   sessionID,
		"topic":     result.DetectedTopic,
		"survivors": len(result.Ranked),
	})

	return &dto.SendChatResponse{
		Sent: sent,
		Reply: &dto.SendChatResponseChat{
			Id:        uuid.New(),
			Chat:      reply,
			Role:      constant.ChatMessageRoleModel,
			CreatedAt: time.Now(),
		},
		Topic:    result.DetectedTopic,
		Grounded: true,
	}, nil
}

// GetTopics reports the loaded knowledge collections and their sizes.
func (cs *chatbotService) GetTopics() []*dto.TopicInfoResponse {
	counts := cs.kb.CountByTopic()

	topics := make([]*dto.TopicInfoResponse, 0, len(counts))
	for _, name := range cs.kb.Topics() {
		topics = append(topics, &dto.TopicInfoResponse{
			Name:  name,
			Items: counts[name],
		})
	}
	return topics
}
