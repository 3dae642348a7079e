package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"verbum-app/internal/logger"
	"verbum-app/internal/service/chat"
	"verbum-app/internal/service/llm"
	"verbum-app/pkg/validation"
)

// ChatRequest is the wire shape of a completion request
type ChatRequest struct {
	Messages []llm.Message `json:"messages"`
	Stream   bool          `json:"stream,omitempty"`
}

// ChatResponse is the non-streaming completion response
type ChatResponse struct {
	Text string `json:"text"`
}

// ChatHandlers serves the chat completion endpoint
type ChatHandlers struct {
	chat      *chat.ChatService
	validator *validation.ChatRequestValidator
}

// NewChatHandlers creates new ChatHandlers
func NewChatHandlers(chatService *chat.ChatService) *ChatHandlers {
	return &ChatHandlers{
		chat:      chatService,
		validator: validation.NewChatRequestValidator(),
	}
}

// ChatHandler dispatches a completion request, streaming if asked to
func (h *ChatHandlers) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msgs := make([]validation.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, validation.ChatMessage{Role: m.Role, Content: m.Content})
	}
	if err := h.validator.ValidateMessages(msgs); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Stream {
		h.streamCompletion(w, r, req.Messages)
		return
	}

	result, err := h.chat.Complete(r.Context(), req.Messages)
	if err != nil {
		logger.Log.WithError(err).Error("Error from LLM provider")
		writeError(w, http.StatusInternalServerError, "error from model provider")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Text: result.Text})
}

// streamCompletion writes the completion as an SSE fragment stream
func (h *ChatHandlers) streamCompletion(w http.ResponseWriter, r *http.Request, messages []llm.Message) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	chunks, model, err := h.chat.Stream(r.Context(), messages)
	if err != nil {
		logger.Log.WithError(err).Error("Error from LLM stream")
		writeError(w, http.StatusInternalServerError, "error from model provider")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Announce the selected model as the first event
	fmt.Fprintf(w, "data: MODEL:%s\n\n", model)
	flusher.Flush()

	// Fragments already flushed stand even if the stream is interrupted;
	// a client disconnect cancels the upstream call via the request context.
	for streamChunk := range chunks {
		if streamChunk.Content == "" {
			continue
		}
		escaped := strings.ReplaceAll(streamChunk.Content, "\n", "\\n")
		fmt.Fprintf(w, "data: %s\n\n", escaped)
		flusher.Flush()
	}

	fmt.Fprintf(w, "data: [DONE]\n\n")
	flusher.Flush()
}
