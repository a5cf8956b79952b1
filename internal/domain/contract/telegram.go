package contract

import tele "gopkg.in/telebot.v4"

// TelegramBot defines the bot operations the handlers use.
// This allows mocking in tests while keeping the real implementation simple
type TelegramBot interface {
	// Handle registers a handler for a command endpoint
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)

	// Send delivers a message to a chat
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}
