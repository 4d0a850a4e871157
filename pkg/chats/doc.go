// Package chats provides a provider-agnostic data model for LLM chat interactions.
//
// It is organized into sub-packages:
//   - [github.com/yejunhao159/promptstack/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/yejunhao159/promptstack/pkg/chats/message] — role-tagged text messages
//
// No provider or API code is included — chats is a foundation layer
// that the layer formatters and composer build on.
package chats
