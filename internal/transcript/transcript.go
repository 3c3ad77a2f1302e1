// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package transcript contains the data structures for the assistant chat.
package transcript

import (
	"errors"
	"strings"
	"time"
)

// Greeting is the fixed opening message. It is assistant-authored and
// involves no upstream request.
const Greeting = "Olá! Sou a desenrolAI, IA do digAI. Posso ajudá-lo a encontrar informações sobre o Recife. Pergunte sobre investimentos, escolas, saúde ou obras em qualquer região!"

// ErrPendingExists indicates a second pending assistant message was
// requested while one is still unresolved.
var ErrPendingExists = errors.New("a pending assistant message already exists")

// ErrNoSuchMessage indicates a Resolve call with an unknown id.
var ErrNoSuchMessage = errors.New("no message with that id")

// Author identifies the sender of a message.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Message is a single entry in the transcript. IDs are unique within the
// transcript and increase with creation order; list position, not
// CreatedAt, is authoritative for ordering.
type Message struct {
	ID        int
	Author    Author
	Text      string
	CreatedAt time.Time

	// Pending marks an assistant placeholder whose text has not arrived.
	Pending bool
}

// Transcript is the append-only message log for one chat session.
// Entries are never removed; the pending placeholder is resolved in
// place, keeping its position and id.
type Transcript struct {
	messages []*Message
	nextID   int
}

// New creates a transcript opened with the fixed greeting.
func New() *Transcript {
	tr := &Transcript{}
	tr.append(AuthorAssistant, Greeting, false)
	return tr
}

// NewEmpty creates a transcript with no messages, used by tests.
func NewEmpty() *Transcript {
	return &Transcript{}
}

func (t *Transcript) append(author Author, text string, pending bool) *Message {
	t.nextID++
	msg := &Message{
		ID:        t.nextID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
		Pending:   pending,
	}
	t.messages = append(t.messages, msg)
	return msg
}

// AppendUser appends a user message. The text is stored as given.
func (t *Transcript) AppendUser(text string) *Message {
	return t.append(AuthorUser, text, false)
}

// AppendPendingAssistant appends the optimistic placeholder for the turn.
// At most one pending message may exist at a time.
func (t *Transcript) AppendPendingAssistant() (*Message, error) {
	if t.HasPending() {
		return nil, ErrPendingExists
	}
	return t.append(AuthorAssistant, "", true), nil
}

// Resolve replaces the text of the message with the given id, in place,
// and clears its pending flag. The id and list position are unchanged;
// no second message is appended for the turn.
func (t *Transcript) Resolve(id int, text string) error {
	for _, msg := range t.messages {
		if msg.ID == id {
			msg.Text = text
			msg.Pending = false
			return nil
		}
	}
	return ErrNoSuchMessage
}

// HasPending reports whether an assistant placeholder is unresolved.
func (t *Transcript) HasPending() bool {
	for _, msg := range t.messages {
		if msg.Pending {
			return true
		}
	}
	return false
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns the log in order. The slice is a copy; the entries
// are shared.
func (t *Transcript) Messages() []*Message {
	out := make([]*Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message, or nil if empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// Preview returns a truncated preview of a message, rune-safe.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
