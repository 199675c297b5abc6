package transport

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// InMemory is a self-contained Transport used in tests and local runs. It
// records outbound calls and lets the caller inject inbound traffic.
type InMemory struct {
	mu       sync.Mutex
	inbound  chan models.InboundMessage
	typing   chan TypingEvent
	sent     map[int64][]string
	history  map[int64][]models.InboundMessage
	entities map[int64]*Entity
	blocked  map[int64]bool

	// SendErr, when set, is returned by every Send. Test hook.
	SendErr error
}

// NewInMemory creates an empty in-memory transport.
func NewInMemory() *InMemory {
	return &InMemory{
		inbound:  make(chan models.InboundMessage, 64),
		typing:   make(chan TypingEvent, 64),
		sent:     make(map[int64][]string),
		history:  make(map[int64][]models.InboundMessage),
		entities: make(map[int64]*Entity),
		blocked:  make(map[int64]bool),
	}
}

func (m *InMemory) Updates(_ context.Context) (<-chan models.InboundMessage, error) {
	return m.inbound, nil
}

func (m *InMemory) TypingEvents(_ context.Context) (<-chan TypingEvent, error) {
	return m.typing, nil
}

func (m *InMemory) Send(_ context.Context, chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	if m.blocked[chatID] {
		return fmt.Errorf("%w: chat %d forbids messages", ErrPermanent, chatID)
	}
	m.sent[chatID] = append(m.sent[chatID], text)
	return nil
}

func (m *InMemory) SetTyping(_ context.Context, _ int64, _ bool) error {
	return nil
}

func (m *InMemory) ScanHistory(_ context.Context, chatID, sinceMessageID int64, limit int) ([]models.InboundMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.InboundMessage
	for _, msg := range m.history[chatID] {
		if msg.MessageID > sinceMessageID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MessageID < out[j].MessageID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *InMemory) ResolveEntity(_ context.Context, userID int64) (*Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entities[userID]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: unknown user %d", ErrPermanent, userID)
}

// Inject delivers an inbound message as if the platform pushed it.
func (m *InMemory) Inject(msg models.InboundMessage) {
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}
	m.mu.Lock()
	m.history[msg.ChatID] = append(m.history[msg.ChatID], msg)
	m.mu.Unlock()
	m.inbound <- msg
}

// InjectTyping pushes a typing event.
func (m *InMemory) InjectTyping(ev TypingEvent) {
	m.typing <- ev
}

// AddHistory seeds chat history without pushing an update, mimicking
// messages that arrived while the process was down.
func (m *InMemory) AddHistory(msg models.InboundMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[msg.ChatID] = append(m.history[msg.ChatID], msg)
}

// AddEntity registers a resolvable user.
func (m *InMemory) AddEntity(userID int64, e *Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities[userID] = e
}

// Block makes sends to chatID fail permanently.
func (m *InMemory) Block(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocked[chatID] = true
}

// Sent returns the texts sent to chatID in order.
func (m *InMemory) Sent(chatID int64) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent[chatID]...)
}
