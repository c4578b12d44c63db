package notification

import (
	"context"
	"fmt"
	"time"

	"turf-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type Kind string

const (
	KindPaymentInitiated   Kind = "payment.initiated"
	KindPaymentSuccess     Kind = "payment.success"
	KindPaymentFailed      Kind = "payment.failed"
	KindPaymentCancelled   Kind = "payment.cancelled"
	KindPaymentRejected    Kind = "payment.rejected"
	KindIpnError           Kind = "ipn.error"
	KindReconciliationHelp Kind = "reconciliation.escalation"
	KindMemberSignup       Kind = "member.signup"
)

var titles = map[Kind]string{
	KindPaymentInitiated:   "💰 Payment Initiated",
	KindPaymentSuccess:     "💳 Payment Successful",
	KindPaymentFailed:      "❌ Payment Failed",
	KindPaymentCancelled:   "⚠️ Payment Cancelled",
	KindPaymentRejected:    "🚫 Payment Rejected",
	KindIpnError:           "❌ IPN Error",
	KindReconciliationHelp: "🆘 Manual Reconciliation Required",
	KindMemberSignup:       "🔔 New Member",
}

type Message struct {
	ID         string            `json:"id"`
	Kind       Kind              `json:"kind"`
	Fields     map[string]string `json:"fields"`
	Order      []string          `json:"order"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// New keeps field order so the rendered text is stable.
func New(kind Kind, kv ...string) Message {
	m := Message{
		ID:         uuid.NewString(),
		Kind:       kind,
		Fields:     make(map[string]string, len(kv)/2),
		OccurredAt: time.Now().UTC(),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		m.Fields[kv[i]] = kv[i+1]
		m.Order = append(m.Order, kv[i])
	}
	return m
}

func (m Message) Text() string {
	title, ok := titles[m.Kind]
	if !ok {
		title = string(m.Kind)
	}
	text := fmt.Sprintf("🏟️ PLAY MAKERS ARENA\n--------------------------\n%s", title)
	for _, k := range m.Order {
		text += fmt.Sprintf("\n%s: %s", k, m.Fields[k])
	}
	return text
}

// Publisher hands messages to the broker. Delivery problems are logged and dropped.
type Publisher struct {
	pub   message.Publisher
	topic string
	log   log.Logger
}

func NewPublisher(pub message.Publisher, topic string, log log.Logger) *Publisher {
	return &Publisher{pub: pub, topic: topic, log: log}
}

func (p *Publisher) Notify(ctx context.Context, m Message) {
	if p == nil || p.pub == nil {
		return
	}
	payload, err := json.Marshal(m)
	if err != nil {
		p.log.Error(ctx, "error marshal notification", err)
		return
	}
	msg := message.NewMessage(m.ID, payload)
	msg.SetContext(ctx)
	if err := p.pub.Publish(p.topic, msg); err != nil {
		p.log.Warn(ctx, "error publish notification", err, string(m.Kind))
	}
}
