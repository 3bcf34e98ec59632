package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const subjectPrefix = "hackflow.chat."

// NATSBroker shares rooms between API instances through NATS subjects
// hackflow.chat.<teamId>.
type NATSBroker struct {
	nc  *nats.Conn
	sub *nats.Subscription
}

// ConnectNATS dials the server with the reconnect policy used for chat
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("hackflow-chat"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(1*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return nc, nil
}

func NewNATSBroker(nc *nats.Conn) *NATSBroker {
	return &NATSBroker{nc: nc}
}

func (b *NATSBroker) Publish(_ context.Context, teamID string, frame []byte) error {
	if err := b.nc.Publish(subjectPrefix+teamID, frame); err != nil {
		return fmt.Errorf("failed to publish to team %s: %w", teamID, err)
	}
	return nil
}

func (b *NATSBroker) Subscribe(deliver DeliverFunc) error {
	sub, err := b.nc.Subscribe(subjectPrefix+"*", func(msg *nats.Msg) {
		deliver(strings.TrimPrefix(msg.Subject, subjectPrefix), msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to chat subjects: %w", err)
	}
	b.sub = sub

	// make sure the server knows about the subscription before returning
	return b.nc.Flush()
}

func (b *NATSBroker) Close() error {
	if b.sub == nil {
		return nil
	}
	return b.sub.Unsubscribe()
}
