package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTelegramSink_Send(t *testing.T) {
	bot := &MockTelegramSender{}
	bot.On("Send", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok && msg.ChatID == -100123 && msg.Text == "Buyurtma yetkazildi\n\n✅ done"
	})).Return(nil).Once()

	sink := NewTelegramSink(bot, -100123)
	err := sink.Send(context.Background(), ports.Notification{Title: "Buyurtma yetkazildi", Message: "✅ done"})

	require.NoError(t, err)
	bot.AssertExpectations(t)
}

func TestTelegramSink_SendError(t *testing.T) {
	bot := &MockTelegramSender{}
	bot.On("Send", mock.Anything).Return(errors.New("chat not found"))

	err := NewTelegramSink(bot, 1).Send(context.Background(), ports.Notification{Message: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramSink_CancelledContextWhileThrottled(t *testing.T) {
	bot := &MockTelegramSender{}
	bot.On("Send", mock.Anything).Return(nil)
	sink := NewTelegramSink(bot, 1)

	for range 3 {
		require.NoError(t, sink.Send(context.Background(), ports.Notification{Message: "burst"}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, sink.Send(ctx, ports.Notification{Message: "throttled"}))
	bot.AssertNumberOfCalls(t, "Send", 3)
}

func TestAMQPSink_PublishesPersistentJSON(t *testing.T) {
	orderID := kernel.NewUUID()
	raisedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	var published amqp.Publishing
	channel := &MockPublisher{}
	channel.On("PublishWithContext", mock.Anything, "water.events", "", false, false, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil).Once()

	sink := NewAMQPSink(channel, "water.events")
	sink.now = func() time.Time { return raisedAt }

	err := sink.Send(context.Background(), ports.Notification{
		Title:          "Yangi buyurtma",
		Message:        "2 ta",
		CreatedOrderID: &orderID,
	})
	require.NoError(t, err)
	channel.AssertExpectations(t)

	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, "application/json", published.ContentType)
	assert.True(t, published.Timestamp.Equal(raisedAt))

	var body map[string]any
	require.NoError(t, json.Unmarshal(published.Body, &body))
	assert.Equal(t, "Yangi buyurtma", body["title"])
	assert.Equal(t, "2 ta", body["message"])
	assert.Equal(t, orderID.String(), body["created_order_id"])
}

func TestAMQPSink_DefaultExchangeAndError(t *testing.T) {
	channel := &MockPublisher{}
	channel.On("PublishWithContext", mock.Anything, DefaultExchange, "", false, false, mock.Anything).
		Return(errors.New("channel closed"))

	err := NewAMQPSink(channel, "").Send(context.Background(), ports.Notification{Title: "t"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), DefaultExchange)
}

func TestStoreSink_Send(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	n := ports.Notification{Title: "t", Message: "m"}

	store := &MockNotificationStore{}
	store.On("Add", mock.Anything, n, at).Return(nil).Once()

	sink := NewStoreSink(store)
	sink.now = func() time.Time { return at }

	require.NoError(t, sink.Send(context.Background(), n))
	store.AssertExpectations(t)
}

func TestLogSink_Send(t *testing.T) {
	var logs bytes.Buffer
	orderID := kernel.NewUUID()

	err := NewLogSink(newTestLogger(&logs)).Send(context.Background(), ports.Notification{
		Title:          "Yangi buyurtma",
		Message:        "hello",
		CreatedOrderID: &orderID,
	})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "order_id="+orderID.String())
	assert.Contains(t, logs.String(), "component=notify_log_sink")
}
