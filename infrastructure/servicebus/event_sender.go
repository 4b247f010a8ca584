package servicebus

import (
	"context"
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/logger"
)

// EventSender forwards audit rows to a Service Bus queue.
type EventSender struct {
	AzservicebusClient *azservicebus.Client
	QueueName          string
}

// NewEventSender returns nil when client is nil.
func NewEventSender(azServiceBusClient *azservicebus.Client, queueName string) repository.IEventSink {
	if azServiceBusClient == nil {
		return nil
	}
	return &EventSender{AzservicebusClient: azServiceBusClient, QueueName: queueName}
}

func (s *EventSender) Publish(ctx context.Context, event *model.EventLog) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	sender, err := s.AzservicebusClient.NewSender(s.QueueName, nil)
	if err != nil {
		logger.WithContext(ctx).WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender) {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}(sender)

	contentType := "application/json"
	subject := string(event.EventType) + "/" + event.EventAction
	msg := &azservicebus.Message{
		Body:        body,
		ContentType: &contentType,
		Subject:     &subject,
	}
	return sender.SendMessage(ctx, msg, nil)
}
