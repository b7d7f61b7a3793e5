package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) publish(key string, event any) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) PublishAssignment(event AssignmentEvent) error {
	return k.publish(event.LeadID, event)
}

func (k *KafkaPublisher) PublishBatch(event PayoutBatchEvent) error {
	return k.publish(event.PeriodKey, event)
}

func (k *KafkaPublisher) PublishClawback(event ClawbackEvent) error {
	return k.publish(event.CoachID, event)
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
