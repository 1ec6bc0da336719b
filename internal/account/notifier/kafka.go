package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ddmitrenko/tools/internal/common"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes mail-request batches to a single Kafka topic.
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

func (p *KafkaPublisher) Publish(ctx context.Context, reqs []MailReq) error {
	payload, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("%w: encoding mail requests: %v", common.ErrDependency, err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: payload}); err != nil {
		return fmt.Errorf("%w: kafka publish: %v", common.ErrDependency, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
