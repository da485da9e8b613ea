package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/greenmaru/spot-catalog-etl/internal/config"
	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces canonical spots to a Kafka topic so downstream
// consumers can react to catalog updates without polling the output files.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured spot topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishSpots serializes and publishes the canonical set in a single
// WriteMessages call for efficiency.
func (p *Publisher) PublishSpots(ctx context.Context, spots []*domain.Spot) error {
	if len(spots) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(spots))
	for i, sp := range spots {
		msg, err := serializeToMessage(sp)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish spots: %w", err)
	}
	p.logger.Info("published canonical spots", "count", len(spots))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a spot into a Kafka message keyed by source ID.
func serializeToMessage(sp *domain.Spot) (kafkago.Message, error) {
	data, err := json.Marshal(sp)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize spot %s: %w", sp.SourceID, err)
	}
	return kafkago.Message{
		Key:   []byte(sp.SourceID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "category", Value: []byte(sp.Category)},
			{Key: "source", Value: []byte(sp.Source)},
			{Key: "score", Value: []byte(strconv.Itoa(sp.Scores.Total))},
		},
	}, nil
}
