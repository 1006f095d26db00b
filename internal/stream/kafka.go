// Package stream publishes generated rows to Kafka, one topic per table.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Rana718/seedcart/internal/export"
	"github.com/Rana718/seedcart/internal/model"
)

const defaultBatchSize = 200

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers     []string
	TopicPrefix string
	BatchSize   int
}

// Publisher writes every row of a dataset as a JSON message keyed by "<table>:<id>".
type Publisher struct {
	w           messageWriter
	topicPrefix string
	batchSize   int
	now         func() time.Time
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no Kafka brokers configured")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newPublisher(w, cfg), nil
}

func newPublisher(w messageWriter, cfg Config) *Publisher {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	return &Publisher{
		w:           w,
		topicPrefix: cfg.TopicPrefix,
		batchSize:   batch,
		now:         time.Now,
	}
}

// Topic returns the topic a table's rows are published to.
func (p *Publisher) Topic(table string) string {
	if p.topicPrefix == "" {
		return table
	}
	return p.topicPrefix + "." + table
}

// Publish sends tables in dependency order, so consumers see referenced rows first.
// It returns the number of messages written per table.
func (p *Publisher) Publish(ctx context.Context, ds *model.Dataset) (map[string]int, error) {
	sent := make(map[string]int)
	for _, table := range ds.Tables() {
		n, err := p.publishTable(ctx, table)
		sent[table.Name] = n
		if err != nil {
			return sent, fmt.Errorf("failed to publish %s: %w", table.Name, err)
		}
	}
	return sent, nil
}

func (p *Publisher) publishTable(ctx context.Context, table model.Table) (int, error) {
	topic := p.Topic(table.Name)
	batch := make([]kafka.Message, 0, p.batchSize)
	sent := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := p.w.WriteMessages(ctx, batch...); err != nil {
			return err
		}
		sent += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, row := range table.Rows {
		msg, err := p.message(topic, table, row)
		if err != nil {
			return sent, err
		}
		batch = append(batch, msg)
		if len(batch) == p.batchSize {
			if err := flush(); err != nil {
				return sent, err
			}
		}
	}
	if err := flush(); err != nil {
		return sent, err
	}
	return sent, nil
}

func (p *Publisher) message(topic string, table model.Table, row []any) (kafka.Message, error) {
	record := make(map[string]string, len(row))
	for i, v := range row {
		record[table.Columns[i].Name] = export.FormatValue(v)
	}
	value, err := json.Marshal(record)
	if err != nil {
		return kafka.Message{}, err
	}

	id, _ := row[0].(int)
	return kafka.Message{
		Topic: topic,
		Key:   []byte(table.Name + ":" + strconv.Itoa(id)),
		Value: value,
		Time:  p.now(),
		Headers: []kafka.Header{
			{Key: "table", Value: []byte(table.Name)},
		},
	}, nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
