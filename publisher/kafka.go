// Package publisher pushes freshly aggregated articles onto a Kafka topic so
// downstream consumers (tickers, alerting, archival jobs) see new items
// without polling the API.
package publisher

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"novai/types"

	"github.com/IBM/sarama"
)

// Config holds Kafka producer configuration.
type Config struct {
	Brokers []string
	Topic   string
}

// Publisher wraps a synchronous Kafka producer.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a Kafka publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Publisher{producer: producer, topic: cfg.Topic}, nil
}

// NewPublisherFromEnv creates a publisher when KAFKA_BROKERS is set
// (comma-separated). KAFKA_TOPIC defaults to "novai.articles". Returns
// (nil, nil) when Kafka is not configured; publishing is optional.
func NewPublisherFromEnv() (*Publisher, error) {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil, nil
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "novai.articles"
	}

	return NewPublisher(Config{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
	})
}

// PublishArticles sends each article as one JSON message keyed by article ID,
// so per-article compaction and partition affinity work downstream. Publishing
// continues past individual failures and reports the count that went through.
func (p *Publisher) PublishArticles(articles []*types.Article) (int, error) {
	published := 0
	var firstErr error

	for _, article := range articles {
		payload, err := json.Marshal(article)
		if err != nil {
			log.Printf("publisher: marshal %s failed: %v", article.ID, err)
			continue
		}

		_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(article.ID),
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			log.Printf("publisher: send %s failed: %v", article.ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		published++
	}
	return published, firstErr
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
