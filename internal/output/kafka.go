package output

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/delivergen/delivergen/internal/models"
)

// KafkaOutput publishes every generated record as a JSON message on a topic
// named after its table.
type KafkaOutput struct {
	producer sarama.SyncProducer
}

func NewKafkaOutput(brokerList string) (*KafkaOutput, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokers := strings.Split(brokerList, ",")
	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka producer created successfully with brokers %v", brokers)
	return &KafkaOutput{producer: producer}, nil
}

func (k *KafkaOutput) WriteDataset(ds *models.Dataset) error {
	for _, name := range TableNames {
		for _, record := range records(ds, name) {
			msg, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("failed to serialize %s record: %w", name, err)
			}
			if err := k.writeMessage(name, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func (k *KafkaOutput) writeMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is not initialized")
	}

	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}
	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
