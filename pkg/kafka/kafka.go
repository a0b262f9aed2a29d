package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	LoanTopic = "loan-events"
)

type Config struct {
	Addrs   []string `envconfig:"KAFKA_ADDRS"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

// EventLoan is the audit record published after a ledger mutation has been
// applied in memory. External consumers reconcile stock against it.
type EventLoan struct {
	RecordID string    `json:"recordId"`
	BookISBN string    `json:"bookIsbn"`
	UserID   string    `json:"userId"`
	Action   string    `json:"action"` // BORROWED | RETURNED
	At       time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
