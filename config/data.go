package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data represents the data layer configuration.
type Data struct {
	Database *DBNode
	Kafka    *Kafka
}

// DBNode represents a single database node configuration.
type DBNode struct {
	Driver          string        `json:"driver" yaml:"driver"`
	Source          string        `json:"source" yaml:"source"`
	MaxIdleConn     int           `json:"max_idle_conn" yaml:"max_idle_conn"`
	MaxOpenConn     int           `json:"max_open_conn" yaml:"max_open_conn"`
	ConnMaxLifeTime time.Duration `json:"conn_max_life_time" yaml:"conn_max_life_time"`
}

// Kafka represents the message broker configuration.
type Kafka struct {
	Brokers         []string      `json:"brokers" yaml:"brokers"`
	Topic           string        `json:"topic" yaml:"topic"`
	GroupID         string        `json:"group_id" yaml:"group_id"`
	PublishTimeout  time.Duration `json:"publish_timeout" yaml:"publish_timeout"`
	RetryAttempts   int           `json:"retry_attempts" yaml:"retry_attempts"`
	RetryBackoffMax time.Duration `json:"retry_backoff_max" yaml:"retry_backoff_max"`
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Database: getDatabaseConfig(v),
		Kafka:    getKafkaConfig(v),
	}
}

func getDatabaseConfig(v *viper.Viper) *DBNode {
	return &DBNode{
		Driver:          v.GetString("data.database.master.driver"),
		Source:          v.GetString("data.database.master.source"),
		MaxIdleConn:     v.GetInt("data.database.master.max_idle_conn"),
		MaxOpenConn:     v.GetInt("data.database.master.max_open_conn"),
		ConnMaxLifeTime: v.GetDuration("data.database.master.max_life_time"),
	}
}

func getKafkaConfig(v *viper.Viper) *Kafka {
	cfg := &Kafka{
		Brokers:         v.GetStringSlice("data.kafka.brokers"),
		Topic:           v.GetString("data.kafka.topic"),
		GroupID:         v.GetString("data.kafka.group_id"),
		PublishTimeout:  v.GetDuration("data.kafka.publish_timeout"),
		RetryAttempts:   v.GetInt("data.kafka.retry_attempts"),
		RetryBackoffMax: v.GetDuration("data.kafka.retry_backoff_max"),
	}
	if cfg.Topic == "" {
		cfg.Topic = "user-register"
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 30 * time.Second
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBackoffMax <= 0 {
		cfg.RetryBackoffMax = 30 * time.Second
	}
	return cfg
}
