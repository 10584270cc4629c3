package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
	"github.com/Agrid-Dev/thermsynth/internal/synth"
)

type MQTTConfig struct {
	// MQTT connection
	BrokerURL string
	ClientID  string

	// Topics
	BaseTopic string

	// Behavior
	QoS    byte
	Retain bool

	Username string
	Password string
}

// MQTT publishes each completed scenario table as a single JSON message
// on <base_topic>/<scenario_id>/records. It is a batch publisher: a
// table is only handed over once generation has finished.
type MQTT struct {
	cfg MQTTConfig

	client mqtt.Client
}

func NewMQTT(cfg MQTTConfig) (*MQTT, error) {
	// ---- defaults ----

	if cfg.BrokerURL == "" {
		cfg.BrokerURL = "tcp://localhost:1883"
	}
	if cfg.BaseTopic == "" {
		cfg.BaseTopic = "thermsynth"
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "thermsynth-generator"
	}
	if cfg.QoS > 1 {
		return nil, errors.New("mqtt: QoS must be 0 or 1")
	}
	return &MQTT{cfg: cfg}, nil
}

func (m *MQTT) Connect() error {
	opts := mqtt.NewClientOptions().
		AddBroker(m.cfg.BrokerURL).
		SetClientID(m.cfg.ClientID).
		SetConnectRetry(true).
		SetConnectRetryInterval(2 * time.Second)

	if m.cfg.Username != "" {
		opts.SetUsername(m.cfg.Username)
		opts.SetPassword(m.cfg.Password)
	}

	m.client = mqtt.NewClient(opts)
	tok := m.client.Connect()
	tok.Wait()
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

func (m *MQTT) Close() {
	if m.client != nil {
		m.client.Disconnect(250)
	}
}

type recordDTO struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Temp        int     `json:"temp"`
	UsageTherms float64 `json:"usage_therms"`
	AvgUsage    float64 `json:"avg_usage"`
}

type tableDTO struct {
	ScenarioID string      `json:"scenario_id"`
	Season     string      `json:"season"`
	HomeSqft   int         `json:"home_sqft"`
	Occupancy  int         `json:"occupancy"`
	Appliances string      `json:"appliances"`
	Records    []recordDTO `json:"records"`
}

func (m *MQTT) Write(sc scenario.Scenario, records []synth.Record) error {
	if m.client == nil {
		return errors.New("mqtt sink: not connected")
	}

	dto := tableDTO{
		ScenarioID: sc.ID,
		Season:     sc.Season.String(),
		HomeSqft:   sc.HomeSqft,
		Occupancy:  sc.Occupancy,
		Appliances: sc.Appliances.String(),
		Records:    make([]recordDTO, 0, len(records)),
	}
	for _, r := range records {
		dto.Records = append(dto.Records, recordDTO{
			Date:        r.Date,
			Time:        r.Time,
			Temp:        r.Temp,
			UsageTherms: r.Usage,
			AvgUsage:    r.AvgUsage,
		})
	}

	b, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("mqtt sink: %w", err)
	}

	tok := m.client.Publish(m.topic(sc.ID+"/records"), m.cfg.QoS, m.cfg.Retain, b)
	tok.Wait()
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt sink: publish %s: %w", sc.ID, err)
	}
	return nil
}

func (m *MQTT) topic(suffix string) string {
	return strings.TrimRight(m.cfg.BaseTopic, "/") + "/" + suffix
}
