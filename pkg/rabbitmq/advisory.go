package rabbitmq

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/LeonardoBeccarini/farm_advisor/internal/model/messages"
	"github.com/LeonardoBeccarini/farm_advisor/pkg/dedup"
)

const DefaultAdvisoryTopic = "farm/advisory/{kind}"

// Bus publish outcomes, also used as metric label values.
const (
	OutcomePublished = "published"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// OutcomeRecorder is told how every advisory publish ended. *metrics.Metrics satisfies it.
type OutcomeRecorder interface {
	BusOutcome(outcome string)
}

// AdvisoryPublisher turns advisory events into MQTT messages on a per-kind topic.
// Identical events inside the dedup window are dropped.
type AdvisoryPublisher struct {
	pub    IPublisher
	topic  string
	dedup  *dedup.Deduper
	rec    OutcomeRecorder
	logger *zap.Logger
}

func NewAdvisoryPublisher(pub IPublisher, topic string, d *dedup.Deduper, rec OutcomeRecorder, logger *zap.Logger) *AdvisoryPublisher {
	if topic == "" {
		topic = DefaultAdvisoryTopic
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryPublisher{pub: pub, topic: topic, dedup: d, rec: rec, logger: logger}
}

// TopicFor expands the {kind} placeholder of the topic template.
func (a *AdvisoryPublisher) TopicFor(kind string) string {
	return strings.NewReplacer("{kind}", kind).Replace(a.topic)
}

// QoSFor maps severity to delivery guarantee: warnings and critical advisories are sent at least once.
func QoSFor(severity string) byte {
	switch severity {
	case "warning", "critical":
		return 1
	default:
		return 0
	}
}

// EventKey identifies an event by content; run id and timestamp are ignored.
func EventKey(ev messages.AdvisoryEvent) string {
	parts := []string{ev.Kind, ev.Tier, ev.CropType}
	parts = append(parts, ev.Message...)
	names := make([]string, 0, len(ev.Inputs))
	for k := range ev.Inputs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		parts = append(parts, k+"="+strconv.FormatFloat(ev.Inputs[k], 'g', -1, 64))
	}
	return dedup.Key(parts...)
}

// PublishAdvisory sends ev unless an identical event went out inside the dedup window.
func (a *AdvisoryPublisher) PublishAdvisory(ev messages.AdvisoryEvent) error {
	if !a.dedup.ShouldProcess(EventKey(ev)) {
		a.record(OutcomeDuplicate)
		a.logger.Debug("bus: duplicate advisory dropped", zap.String("kind", ev.Kind), zap.String("tier", ev.Tier))
		return nil
	}
	b, err := json.Marshal(ev)
	if err != nil {
		a.record(OutcomeFailed)
		return fmt.Errorf("marshal advisory: %w", err)
	}
	if err := a.pub.PublishTo(a.TopicFor(ev.Kind), QoSFor(ev.Severity), b); err != nil {
		a.record(OutcomeFailed)
		return err
	}
	a.record(OutcomePublished)
	return nil
}

func (a *AdvisoryPublisher) Status() string {
	return a.pub.Status()
}

func (a *AdvisoryPublisher) Close() {
	a.pub.Close()
}

func (a *AdvisoryPublisher) record(outcome string) {
	if a.rec != nil {
		a.rec.BusOutcome(outcome)
	}
}
