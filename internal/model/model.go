package model

import (
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/entities"
	"github.com/LeonardoBeccarini/farm_advisor/internal/model/messages"
)

// Aliases exposing the common types to the services.

type (
	FarmState     = entities.FarmState
	FieldKey      = entities.FieldKey
	Kind          = entities.Kind
	Tier          = entities.Tier
	Severity      = entities.Severity
	AdvisoryEvent = messages.AdvisoryEvent
)
