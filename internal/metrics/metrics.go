package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReactionToggles counts like/save toggles by kind and resulting direction.
var ReactionToggles = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tastereel_reaction_toggles_total",
		Help: "Number of reaction toggles, partitioned by kind (like|save) and direction (on|off).",
	},
	[]string{"kind", "direction"},
)

// FoodUploads counts published food videos.
var FoodUploads = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "tastereel_food_uploads_total",
		Help: "Number of food videos published by partners.",
	},
)
