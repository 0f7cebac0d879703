package catalog

// ConditionType enumerates unlock-condition kinds. Closed set; the
// evaluator switches exhaustively over it.
type ConditionType string

const (
	CondBusinessQuantity  ConditionType = "business_quantity"
	CondBusinessLevel     ConditionType = "business_level"
	CondUpgradesPurchased ConditionType = "upgrades_purchased"
	CondPassiveIncome     ConditionType = "passive_income"
	CondPlayerLevel       ConditionType = "player_level"
	CondTotalClicks       ConditionType = "total_clicks"
	CondComboReached      ConditionType = "combo_reached"
)

// Condition is a single threshold predicate: satisfied iff the current
// state value for Type (scoped by Target where applicable) is >= Required.
type Condition struct {
	Type     ConditionType `json:"type" validate:"required,oneof=business_quantity business_level upgrades_purchased passive_income player_level total_clicks combo_reached"`
	Target   string        `json:"target,omitempty"`
	Required float64       `json:"required" validate:"gt=0"`
	Label    string        `json:"label,omitempty"`
}
