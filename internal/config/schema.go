package config

// File is one scenario document.
type File struct {
	Defaults  Defaults   `yaml:"defaults"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Defaults apply to every scenario that leaves the field unset
type Defaults struct {
	Variant string `yaml:"variant"`
}

// Scenario is an ordered list of operations replayed against one list variant
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Variant     string `yaml:"variant"`
	Enabled     *bool  `yaml:"enabled"`
	Steps       []Step `yaml:"steps"`
}

func (s Scenario) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Step is a single operation and what it is expected to produce.
// Expect and Absent check pop/peek/len results, ExpectAll checks drain,
// Conflict expects the operation to abort with an access conflict.
type Step struct {
	Op        string `yaml:"op"`
	Value     int    `yaml:"value"`
	Expect    *int   `yaml:"expect"`
	Absent    bool   `yaml:"absent"`
	ExpectAll []int  `yaml:"expect_all"`
	Conflict  bool   `yaml:"conflict"`
}

const (
	VariantDeque      = "deque"
	VariantStack      = "stack"
	VariantQueue      = "queue"
	VariantPersistent = "persistent"
)

var Variants = []string{VariantDeque, VariantStack, VariantQueue, VariantPersistent}

const (
	OpPushFront = "push_front"
	OpPushBack  = "push_back"
	OpPopFront  = "pop_front"
	OpPopBack   = "pop_back"
	OpPeekFront = "peek_front"
	OpPeekBack  = "peek_back"
	OpSetFront  = "set_front"
	OpSetBack   = "set_back"
	OpHoldFront = "hold_front"
	OpHoldBack  = "hold_back"
	OpRelease   = "release"
	OpDrain     = "drain"
	OpLen       = "len"
)

var ops = map[string]bool{
	OpPushFront: true, OpPushBack: true,
	OpPopFront: true, OpPopBack: true,
	OpPeekFront: true, OpPeekBack: true,
	OpSetFront: true, OpSetBack: true,
	OpHoldFront: true, OpHoldBack: true,
	OpRelease: true, OpDrain: true, OpLen: true,
}

func IsVariant(v string) bool {
	for _, known := range Variants {
		if v == known {
			return true
		}
	}
	return false
}
