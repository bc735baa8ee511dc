package engine

// String backed enums so states can be logged and compared in tests as plain text.

type EntryKind string
type PickerMode string
type DisplayKind string

const (
	EntryUndefined EntryKind = ""
	EntrySquare    EntryKind = "square"
	EntryCross     EntryKind = "cross"
)

var AllEntryKinds = []EntryKind{EntrySquare, EntryCross}

const (
	ModeIdle           PickerMode = "idle"
	ModeAwaitingSecond PickerMode = "awaiting_second"
)

var AllPickerModes = []PickerMode{ModeIdle, ModeAwaitingSecond}

const (
	DisplayEmpty   DisplayKind = "empty"
	DisplaySingle  DisplayKind = "single_unit"
	DisplayProduct DisplayKind = "product"
)

var AllDisplayKinds = []DisplayKind{DisplayEmpty, DisplaySingle, DisplayProduct}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (k EntryKind) Validate() bool   { return contains(AllEntryKinds, k) }
func (m PickerMode) Validate() bool  { return contains(AllPickerModes, m) }
func (d DisplayKind) Validate() bool { return contains(AllDisplayKinds, d) }
