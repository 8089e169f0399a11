package entity

// Kind identifies the type of an extracted entity.
type Kind string

const (
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindLocation Kind = "location"
	KindEmail    Kind = "email"
	KindPhone    Kind = "phone"
	KindNumber   Kind = "number"
)

// Entity is a typed, positioned substring extracted from a message.
// Start and End are byte offsets of the match in the original text.
type Entity struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}
