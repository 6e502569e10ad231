package bucket

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bucket is a half-open range [Min, Max) with the value reported for inputs
// falling inside it. A nil Min or Max leaves that side unbounded. Value is
// not required to lie inside the range.
type Bucket[T Number] struct {
	Min   *T `json:"min,omitempty" yaml:"min,omitempty"`
	Max   *T `json:"max,omitempty" yaml:"max,omitempty"`
	Value T  `json:"value" yaml:"value"`
}
