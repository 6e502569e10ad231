package bucket

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

func NewBucketizer[T Number](logger l.Wrapper) Bucketizer[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &bucketizerImpl[T]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "bucketizerImpl")),
	}
}

type bucketizerImpl[T Number] struct {
	logger l.Wrapper

	buckets []Bucket[T]
}

func cloneBound[T Number](v *T) *T {
	if v == nil {
		return nil
	}

	vv := *v

	return &vv
}

func (impl *bucketizerImpl[T]) AddBucket(min, max *T, value T) Bucketizer[T] {
	if min != nil && max != nil && *min >= *max {
		// kept anyway: an unmatchable bucket is caller configuration, not an error
		impl.logger.WithFields(l.StringField("min", cast.ToString(*min)),
			l.StringField("max", cast.ToString(*max))).Warn("bucket can never match")
	}

	impl.buckets = append(impl.buckets, Bucket[T]{
		Min:   cloneBound(min),
		Max:   cloneBound(max),
		Value: value,
	})

	return impl
}

func (impl *bucketizerImpl[T]) AddBucketBetween(min, max T, value T) Bucketizer[T] {
	return impl.AddBucket(&min, &max, value)
}

func (impl *bucketizerImpl[T]) AddBucketAtLeast(min T, value T) Bucketizer[T] {
	return impl.AddBucket(&min, nil, value)
}

func (impl *bucketizerImpl[T]) AddBucketBelow(max T, value T) Bucketizer[T] {
	return impl.AddBucket(nil, &max, value)
}

func (impl *bucketizerImpl[T]) AddBucketAll(value T) Bucketizer[T] {
	return impl.AddBucket(nil, nil, value)
}

func (impl *bucketizerImpl[T]) Bucketize(input T) (value T, ok bool) {
	for _, b := range impl.buckets {
		switch {
		case b.Min == nil && b.Max == nil:
			return b.Value, true
		case b.Max == nil:
			if input >= *b.Min {
				return b.Value, true
			}
		case b.Min == nil:
			if input < *b.Max {
				return b.Value, true
			}
		default:
			if input >= *b.Min && input < *b.Max {
				return b.Value, true
			}
		}
	}

	return
}

func (impl *bucketizerImpl[T]) Buckets() []Bucket[T] {
	bs := make([]Bucket[T], 0, len(impl.buckets))

	for _, b := range impl.buckets {
		bs = append(bs, Bucket[T]{
			Min:   cloneBound(b.Min),
			Max:   cloneBound(b.Max),
			Value: b.Value,
		})
	}

	return bs
}

func (impl *bucketizerImpl[T]) String() string {
	var sb strings.Builder

	for idx, b := range impl.buckets {
		if idx > 0 {
			sb.WriteString(" ")
		}

		min := "-inf"
		if b.Min != nil {
			min = cast.ToString(*b.Min)
		}

		max := "+inf"
		if b.Max != nil {
			max = cast.ToString(*b.Max)
		}

		sb.WriteString(fmt.Sprintf("[%s,%s)=>%s", min, max, cast.ToString(b.Value)))
	}

	return sb.String()
}
