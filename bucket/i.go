package bucket

// Bucketizer slots numeric values into buckets. Buckets are matched in the
// order they were added: on overlap the earlier bucket wins.
type Bucketizer[T Number] interface {
	AddBucket(min, max *T, value T) Bucketizer[T]

	AddBucketBetween(min, max T, value T) Bucketizer[T]
	AddBucketAtLeast(min T, value T) Bucketizer[T]
	AddBucketBelow(max T, value T) Bucketizer[T]
	AddBucketAll(value T) Bucketizer[T]

	Bucketize(input T) (value T, ok bool)

	Buckets() []Bucket[T]
	String() string
}
