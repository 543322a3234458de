package reports

import (
	"sort"
	"time"
)

// MonthKey identifies a calendar (year, month) bucket. Month is 1-12.
type MonthKey struct {
	Year  int
	Month int
}

type MonthBucket[A any] struct {
	Key   MonthKey
	Value A
}

// BucketByMonth groups items by the calendar month (UTC) of the timestamp
// selected by at, folding each group with fold starting from init().
// Items with a zero timestamp are skipped rather than failing the whole
// computation. Buckets come back in ascending (year, month) order; months
// with no matching items are never synthesized.
func BucketByMonth[T any, A any](items []T, at func(T) time.Time, init func() A, fold func(A, T) A) []MonthBucket[A] {
	grouped := make(map[MonthKey]A)
	for _, item := range items {
		ts := at(item)
		if ts.IsZero() {
			continue
		}
		utc := ts.UTC()
		key := MonthKey{Year: utc.Year(), Month: int(utc.Month())}
		acc, ok := grouped[key]
		if !ok {
			acc = init()
		}
		grouped[key] = fold(acc, item)
	}

	keys := make([]MonthKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Month < keys[j].Month
	})

	buckets := make([]MonthBucket[A], 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, MonthBucket[A]{Key: k, Value: grouped[k]})
	}
	return buckets
}
