// Package cache provides a small generic cache with a soft size limit.
//
// Entries are stamped with a monotonic access tick. When the number of
// entries exceeds the limit, the least recently touched quarter is dropped.
//
//	shapes := cache.New[rune, text.Shape](1024)
//	shapes.Set('A', s)
//	s, ok := shapes.Get('A')
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
