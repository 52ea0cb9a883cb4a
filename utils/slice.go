package utils

import (
	"fmt"
	"strconv"
)

// ParseIDList converts repeated form values into unique uint ids.
// Any non-integer or non-positive value fails the whole list.
func ParseIDList(values []string) ([]uint, error) {
	seen := make(map[uint]bool, len(values))
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid id %q", v)
		}
		id := uint(n)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// UniqueUint removes duplicate values from a slice of uints.
func UniqueUint(slice []uint) []uint {
	keys := make(map[uint]bool)
	list := []uint{}
	for _, entry := range slice {
		if _, value := keys[entry]; !value {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	return list
}
