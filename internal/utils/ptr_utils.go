package utils

import "fmt"

func ToPtr[T any](value T) *T {
	return &value
}

func PtrString[T any](value *T) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprint(*value)
}
