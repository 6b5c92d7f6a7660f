// Package utils provides common utility functions for the prefab-manager
// application. It includes tolerant type conversions used when decoding
// loosely typed document and scene values into concrete property types.
package utils
