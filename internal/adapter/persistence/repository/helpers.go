package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
