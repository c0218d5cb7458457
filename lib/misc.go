package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func Exists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	} else if os.IsNotExist(err) {
		return false
	}

	return true
}

// Normalize returns the absolute, cleaned form of path
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}

	return filepath.Clean(abs), nil
}

type Format uint8

const (
	CSV Format = iota
	XLSX
)

// FormatOf picks the table format from the file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	}

	return 0, fmt.Errorf("%s: table must be a .csv or .xlsx file", path)
}
