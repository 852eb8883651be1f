package core

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var nonAlphaNumRegex = regexp.MustCompile(`[^A-Za-z0-9]+`)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// SanitizeFilename replaces every run of non-alphanumeric characters in `name`
// with an underscore so the result is safe to use as a local file name.
func SanitizeFilename(name string) string {
	name = nonAlphaNumRegex.ReplaceAllString(strings.TrimSpace(name), "_")
	return strings.Trim(name, "_")
}

// Getwd tries to find the project root (the directory holding go.mod).
// go-test changes the working directory to the test package being run during tests... this breaks our code...
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
// this is a temporary fix for now :(
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
