package testdata

import (
	"embed"
	"path"
)

//go:embed files/*.sdp
var filesDir embed.FS

// ReadSDP returns content of SDP file. It panics if file does not exist.
func ReadSDP(filename string) string {
	data, err := filesDir.ReadFile(path.Join("files", filename))
	if err != nil {
		panic(err)
	}
	return string(data)
}

// SDPFiles lists names of all SDP files. All of them parse without errors.
func SDPFiles() []string {
	entries, err := filesDir.ReadDir("files")
	if err != nil {
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
