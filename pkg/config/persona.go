package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Persona holds the persona text blobs: the stage-2 constitution (the
// stable prompt prefix, byte-identical across all requests) and the
// stage-1 persona traits.
type Persona struct {
	// Constitution is the stage-2 stable prefix. It must be large enough
	// (>= 1024 tokens) for provider-side prompt caching to engage; the
	// router validates the token count at startup.
	Constitution string

	// Traits is the stage-1 system persona.
	Traits string
}

const (
	constitutionFile = "constitution.md"
	traitsFile       = "persona.md"
)

// LoadPersona reads the persona blobs from dir. Missing or empty blobs are
// fatal: the process must not start with a broken persona.
func LoadPersona(dir string) (*Persona, error) {
	constitution, err := readBlob(filepath.Join(dir, constitutionFile))
	if err != nil {
		return nil, err
	}
	traits, err := readBlob(filepath.Join(dir, traitsFile))
	if err != nil {
		return nil, err
	}
	return &Persona{Constitution: constitution, Traits: traits}, nil
}

func readBlob(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read persona blob %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("persona blob %s is empty", path)
	}
	return text, nil
}
