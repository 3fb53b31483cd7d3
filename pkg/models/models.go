// Package models saves and loads agent snapshots as JSON files. It sits
// outside the learning core, behind the agent's export/import boundary.
package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/IlikeChooros/go-ttt/pkg/qlearn"
)

const Ext = ".json"

func modelPath(dir, name string) string {
	if !strings.HasSuffix(name, Ext) {
		name += Ext
	}
	return filepath.Join(dir, name)
}

// Save writes the agent's exported state to dir/name.json, creating the
// directory when needed. An empty name is replaced with a timestamped one.
// Returns the file path written.
func Save(dir, name string, agent *qlearn.Agent) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create model dir: %w", err)
	}
	if name == "" {
		name = "model_" + time.Now().Format("2006-01-02_15-04-05")
	}

	data, err := json.MarshalIndent(agent.ExportState(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode model: %w", err)
	}

	path := modelPath(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write model: %w", err)
	}
	return path, nil
}

// Load reads dir/name.json into the agent
func Load(dir, name string, agent *qlearn.Agent) error {
	data, err := os.ReadFile(modelPath(dir, name))
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}

	state := &qlearn.AgentState{}
	if err := json.Unmarshal(data, state); err != nil {
		return fmt.Errorf("decode model: %w", err)
	}
	return agent.ImportState(state)
}

// List returns the model names (without extension) found in dir, sorted
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Ext) {
			names = append(names, strings.TrimSuffix(e.Name(), Ext))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a saved model
func Delete(dir, name string) error {
	return os.Remove(modelPath(dir, name))
}
