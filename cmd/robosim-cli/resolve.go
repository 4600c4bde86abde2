package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/joshp123/robosim/internal/config"
)

const fallbackAddr = "localhost:9000"

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "_", "-", "_", "__", "_")
	name = replacer.Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return name
}

func resolveNamedID(kind, input string, options map[string]string) (string, error) {
	needle := normalizeName(input)
	for label, id := range options {
		if normalizeName(label) == needle {
			return id, nil
		}
	}
	available := make([]string, 0, len(options))
	for label := range options {
		available = append(available, label)
	}
	sort.Strings(available)
	if guess := closestName(needle, available); guess != "" {
		return "", fmt.Errorf("%s %q not found, did you mean %q? Available: %s", kind, input, guess, strings.Join(available, ", "))
	}
	return "", fmt.Errorf("%s %q not found. Available: %s", kind, input, strings.Join(available, ", "))
}

// closestName returns the candidate within edit distance 2 of needle, if
// any.
func closestName(needle string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(needle, normalizeName(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func resolveAddr() string {
	if value := os.Getenv("ROBOSIM_GRPC_ADDR"); value != "" {
		return dialable(value)
	}
	for _, path := range configSearchPaths() {
		if addr := addrFromConfig(path); addr != "" {
			return dialable(addr)
		}
	}
	return fallbackAddr
}

func configSearchPaths() []string {
	paths := []string{config.DefaultPath}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "robosim", "config.yaml"))
	}
	return paths
}

func addrFromConfig(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	cfg, err := config.Load(path)
	if err != nil || cfg == nil {
		return ""
	}
	return cfg.Server.GRPCAddr
}

// dialable turns a wildcard listen address into one a client can reach.
func dialable(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "::", "0.0.0.0":
		return net.JoinHostPort("localhost", port)
	}
	return addr
}
