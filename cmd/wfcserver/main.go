package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotorforge/wavecollapse/configfile"
	"github.com/rotorforge/wavecollapse/httpapi"
)

func main() {
	log.Println("Starting wavecollapse session server...")

	seed := getEnvInt64("WFC_SEED", time.Now().UnixNano())
	server := httpapi.NewServer(seed)

	scenarioDir := getEnvOrDefault("WFC_SCENARIO_DIR", "./scenarios")
	loadScenarios(server, scenarioDir)

	port := getEnvOrDefault("PORT", "8088")
	log.Printf("wavecollapse session server listening on :%s\n", port)
	if err := server.Handler().Run(":" + port); err != nil {
		log.Fatalf("FATAL: server exited: %v", err)
	}
}

// loadScenarios walks dir for *.yaml/*.yml scenario files and registers
// each under its filename stem. Missing dir is not fatal: the server can
// still serve inline-body sessions.
func loadScenarios(server *httpapi.Server, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("no scenario directory at %s, skipping catalog load: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		scenario, err := configfile.LoadScenario(path)
		if err != nil {
			log.Printf("skipping scenario %s: %v", path, err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		server.RegisterScenario(name, scenario)
		log.Printf("registered scenario %q from %s", name, path)
	}
}

func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
