package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ericogr/saber-duel/internal/config"
	"github.com/ericogr/saber-duel/internal/constants"
)

func main() {
	env, err := config.LoadEnv(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	client := &http.Client{Timeout: 2 * time.Second}
	if err := check(client, healthURL(env.ServerAddress)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// healthURL turns a listen address such as ":8080" into a loopback URL.
func healthURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	return "http://" + addr + constants.RouteHealth
}

// check succeeds only on the 204 the server answers /health with.
func check(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("health status %d", resp.StatusCode)
	}
	return nil
}
