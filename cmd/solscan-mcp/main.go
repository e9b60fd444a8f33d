// Command solscan-mcp starts the Solscan MCP SSE server.
package main

import (
	"log"
	"net/http"
	"os"

	"solscan-mcp/internal/logging"
	"solscan-mcp/internal/server"
)

func main() {
	apiToken := os.Getenv("SOLSCAN_API_TOKEN")
	if apiToken == "" {
		log.Fatal("SOLSCAN_API_TOKEN environment variable is not set")
	}

	logger := logging.New(getEnv("SOLSCAN_LOG_FILE", "solscan_api.log"))
	defer func() { _ = logger.Sync() }()

	cfg := server.Config{
		Port:      getEnv("PORT", "3011"),
		APIToken:  apiToken,
		AuthToken: os.Getenv("MCP_TOKEN"),
		Logger:    logger,
	}
	if cfg.AuthToken == "" {
		log.Println("WARN: MCP_TOKEN not set; endpoints will be open. Set MCP_TOKEN to secure.")
	}

	srv := server.New(cfg)
	log.Printf("Starting Solscan MCP server on :%s\n", cfg.Port)

	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")
	if certFile != "" && keyFile != "" {
		log.Println("TLS enabled: using provided certificate and key")
		if err := http.ListenAndServeTLS(":"+cfg.Port, certFile, keyFile, srv.Router()); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
