package main

// @title Tally Cloud Sync API
// @version 1.0
// @description Receives ledger, stock item and outstanding bill batches from the Tally desktop agent and serves the synced data.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey AgentToken
// @in header
// @name X-Agent-Token
// @description Shared secret configured as AGENT_TOKEN on the gateway.
func main() {
	Execute()
}
