// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package config

import (
	"flag"
	"strings"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-proxied-host upstream host in format [host]:[port]
//	-websocket-mode tunnel websocket frames instead of relaying HTTP
//	-allowed-hosts comma-separated host patterns for internal endpoints
//	-signing-secret token signing secret
//	-redis-host session cache host
//	-redis-port session cache port
//	-postgres-host user store host
//	-postgres-port user store port
//	-postgres-db user store database name
//	-postgres-user user store role
//	-postgres-password user store role password
func ParseFlags() *StructuredConfig {
	var listenAddress string
	var proxiedHost string
	var websocketMode bool
	var allowedHosts string
	var signingSecret string
	var redisHost string
	var redisPort int
	var postgresHost string
	var postgresPort int
	var postgresDB string
	var postgresUser string
	var postgresPassword string

	flag.StringVar(&listenAddress, "a", "", "Listen address host:port")
	flag.StringVar(&proxiedHost, "proxied-host", "", "Upstream host:port to forward requests to")
	flag.BoolVar(&websocketMode, "websocket-mode", false, "Tunnel websocket frames instead of relaying HTTP")
	flag.StringVar(&allowedHosts, "allowed-hosts", "", "Comma-separated host patterns allowed to call internal endpoints")
	flag.StringVar(&signingSecret, "signing-secret", "", "Token signing secret")
	flag.StringVar(&redisHost, "redis-host", "", "Session cache host")
	flag.IntVar(&redisPort, "redis-port", 0, "Session cache port")
	flag.StringVar(&postgresHost, "postgres-host", "", "User store host")
	flag.IntVar(&postgresPort, "postgres-port", 0, "User store port")
	flag.StringVar(&postgresDB, "postgres-db", "", "User store database name")
	flag.StringVar(&postgresUser, "postgres-user", "", "User store role")
	flag.StringVar(&postgresPassword, "postgres-password", "", "User store role password")

	flag.Parse()

	return &StructuredConfig{
		Proxy: Proxy{
			ProxiedHost:   proxiedHost,
			WebsocketMode: websocketMode,
			AllowedHosts:  splitHosts(allowedHosts),
		},
		App: App{
			SigningSecret: signingSecret,
		},
		Cache: Cache{
			RedisHost: redisHost,
			RedisPort: redisPort,
		},
		Storage: Storage{
			Host:     postgresHost,
			Port:     postgresPort,
			Database: postgresDB,
			User:     postgresUser,
			Password: postgresPassword,
		},
		Server: Server{
			HTTPAddress: listenAddress,
		},
	}
}

func splitHosts(s string) []string {
	if s == "" {
		return nil
	}

	hosts := make([]string, 0, 4)
	for _, h := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(h); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}

	return hosts
}
