package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a http listen address in format [host]:[port]
//	-grpc-address grpc listen address in format [host]:[port]
//	-d database DSN (journal DSN or synchronizer SQLite file)
//	-c/-config json file path with configs
//	-token-sign-key manager token signing key
//	-token-issuer manager token issuer
//	-hash-key HashSHA256 integrity key
//	-request-timeout inbound request timeout
//	-max-workers background worker count
//	-max-queued-tasks background queue capacity
//	-hive hive base URL used by the synchronizer
//	-adapter-timeout outbound request timeout
//	-requested-type payload media type announced with every digest
//	-sync-interval synchronizer tick
//	-retention-interval hive history pruning interval
//	-log-level zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer, hashKey string
	var requestTimeout, adapterTimeout time.Duration
	var maxWorkers, maxQueuedTasks int
	var hiveAddress, requestedType string
	var syncInterval, retentionInterval time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Manager token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Manager token issuer")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxWorkers, "max-workers", 0, "Background worker count")
	fs.IntVar(&maxQueuedTasks, "max-queued-tasks", 0, "Background queue capacity")
	fs.StringVar(&hiveAddress, "hive", "", "Hive base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&requestedType, "requested-type", "", "Payload media type requested from peers")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Synchronizer tick")
	fs.DurationVar(&retentionInterval, "retention-interval", 0, "History pruning interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			HashKey:      hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			MaxWorkers:     maxWorkers,
			MaxQueuedTasks: maxQueuedTasks,
		},
		Adapter: Adapter{
			HTTPAddress:    hiveAddress,
			RequestTimeout: adapterTimeout,
			RequestedType:  requestedType,
		},
		Workers: Workers{
			SyncInterval:      syncInterval,
			RetentionInterval: retentionInterval,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. An empty host means all interfaces; any other host
// must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
