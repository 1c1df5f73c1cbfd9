// Package nats wraps the embedded NATS broker used to hand submitted
// applications to back-office consumers.
package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/chamberhq/join/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const readyTimeout = 4 * time.Second

// StartEmbedded starts an embedded NATS server listening on host:port.
// A port of -1 picks a random free port.
func StartEmbedded(host string, port int) (*server.Server, error) {
	return start(&server.Options{
		Host:   host,
		Port:   port,
		NoLog:  true,
		NoSigs: true,
	})
}

// StartInProcess starts an embedded NATS server without network listeners.
// Clients reach it through ConnectInProcess only.
func StartInProcess() (*server.Server, error) {
	return start(&server.Options{
		DontListen: true,
		NoLog:      true,
		NoSigs:     true,
	})
}

func start(opts *server.Options) (*server.Server, error) {
	logger.Debug("Starting embedded NATS server (host=%q port=%d in-process=%v)", opts.Host, opts.Port, opts.DontListen)

	ns, err := server.NewServer(opts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(readyTimeout) {
		logger.Error("NATS server failed to start within %s", readyTimeout)
		ns.Shutdown()
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// Connect dials a NATS server by URL.
func Connect(url string) (*nats.Conn, error) {
	logger.Debug("Connecting to NATS at %s", url)
	conn, err := nats.Connect(url,
		nats.Name("join"),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		logger.Error("Failed to connect to NATS at %s: %v", url, err)
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	return conn, nil
}

// ConnectInProcess creates an in-process connection to the embedded server.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	conn, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		return nil, fmt.Errorf("connecting to nats in-process: %w", err)
	}
	return conn, nil
}

// Shutdown drains the connection and stops the server. Either may be nil.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- nc.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				nc.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			return errors.New("nats server shutdown timed out")
		}
	}

	logger.Debug("NATS shutdown complete")
	return nil
}
